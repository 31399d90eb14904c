package ledger

import (
	"context"
	"fmt"

	"eventticketing/internal/domain"
)

// OwnerIssueTicket gifts a ticket to receiver. Only the event owner may call
// it.
func (l *Ledger) OwnerIssueTicket(caller domain.Address, name string, receiver domain.Address) error {
	return l.atomic(func() error {
		ev, err := l.ownedBy(caller, name)
		if err != nil {
			return err
		}
		return l.issueTicket(ev, receiver)
	})
}

// BuyTicketWithAsset sells a ticket to receiver, paid by caller in the
// settlement asset. The ticket is issued and the owner's escrow credited
// before the payment is pulled from caller; if the pull fails both are
// undone. It fails with ErrReentrantCall when invoked from inside another
// operation.
func (l *Ledger) BuyTicketWithAsset(ctx context.Context, caller domain.Address, name string, receiver domain.Address) error {
	if err := l.guardExternal(); err != nil {
		return err
	}
	return l.atomic(func() error {
		ev, err := l.lookup(name)
		if err != nil {
			return err
		}
		gw, ok := l.gateways[l.settlement]
		if !ok {
			return fmt.Errorf("%w: no gateway for settlement asset %q", domain.ErrAssetTransferFailed, l.settlement)
		}
		price := ev.event.TicketPrice
		spendable, err := gw.SpendableBalance(ctx, caller)
		if err != nil {
			return fmt.Errorf("query spendable balance: %w", err)
		}
		if spendable < price {
			return domain.ErrInsufficientFunds
		}
		if ev.event.SoldOut() {
			return domain.ErrSoldOut
		}

		if err := l.issueTicket(ev, receiver); err != nil {
			return err
		}
		l.credit(ev.event.Owner, l.settlement, price)

		if err := gw.MoveFunds(ctx, caller, l.custody, price); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrAssetTransferFailed, err)
		}
		return nil
	})
}
