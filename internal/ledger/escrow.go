package ledger

import (
	"context"
	"fmt"

	"eventticketing/internal/domain"
)

func (l *Ledger) credit(owner domain.Address, asset domain.AssetID, amount uint64) {
	key := balanceKey{owner: owner, asset: asset}
	l.setBalance(key, l.balances[key]+amount)
}

// GetBalance returns the escrow balance owed to owner in asset.
func (l *Ledger) GetBalance(owner domain.Address, asset domain.AssetID) uint64 {
	return l.balances[balanceKey{owner: owner, asset: asset}]
}

// ClaimBalance pays caller's whole escrow balance in asset out of custody and
// returns the amount paid. The balance is zeroed before the gateway is
// called. It fails with ErrReentrantCall when invoked from inside another
// operation.
func (l *Ledger) ClaimBalance(ctx context.Context, caller domain.Address, asset domain.AssetID) (uint64, error) {
	if err := l.guardExternal(); err != nil {
		return 0, err
	}
	var amount uint64
	err := l.atomic(func() error {
		key := balanceKey{owner: caller, asset: asset}
		amount = l.balances[key]
		if amount == 0 {
			return domain.ErrZeroBalance
		}
		gw, ok := l.gateways[asset]
		if !ok {
			return fmt.Errorf("%w: no gateway for asset %q", domain.ErrAssetTransferFailed, asset)
		}

		l.setBalance(key, 0)
		l.emit(domain.Notification{BalanceWithdrawn: &domain.BalanceWithdrawn{
			Receiver: caller,
			Asset:    asset,
			Amount:   amount,
		}})

		if err := gw.MoveFunds(ctx, l.custody, caller, amount); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrAssetTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}
