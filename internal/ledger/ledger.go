// Package ledger holds the ticket sales state machine: event registry,
// checker sets, ticket statuses and escrow balances.
//
// A Ledger is not safe for concurrent use. The host runs one operation at a
// time; the only suspension point is a call into an AssetGateway, which may
// re-enter the Ledger before it returns. Operations that touch a gateway
// apply all of their own state changes first and call out last, and refuse
// to run from inside another operation.
package ledger

import (
	"eventticketing/internal/domain"
)

// Config configures a Ledger.
type Config struct {
	// SettlementAsset is the asset tickets are paid in.
	SettlementAsset domain.AssetID
	// Custody is the address that holds sale proceeds until they are claimed.
	Custody domain.Address
	// Gateways maps each asset the ledger can pay out to its gateway. It must
	// contain the settlement asset.
	Gateways map[domain.AssetID]domain.AssetGateway
}

type balanceKey struct {
	owner domain.Address
	asset domain.AssetID
}

type eventState struct {
	event    domain.Event
	checkers map[domain.Address]struct{}
	tickets  map[domain.Address]domain.TicketStatus
}

// Ledger is the in-memory ticket sales ledger.
type Ledger struct {
	settlement domain.AssetID
	custody    domain.Address
	gateways   map[domain.AssetID]domain.AssetGateway

	events   map[string]*eventState
	names    []string
	balances map[balanceKey]uint64

	journal journal
	outbox  []domain.Notification
}

// New returns an empty Ledger.
func New(cfg Config) *Ledger {
	gateways := make(map[domain.AssetID]domain.AssetGateway, len(cfg.Gateways))
	for id, gw := range cfg.Gateways {
		gateways[id] = gw
	}
	return &Ledger{
		settlement: cfg.SettlementAsset,
		custody:    cfg.Custody,
		gateways:   gateways,
		events:     make(map[string]*eventState),
		balances:   make(map[balanceKey]uint64),
	}
}

// SettlementAsset returns the asset tickets are paid in.
func (l *Ledger) SettlementAsset() domain.AssetID {
	return l.settlement
}

// Custody returns the address holding unclaimed proceeds.
func (l *Ledger) Custody() domain.Address {
	return l.custody
}

// TakeNotifications returns the notifications of every operation committed
// since the last call, in commit order.
func (l *Ledger) TakeNotifications() []domain.Notification {
	out := l.outbox
	l.outbox = nil
	return out
}

func (l *Ledger) lookup(name string) (*eventState, error) {
	ev, ok := l.events[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}
