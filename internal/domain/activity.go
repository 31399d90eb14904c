package domain

import (
	"context"
	"time"
)

// Activity kinds recorded for committed operations.
const (
	ActivityEventCreated     = "event_created"
	ActivityBalanceWithdrawn = "balance_withdrawn"
)

// EventCreated is emitted when an event is registered. NameHash is the
// Keccak-256 digest of the event name.
// swagger:model EventCreated
type EventCreated struct {
	NameHash string  `json:"name_hash"`
	Name     string  `json:"name"`
	Owner    Address `json:"owner"`
	Price    uint64  `json:"price"`
	Quantity uint64  `json:"quantity"`
}

// BalanceWithdrawn is emitted when an escrow balance is claimed.
// swagger:model BalanceWithdrawn
type BalanceWithdrawn struct {
	Receiver Address `json:"receiver"`
	Asset    AssetID `json:"asset"`
	Amount   uint64  `json:"amount"`
}

// Notification is one committed ledger record. Exactly one of EventCreated and
// BalanceWithdrawn is set.
type Notification struct {
	EventCreated     *EventCreated
	BalanceWithdrawn *BalanceWithdrawn
}

// Kind returns the activity kind of the notification.
func (n Notification) Kind() string {
	if n.EventCreated != nil {
		return ActivityEventCreated
	}
	return ActivityBalanceWithdrawn
}

// Publisher receives notifications after the operation that emitted them
// commits.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// EventCreatedRecord is a persisted EventCreated notification.
// swagger:model EventCreatedRecord
type EventCreatedRecord struct {
	EventCreated
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// BalanceWithdrawnRecord is a persisted BalanceWithdrawn notification.
// swagger:model BalanceWithdrawnRecord
type BalanceWithdrawnRecord struct {
	BalanceWithdrawn
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ActivityRepository stores committed notifications.
type ActivityRepository interface {
	RecordEventCreated(ctx context.Context, e *EventCreated, at time.Time) error
	RecordBalanceWithdrawn(ctx context.Context, w *BalanceWithdrawn, at time.Time) error
	ListEventsByOwner(ctx context.Context, owner Address, params PageRequest) ([]*EventCreatedRecord, int, error)
	ListWithdrawalsByReceiver(ctx context.Context, receiver Address, params PageRequest) ([]*BalanceWithdrawnRecord, int, error)
}

// ActivityService exposes the activity feed to the API.
type ActivityService interface {
	ListEventsByOwner(ctx context.Context, owner Address, params PageRequest) ([]*EventCreatedRecord, int, error)
	ListWithdrawalsByReceiver(ctx context.Context, receiver Address, params PageRequest) ([]*BalanceWithdrawnRecord, int, error)
}
