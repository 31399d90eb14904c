package domain

import "context"

// Address is an opaque account identifier supplied by the host as the caller
// identity or named as the target of an operation.
type Address string

// Event is a named ticket sale. Every field except TicketQuantityIssued is
// fixed at creation.
// swagger:model Event
type Event struct {
	Name                 string  `json:"name"`
	Owner                Address `json:"owner"`
	TicketPrice          uint64  `json:"ticket_price"`
	TicketQuantity       uint64  `json:"ticket_quantity"`
	TicketQuantityIssued uint64  `json:"ticket_quantity_issued"`
}

// NewEvent returns an Event owned by owner with no tickets issued.
func NewEvent(name string, owner Address, price, quantity uint64) *Event {
	return &Event{
		Name:           name,
		Owner:          owner,
		TicketPrice:    price,
		TicketQuantity: quantity,
	}
}

// SoldOut reports whether the whole supply has been issued.
func (e *Event) SoldOut() bool {
	return e.TicketQuantityIssued >= e.TicketQuantity
}

// TicketSalesService is the host-facing API of the ticket sales ledger.
// Every mutating operation takes the authenticated caller explicitly.
type TicketSalesService interface {
	CreateEvent(ctx context.Context, caller Address, name string, price, quantity uint64) (*Event, error)
	GetEventData(ctx context.Context, name string) (*Event, error)
	EventExists(ctx context.Context, name string) (bool, error)

	AddChecker(ctx context.Context, caller Address, name string, checker Address) error
	RemoveChecker(ctx context.Context, caller Address, name string, checker Address) error
	GetCheckerStatus(ctx context.Context, name string, addr Address) (bool, error)

	OwnerIssueTicket(ctx context.Context, caller Address, name string, receiver Address) error
	BuyTicketWithAsset(ctx context.Context, caller Address, name string, receiver Address) error
	TransferUnclaimedTicket(ctx context.Context, caller Address, name string, to Address) error
	BurnUnclaimedTicket(ctx context.Context, caller Address, name string) error
	CheckInTicket(ctx context.Context, caller Address, name string, holder Address) error
	GetTicketStatus(ctx context.Context, name string, holder Address) (TicketStatus, error)

	ClaimBalance(ctx context.Context, caller Address, asset AssetID) (uint64, error)
	GetBalance(ctx context.Context, owner Address, asset AssetID) (uint64, error)
}
