package ledger

import (
	"encoding/hex"

	"eventticketing/internal/domain"

	"golang.org/x/crypto/sha3"
)

// CreateEvent registers a new event owned by caller and makes caller its
// first checker.
func (l *Ledger) CreateEvent(caller domain.Address, name string, price, quantity uint64) (*domain.Event, error) {
	var created domain.Event
	err := l.atomic(func() error {
		if _, ok := l.events[name]; ok {
			return domain.ErrAlreadyExists
		}
		if quantity == 0 {
			return domain.ErrInvalidQuantity
		}
		ev := &eventState{
			event:    *domain.NewEvent(name, caller, price, quantity),
			checkers: make(map[domain.Address]struct{}),
			tickets:  make(map[domain.Address]domain.TicketStatus),
		}
		l.insertEvent(ev)
		l.setChecker(ev, caller, true)
		l.emit(domain.Notification{EventCreated: &domain.EventCreated{
			NameHash: NameHash(name),
			Name:     name,
			Owner:    caller,
			Price:    price,
			Quantity: quantity,
		}})
		created = ev.event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetEventData returns a copy of the named event.
func (l *Ledger) GetEventData(name string) (*domain.Event, error) {
	ev, err := l.lookup(name)
	if err != nil {
		return nil, err
	}
	e := ev.event
	return &e, nil
}

// EventExists reports whether an event with the given name was created.
func (l *Ledger) EventExists(name string) bool {
	_, ok := l.events[name]
	return ok
}

// EventNames returns the names of all events in creation order.
func (l *Ledger) EventNames() []string {
	return append([]string(nil), l.names...)
}

// NameHash returns the 0x-prefixed Keccak-256 digest of an event name.
func NameHash(name string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	return "0x" + hex.EncodeToString(h.Sum(nil))
}
