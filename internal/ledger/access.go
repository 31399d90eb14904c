package ledger

import "eventticketing/internal/domain"

// AddChecker grants addr check-in rights for the event. Only the owner may
// call it.
func (l *Ledger) AddChecker(caller domain.Address, name string, addr domain.Address) error {
	return l.atomic(func() error {
		ev, err := l.ownedBy(caller, name)
		if err != nil {
			return err
		}
		if _, ok := ev.checkers[addr]; ok {
			return domain.ErrAlreadyChecker
		}
		l.setChecker(ev, addr, true)
		return nil
	})
}

// RemoveChecker revokes addr's check-in rights. The owner may remove
// themself.
func (l *Ledger) RemoveChecker(caller domain.Address, name string, addr domain.Address) error {
	return l.atomic(func() error {
		ev, err := l.ownedBy(caller, name)
		if err != nil {
			return err
		}
		if _, ok := ev.checkers[addr]; !ok {
			return domain.ErrNotAChecker
		}
		l.setChecker(ev, addr, false)
		return nil
	})
}

// GetCheckerStatus reports whether addr is a checker for the event. Unknown
// events have no checkers.
func (l *Ledger) GetCheckerStatus(name string, addr domain.Address) bool {
	ev, ok := l.events[name]
	if !ok {
		return false
	}
	_, ok = ev.checkers[addr]
	return ok
}

func (l *Ledger) ownedBy(caller domain.Address, name string) (*eventState, error) {
	ev, err := l.lookup(name)
	if err != nil {
		return nil, err
	}
	if ev.event.Owner != caller {
		return nil, domain.ErrUnauthorized
	}
	return ev, nil
}
