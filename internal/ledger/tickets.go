package ledger

import "eventticketing/internal/domain"

// issueTicket moves holder from None to Unclaimed and counts the ticket
// against the event's supply.
func (l *Ledger) issueTicket(ev *eventState, holder domain.Address) error {
	if ev.tickets[holder] != domain.TicketNone {
		return domain.ErrAlreadyHasTicket
	}
	if ev.event.SoldOut() {
		return domain.ErrSoldOut
	}
	l.setStatus(ev, holder, domain.TicketUnclaimed)
	l.setIssued(ev, ev.event.TicketQuantityIssued+1)
	return nil
}

// TransferUnclaimedTicket hands caller's unclaimed ticket to an address that
// holds none. The issued count does not change.
func (l *Ledger) TransferUnclaimedTicket(caller domain.Address, name string, to domain.Address) error {
	return l.atomic(func() error {
		ev, err := l.lookup(name)
		if err != nil {
			return err
		}
		if ev.tickets[caller] != domain.TicketUnclaimed {
			return domain.ErrNoUnclaimedTicket
		}
		if ev.tickets[to] != domain.TicketNone {
			return domain.ErrAlreadyHasTicket
		}
		l.setStatus(ev, caller, domain.TicketNone)
		l.setStatus(ev, to, domain.TicketUnclaimed)
		return nil
	})
}

// BurnUnclaimedTicket destroys caller's unclaimed ticket and returns it to the
// event's supply.
func (l *Ledger) BurnUnclaimedTicket(caller domain.Address, name string) error {
	return l.atomic(func() error {
		ev, err := l.lookup(name)
		if err != nil {
			return err
		}
		if ev.tickets[caller] != domain.TicketUnclaimed {
			return domain.ErrNoUnclaimedTicket
		}
		l.setStatus(ev, caller, domain.TicketNone)
		l.setIssued(ev, ev.event.TicketQuantityIssued-1)
		return nil
	})
}

// CheckInTicket marks holder's unclaimed ticket as claimed. caller must be a
// checker for the event. A holder with no ticket or an already claimed one is
// left as is and the call still succeeds.
func (l *Ledger) CheckInTicket(caller domain.Address, name string, holder domain.Address) error {
	return l.atomic(func() error {
		ev, err := l.lookup(name)
		if err != nil {
			return err
		}
		if _, ok := ev.checkers[caller]; !ok {
			return domain.ErrUnauthorized
		}
		switch ev.tickets[holder] {
		case domain.TicketUnclaimed:
			l.setStatus(ev, holder, domain.TicketClaimed)
		case domain.TicketNone, domain.TicketClaimed:
			// no-op
		}
		return nil
	})
}

// GetTicketStatus returns holder's ticket status, TicketNone if the pair was
// never issued a ticket or the event does not exist.
func (l *Ledger) GetTicketStatus(name string, holder domain.Address) domain.TicketStatus {
	ev, ok := l.events[name]
	if !ok {
		return domain.TicketNone
	}
	return ev.tickets[holder]
}

// CountHolders returns how many addresses hold a ticket of any status for
// the event.
func (l *Ledger) CountHolders(name string) int {
	ev, ok := l.events[name]
	if !ok {
		return 0
	}
	return len(ev.tickets)
}
