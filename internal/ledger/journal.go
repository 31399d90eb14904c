package ledger

import "eventticketing/internal/domain"

// journal records how to undo every mutation made by the operations currently
// in flight. Nested operations (a gateway re-entering the ledger) share the
// journal of the outer one, so rolling back the outer operation also rolls
// back whatever the nested ones did.
type journal struct {
	undo    []func()
	pending []domain.Notification
	depth   int
}

func (j *journal) record(fn func()) {
	j.undo = append(j.undo, fn)
}

func (j *journal) revert(mark int) {
	for i := len(j.undo) - 1; i >= mark; i-- {
		j.undo[i]()
	}
	j.undo = j.undo[:mark]
}

// atomic runs fn as one operation. If fn fails or panics every mutation it
// made, including those of nested operations, is undone and its
// notifications are dropped. Notifications reach the outbox only when the
// outermost operation commits.
func (l *Ledger) atomic(fn func() error) (err error) {
	j := &l.journal
	undoMark, pendingMark := len(j.undo), len(j.pending)
	j.depth++
	committed := false
	defer func() {
		j.depth--
		if !committed {
			j.revert(undoMark)
			j.pending = j.pending[:pendingMark]
			return
		}
		if j.depth == 0 {
			l.outbox = append(l.outbox, j.pending...)
			j.pending = nil
			j.undo = j.undo[:0]
		}
	}()
	if err = fn(); err != nil {
		return err
	}
	committed = true
	return nil
}

// guardExternal rejects an operation that calls a gateway while another
// operation is in flight. A nested transfer cannot be undone if the outer
// operation later rolls back.
func (l *Ledger) guardExternal() error {
	if l.journal.depth > 0 {
		return domain.ErrReentrantCall
	}
	return nil
}

func (l *Ledger) emit(n domain.Notification) {
	l.journal.pending = append(l.journal.pending, n)
}

func (l *Ledger) insertEvent(ev *eventState) {
	name := ev.event.Name
	l.events[name] = ev
	l.names = append(l.names, name)
	l.journal.record(func() {
		delete(l.events, name)
		l.names = l.names[:len(l.names)-1]
	})
}

func (l *Ledger) setIssued(ev *eventState, n uint64) {
	prev := ev.event.TicketQuantityIssued
	ev.event.TicketQuantityIssued = n
	l.journal.record(func() { ev.event.TicketQuantityIssued = prev })
}

func (l *Ledger) setStatus(ev *eventState, holder domain.Address, s domain.TicketStatus) {
	prev := ev.tickets[holder]
	putStatus(ev, holder, s)
	l.journal.record(func() { putStatus(ev, holder, prev) })
}

func putStatus(ev *eventState, holder domain.Address, s domain.TicketStatus) {
	if s == domain.TicketNone {
		delete(ev.tickets, holder)
		return
	}
	ev.tickets[holder] = s
}

func (l *Ledger) setChecker(ev *eventState, addr domain.Address, member bool) {
	_, prev := ev.checkers[addr]
	putChecker(ev, addr, member)
	l.journal.record(func() { putChecker(ev, addr, prev) })
}

func putChecker(ev *eventState, addr domain.Address, member bool) {
	if member {
		ev.checkers[addr] = struct{}{}
		return
	}
	delete(ev.checkers, addr)
}

func (l *Ledger) setBalance(key balanceKey, amount uint64) {
	prev := l.balances[key]
	putBalance(l.balances, key, amount)
	l.journal.record(func() { putBalance(l.balances, key, prev) })
}

func putBalance(m map[balanceKey]uint64, key balanceKey, amount uint64) {
	if amount == 0 {
		delete(m, key)
		return
	}
	m[key] = amount
}
