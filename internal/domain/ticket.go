package domain

import (
	"encoding/json"
	"fmt"
)

// TicketStatus is the state of one holder's ticket for one event.
type TicketStatus uint8

const (
	TicketNone TicketStatus = iota
	TicketUnclaimed
	TicketClaimed
)

func (s TicketStatus) String() string {
	switch s {
	case TicketNone:
		return "none"
	case TicketUnclaimed:
		return "unclaimed"
	case TicketClaimed:
		return "claimed"
	default:
		return fmt.Sprintf("TicketStatus(%d)", uint8(s))
	}
}

// MarshalJSON encodes the status by name so API clients do not depend on the
// numeric ordering.
func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (s *TicketStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	switch name {
	case "none":
		*s = TicketNone
	case "unclaimed":
		*s = TicketUnclaimed
	case "claimed":
		*s = TicketClaimed
	default:
		return fmt.Errorf("unknown ticket status %q", name)
	}
	return nil
}
