package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventticketing/internal/domain"
	"eventticketing/internal/ledger"
)

// ticketSalesService hosts a ledger: it runs one operation at a time against
// it and publishes the notifications of committed operations.
type ticketSalesService struct {
	mu             sync.Mutex
	ledger         *ledger.Ledger
	publisher      domain.Publisher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewTicketSalesService wraps l. Gateway calls made by an operation are bound
// by timeout; publisher may be nil.
func NewTicketSalesService(l *ledger.Ledger, publisher domain.Publisher, logger *slog.Logger, timeout time.Duration) domain.TicketSalesService {
	return &ticketSalesService{
		ledger:         l,
		publisher:      publisher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// exec runs op with the ledger to itself. Gateways re-entering during op call
// the ledger directly and never reach exec.
func (s *ticketSalesService) exec(ctx context.Context, name string, op func(ctx context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	notes, err := s.run(opCtx, op)
	if err != nil {
		s.logger.DebugContext(ctx, "operation rejected", "op", name, "err", err)
		return err
	}
	s.logger.InfoContext(ctx, "operation committed", "op", name)

	// The operation is committed; its notifications go out even if the
	// caller has gone away or the gateway used up the deadline.
	pubCtx, pubCancel := context.WithTimeout(context.WithoutCancel(ctx), s.contextTimeout)
	defer pubCancel()
	s.publish(pubCtx, notes)
	return nil
}

// run holds the lock for op and drains the notifications it committed. The
// lock is released even if op panics.
func (s *ticketSalesService) run(ctx context.Context, op func(ctx context.Context) error) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := op(ctx)
	return s.ledger.TakeNotifications(), err
}

func (s *ticketSalesService) publish(ctx context.Context, notes []domain.Notification) {
	if s.publisher == nil {
		return
	}
	for _, n := range notes {
		if err := s.publisher.Publish(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "publish notification", "kind", n.Kind(), "err", err)
		}
	}
}

func (s *ticketSalesService) CreateEvent(ctx context.Context, caller domain.Address, name string, price, quantity uint64) (*domain.Event, error) {
	var ev *domain.Event
	err := s.exec(ctx, "create_event", func(context.Context) error {
		var err error
		ev, err = s.ledger.CreateEvent(caller, name, price, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *ticketSalesService) GetEventData(ctx context.Context, name string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.GetEventData(name)
}

func (s *ticketSalesService) EventExists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.EventExists(name), nil
}

func (s *ticketSalesService) AddChecker(ctx context.Context, caller domain.Address, name string, checker domain.Address) error {
	return s.exec(ctx, "add_checker", func(context.Context) error {
		return s.ledger.AddChecker(caller, name, checker)
	})
}

func (s *ticketSalesService) RemoveChecker(ctx context.Context, caller domain.Address, name string, checker domain.Address) error {
	return s.exec(ctx, "remove_checker", func(context.Context) error {
		return s.ledger.RemoveChecker(caller, name, checker)
	})
}

func (s *ticketSalesService) GetCheckerStatus(ctx context.Context, name string, addr domain.Address) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.GetCheckerStatus(name, addr), nil
}

func (s *ticketSalesService) OwnerIssueTicket(ctx context.Context, caller domain.Address, name string, receiver domain.Address) error {
	return s.exec(ctx, "owner_issue_ticket", func(context.Context) error {
		return s.ledger.OwnerIssueTicket(caller, name, receiver)
	})
}

func (s *ticketSalesService) BuyTicketWithAsset(ctx context.Context, caller domain.Address, name string, receiver domain.Address) error {
	return s.exec(ctx, "buy_ticket_with_asset", func(ctx context.Context) error {
		return s.ledger.BuyTicketWithAsset(ctx, caller, name, receiver)
	})
}

func (s *ticketSalesService) TransferUnclaimedTicket(ctx context.Context, caller domain.Address, name string, to domain.Address) error {
	return s.exec(ctx, "transfer_unclaimed_ticket", func(context.Context) error {
		return s.ledger.TransferUnclaimedTicket(caller, name, to)
	})
}

func (s *ticketSalesService) BurnUnclaimedTicket(ctx context.Context, caller domain.Address, name string) error {
	return s.exec(ctx, "burn_unclaimed_ticket", func(context.Context) error {
		return s.ledger.BurnUnclaimedTicket(caller, name)
	})
}

func (s *ticketSalesService) CheckInTicket(ctx context.Context, caller domain.Address, name string, holder domain.Address) error {
	return s.exec(ctx, "check_in_ticket", func(context.Context) error {
		return s.ledger.CheckInTicket(caller, name, holder)
	})
}

func (s *ticketSalesService) GetTicketStatus(ctx context.Context, name string, holder domain.Address) (domain.TicketStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.GetTicketStatus(name, holder), nil
}

func (s *ticketSalesService) ClaimBalance(ctx context.Context, caller domain.Address, asset domain.AssetID) (uint64, error) {
	var amount uint64
	err := s.exec(ctx, "claim_balance", func(ctx context.Context) error {
		var err error
		amount, err = s.ledger.ClaimBalance(ctx, caller, asset)
		return err
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

func (s *ticketSalesService) GetBalance(ctx context.Context, owner domain.Address, asset domain.AssetID) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.GetBalance(owner, asset), nil
}
