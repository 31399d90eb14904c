package services

import (
	"context"
	"fmt"
	"time"

	"eventticketing/internal/domain"
)

type activityPublisher struct {
	repo         domain.ActivityRepository
	emailService domain.EmailService
	receiptEmail string
}

// NewActivityPublisher returns a Publisher that records notifications in repo
// and, when receiptEmail is set, mails a receipt there for every withdrawal.
func NewActivityPublisher(repo domain.ActivityRepository, emailService domain.EmailService, receiptEmail string) domain.Publisher {
	return &activityPublisher{
		repo:         repo,
		emailService: emailService,
		receiptEmail: receiptEmail,
	}
}

func (p *activityPublisher) Publish(ctx context.Context, n domain.Notification) error {
	now := time.Now().UTC()
	switch {
	case n.EventCreated != nil:
		if err := p.repo.RecordEventCreated(ctx, n.EventCreated, now); err != nil {
			return fmt.Errorf("record event created: %w", err)
		}
	case n.BalanceWithdrawn != nil:
		w := n.BalanceWithdrawn
		if err := p.repo.RecordBalanceWithdrawn(ctx, w, now); err != nil {
			return fmt.Errorf("record balance withdrawn: %w", err)
		}
		if p.receiptEmail == "" || p.emailService == nil {
			return nil
		}
		if err := p.emailService.SendWithdrawalReceipt(ctx, &domain.WithdrawalReceiptEmailData{
			Email:    p.receiptEmail,
			Receiver: w.Receiver,
			Asset:    w.Asset,
			Amount:   w.Amount,
		}); err != nil {
			return fmt.Errorf("send withdrawal receipt: %w", err)
		}
	default:
		return fmt.Errorf("%w: empty notification", domain.ErrInvalidInput)
	}
	return nil
}

type activityService struct {
	repo           domain.ActivityRepository
	contextTimeout time.Duration
}

// NewActivityService returns an ActivityService reading from repo.
func NewActivityService(repo domain.ActivityRepository, timeout time.Duration) domain.ActivityService {
	return &activityService{repo: repo, contextTimeout: timeout}
}

func (s *activityService) ListEventsByOwner(ctx context.Context, owner domain.Address, params domain.PageRequest) ([]*domain.EventCreatedRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if owner == "" {
		return nil, 0, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	records, total, err := s.repo.ListEventsByOwner(ctx, owner, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events by owner: %w", err)
	}
	return records, total, nil
}

func (s *activityService) ListWithdrawalsByReceiver(ctx context.Context, receiver domain.Address, params domain.PageRequest) ([]*domain.BalanceWithdrawnRecord, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if receiver == "" {
		return nil, 0, fmt.Errorf("%w: receiver is required", domain.ErrInvalidInput)
	}
	records, total, err := s.repo.ListWithdrawalsByReceiver(ctx, receiver, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list withdrawals by receiver: %w", err)
	}
	return records, total, nil
}
