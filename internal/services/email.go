package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventticketing/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendWithdrawalReceipt sends the "withdrawal_receipt" email for one claimed escrow balance.
func (s *emailService) SendWithdrawalReceipt(ctx context.Context, data *domain.WithdrawalReceiptEmailData) error {
	if data == nil {
		return fmt.Errorf("withdrawal receipt data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("withdrawal_receipt", data)
	if err != nil {
		return fmt.Errorf("failed to render withdrawal_receipt template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send withdrawal receipt: %w", err)
	}
	s.logger.InfoContext(ctx, "withdrawal receipt sent", "receiver", data.Receiver, "to", data.Email)
	return nil
}
