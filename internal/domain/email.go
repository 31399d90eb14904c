package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WithdrawalReceiptEmailData holds data for the withdrawal receipt email.
type WithdrawalReceiptEmailData struct {
	Email    string
	Receiver Address
	Asset    AssetID
	Amount   uint64
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWithdrawalReceipt(ctx context.Context, data *WithdrawalReceiptEmailData) error
}
