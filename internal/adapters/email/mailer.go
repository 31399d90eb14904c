package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"eventticketing/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charsetUTF8 = "UTF-8"

// SESConfig holds the AWS SES credentials used for withdrawal receipts.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailerConfig selects and configures the receipt mailer.
type MailerConfig struct {
	// Provider is "ses" or "noop". Anything else falls back to noop.
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// NewMailer returns the mailer for config.Provider.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "mailer", "provider", config.Provider)

	switch config.Provider {
	case "ses":
		return newSESMailer(config, logger), nil
	case "noop":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, receipts will not be delivered")
		return &noopMailer{logger: logger}, nil
	}
}

func newSESMailer(config MailerConfig, logger *slog.Logger) *sesMailer {
	if config.SES.InsecureSkipVerify {
		logger.Warn("TLS certificate verification is disabled for SES")
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.SES.InsecureSkipVerify,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
	awsCfg := aws.Config{
		Region: config.SES.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(config.SES.AccessKeyID, config.SES.SecretAccessKey, ""),
		),
		HTTPClient: httpClient,
	}

	source := config.FromAddress
	if config.FromName != "" {
		source = fmt.Sprintf("%s <%s>", config.FromName, config.FromAddress)
	}
	return &sesMailer{
		client:      ses.NewFromConfig(awsCfg),
		fromAddress: config.FromAddress,
		fromName:    config.FromName,
		source:      source,
		logger:      logger,
	}
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
	source      string
	logger      *slog.Logger
}

func content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String(charsetUTF8)}
}

func (s *sesMailer) Send(ctx context.Context, to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = content(html)
	}
	if text != "" {
		body.Text = content(text)
	}
	result, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(s.source),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message:     &types.Message{Subject: content(subject), Body: body},
	})
	if err != nil {
		return fmt.Errorf("send receipt via SES: %w", err)
	}
	s.logger.InfoContext(ctx, "receipt sent", "to", to, "message_id", aws.ToString(result.MessageId))
	return nil
}

// noopMailer logs receipts instead of delivering them.
type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, _, _ string) error {
	n.logger.InfoContext(ctx, "receipt not delivered", "to", to, "subject", subject)
	return nil
}
