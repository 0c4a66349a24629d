// Package email provides outbound email delivery for the quotation service.
package email

import (
	"context"

	"orcamento_backend/platform/config"
)

// Attachment represents a file attachment for an email.
type Attachment struct {
	Content  []byte // raw file bytes
	FileName string // e.g. "orcamento-ORC-1A2B3C4D.pdf"
	MIMEType string // e.g. "application/pdf"
}

// Sender delivers customer-facing email.
type Sender interface {
	SendQuoteSummaryEmail(ctx context.Context, toEmail, customerName, quoteNumber string, totalCents int64, attachments ...Attachment) error
}

// NoopSender is used in tests and environments without delivery.
type NoopSender struct{}

// SendQuoteSummaryEmail does nothing and reports success.
func (NoopSender) SendQuoteSummaryEmail(ctx context.Context, toEmail, customerName, quoteNumber string, totalCents int64, attachments ...Attachment) error {
	return nil
}

// NewSender builds the configured Sender. A disabled mail configuration
// returns (nil, nil): the caller treats a nil sender as delivery not
// configured and fails submissions with a configuration error.
func NewSender(cfg config.MailConfig) (Sender, error) {
	if !cfg.GetMailEnabled() {
		return nil, nil
	}
	return NewSMTPSender(
		cfg.GetMailHost(),
		cfg.GetMailPort(),
		cfg.GetMailUsername(),
		cfg.GetMailPassword(),
		cfg.GetMailFromAddress(),
		cfg.GetMailFromName(),
		cfg.GetMailOperatorBCC(),
	), nil
}
