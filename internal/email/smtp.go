package email

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface using a direct SMTP connection
// via go-mail. Connection parameters come from process-wide configuration,
// never from request input.
type SMTPSender struct {
	host        string
	port        int
	username    string
	password    string
	fromName    string
	fromEmail   string
	operatorBCC string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
// operatorBCC may be empty; when set, every quote email is duplicated to it.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName, operatorBCC string) *SMTPSender {
	return &SMTPSender{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		fromName:    fromName,
		fromEmail:   fromEmail,
		operatorBCC: operatorBCC,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string, attachments ...Attachment) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	if s.operatorBCC != "" {
		if err := msg.Bcc(s.operatorBCC); err != nil {
			return fmt.Errorf("smtp bcc: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	for _, att := range attachments {
		msg.AttachReader(att.FileName, bytes.NewReader(att.Content))
	}

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// SendQuoteSummaryEmail delivers the quotation summary with the PDF attached.
func (s *SMTPSender) SendQuoteSummaryEmail(ctx context.Context, toEmail, customerName, quoteNumber string, totalCents int64, attachments ...Attachment) error {
	subject := fmt.Sprintf(subjectQuoteSummaryFmt, quoteNumber)
	content, err := renderEmailTemplate("quote_summary.html", quoteSummaryEmailData{
		baseEmailData: baseEmailData{
			Title:   "O seu orçamento",
			Heading: "O seu orçamento",
		},
		CustomerName:   customerName,
		QuoteNumber:    quoteNumber,
		TotalFormatted: formatCurrencyEUR(totalCents),
		HasAttachments: len(attachments) > 0,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content, attachments...)
}
