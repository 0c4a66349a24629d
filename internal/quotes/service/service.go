// Package service implements the quotation pipeline:
// validate, estimate, render the PDF summary, email it to the customer.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"orcamento_backend/internal/email"
	"orcamento_backend/internal/quotes/transport"
	"orcamento_backend/platform/apperr"
	"orcamento_backend/platform/events"
	"orcamento_backend/platform/logger"
	"orcamento_backend/platform/phone"
	"orcamento_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Renderer produces the one-page PDF summary for a priced request.
type Renderer interface {
	Render(req transport.QuoteRequest, result transport.QuoteResult, quoteNumber string, issuedAt time.Time) ([]byte, error)
}

// Mailer delivers the rendered summary to the customer.
type Mailer interface {
	SendQuoteSummaryEmail(ctx context.Context, toEmail, customerName, quoteNumber string, totalCents int64, attachments ...email.Attachment) error
}

// Service orchestrates one quotation request end to end. It holds no mutable
// state: the price book is read-only and every request is independent.
type Service struct {
	book     PriceBook
	renderer Renderer
	mailer   Mailer
	log      *logger.Logger
	bus      events.Bus
	now      func() time.Time
}

// New creates the quote service. A nil mailer means delivery is not
// configured; submissions then fail with a configuration error.
func New(book PriceBook, renderer Renderer, mailer Mailer, log *logger.Logger) *Service {
	return &Service{
		book:     book,
		renderer: renderer,
		mailer:   mailer,
		log:      log,
		now:      time.Now,
	}
}

// SetEventBus injects the domain event bus.
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// SetClock overrides the time source. Used by tests to pin the issue date.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// DeliveryConfigured reports whether an outbound mail transport is available.
func (s *Service) DeliveryConfigured() bool {
	return s.mailer != nil
}

// Submit runs the pipeline for one request. The request must already have
// passed struct validation at the handler; Submit adds the cross-field rules,
// then estimates, renders and delivers. Any stage failure aborts the request,
// nothing partial is kept.
func (s *Service) Submit(ctx context.Context, req transport.QuoteRequest) (transport.QuoteResponse, error) {
	var resp transport.QuoteResponse

	if s.mailer == nil {
		return resp, apperr.Unavailable("email delivery is not configured")
	}

	req = normalize(req)
	if err := validateCategoryOptions(req); err != nil {
		return resp, err
	}

	result := Estimate(req, s.book)
	if s.bus != nil {
		s.bus.Publish(ctx, QuoteEstimatedEvent{
			BaseEvent:      events.NewBaseEvent(),
			Category:       req.Category,
			AreaM2:         result.AreaM2,
			TotalCents:     result.TotalCents,
			MinimumApplied: result.MinimumApplied,
		})
	}

	quoteNumber := newQuoteNumber()
	issuedAt := s.now()

	doc, err := s.renderer.Render(req, result, quoteNumber, issuedAt)
	if err != nil {
		return resp, apperr.Wrap(apperr.KindInternal, "failed to render quote document", err)
	}

	attachment := email.Attachment{
		Content:  doc,
		FileName: fmt.Sprintf("orcamento-%s.pdf", quoteNumber),
		MIMEType: "application/pdf",
	}
	if err := s.mailer.SendQuoteSummaryEmail(ctx, req.Customer.Email, req.Customer.Name, quoteNumber, result.TotalCents, attachment); err != nil {
		s.log.MailEvent("quote_summary", req.Customer.Email, false, err.Error())
		return resp, apperr.Wrap(apperr.KindUnavailable, "failed to deliver quote email: "+err.Error(), err)
	}
	s.log.MailEvent("quote_summary", req.Customer.Email, true, "")

	if s.bus != nil {
		s.bus.Publish(ctx, QuoteEmailedEvent{
			BaseEvent:     events.NewBaseEvent(),
			QuoteNumber:   quoteNumber,
			Category:      req.Category,
			CustomerEmail: req.Customer.Email,
			TotalCents:    result.TotalCents,
		})
	}

	return transport.QuoteResponse{
		Success:     true,
		Total:       float64(result.TotalCents) / 100.0,
		QuoteNumber: quoteNumber,
	}, nil
}

// normalize applies defaults and cleans the free-text fields before they
// reach the estimator, the PDF and the email template.
func normalize(req transport.QuoteRequest) transport.QuoteRequest {
	if req.Finish == "" {
		req.Finish = transport.FinishStandard
	}
	if req.RailOrTrack == "" {
		req.RailOrTrack = transport.RailNone
	}

	req.Customer.Name = sanitize.Text(req.Customer.Name)
	req.Customer.Address = sanitize.Text(req.Customer.Address)
	req.Customer.City = sanitize.Text(req.Customer.City)
	req.Customer.Phone = phone.NormalizeE164(req.Customer.Phone)
	req.Notes = sanitize.Text(req.Notes)

	return req
}

// validateCategoryOptions enforces the cross-field rules that struct tags
// cannot express.
func validateCategoryOptions(req transport.QuoteRequest) error {
	if req.Category != transport.CategoryCurtain && req.RailOrTrack != transport.RailNone {
		return apperr.Validation("railOrTrack is only available for the curtain category")
	}
	return nil
}

// newQuoteNumber generates a short human-readable reference for the email
// subject, the PDF header and the attachment filename.
func newQuoteNumber() string {
	return "ORC-" + strings.ToUpper(uuid.NewString()[:8])
}
