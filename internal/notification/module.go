// Package notification subscribes to domain events and writes the audit
// trail. It is not HTTP-facing and holds no state: every event becomes one
// structured log line.
package notification

import (
	"context"
	"fmt"

	quoteservice "orcamento_backend/internal/quotes/service"
	"orcamento_backend/platform/events"
	"orcamento_backend/platform/logger"
)

// Module is the event-subscribing audit module.
type Module struct {
	log *logger.Logger
}

// New creates the notification module.
func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

// RegisterHandlers subscribes the module to the domain events it audits.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(quoteservice.EventQuoteEstimated, events.HandlerFunc(m.handleQuoteEstimated))
	bus.Subscribe(quoteservice.EventQuoteEmailed, events.HandlerFunc(m.handleQuoteEmailed))
}

func (m *Module) handleQuoteEstimated(ctx context.Context, event events.Event) error {
	e, ok := event.(quoteservice.QuoteEstimatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventName())
	}

	m.log.Info("quote_estimated",
		"category", e.Category,
		"area_m2", e.AreaM2,
		"total_cents", e.TotalCents,
		"minimum_applied", e.MinimumApplied,
	)
	return nil
}

func (m *Module) handleQuoteEmailed(ctx context.Context, event events.Event) error {
	e, ok := event.(quoteservice.QuoteEmailedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventName())
	}

	m.log.Info("quote_emailed",
		"quote_number", e.QuoteNumber,
		"category", e.Category,
		"customer_email", e.CustomerEmail,
		"total_cents", e.TotalCents,
	)
	return nil
}
