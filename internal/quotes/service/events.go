package service

import "orcamento_backend/platform/events"

// EventQuoteEstimated is published after the estimator priced a request.
const EventQuoteEstimated = "quote.estimated"

// EventQuoteEmailed is published after the summary was delivered to the customer.
const EventQuoteEmailed = "quote.emailed"

// QuoteEstimatedEvent carries the pricing outcome for the audit log. It fires
// before delivery, so a failed email still leaves an estimate trace.
type QuoteEstimatedEvent struct {
	events.BaseEvent
	Category       string
	AreaM2         float64
	TotalCents     int64
	MinimumApplied bool
}

// EventName identifies the event type on the bus.
func (QuoteEstimatedEvent) EventName() string { return EventQuoteEstimated }

// QuoteEmailedEvent carries the facts the audit log needs about a delivered quote.
type QuoteEmailedEvent struct {
	events.BaseEvent
	QuoteNumber   string
	Category      string
	CustomerEmail string
	TotalCents    int64
}

// EventName identifies the event type on the bus.
func (QuoteEmailedEvent) EventName() string { return EventQuoteEmailed }
