// Package transport defines the wire-level DTOs for the quotes module.
package transport

// Category values accepted by the quotation endpoint.
const (
	CategoryCurtain     = "curtain"
	CategoryRollerBlind = "roller-blind"
	CategoryPanelTrack  = "panel-track"
)

// Finish tiers.
const (
	FinishStandard = "standard"
	FinishPremium  = "premium"
)

// Rail/track accessory selections. Only meaningful for curtains.
const (
	RailNone      = "none"
	RailRail      = "rail"
	RailTrack     = "track"
	RailMotorized = "motorized"
)

// CustomerDetails is the contact block of a quotation request.
// Everything except the email is free text.
type CustomerDetails struct {
	Name       string `json:"name" validate:"omitempty,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=32"`
	Address    string `json:"address" validate:"omitempty,max=240"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=16"`
	City       string `json:"city" validate:"omitempty,max=80"`
}

// QuoteRequest is the inbound payload of POST /api/v1/quotes.
// Field order matters: the validator reports the first violation, and the
// contract is category before dimensions before contact details.
type QuoteRequest struct {
	Category     string          `json:"category" validate:"required,oneof=curtain roller-blind panel-track"`
	Finish       string          `json:"finish" validate:"omitempty,oneof=standard premium"`
	Width        float64         `json:"width" validate:"required,dimension"`
	Height       float64         `json:"height" validate:"required,dimension"`
	Installation bool            `json:"installation"`
	Urgency      bool            `json:"urgency"`
	Blackout     bool            `json:"blackout"`
	RailOrTrack  string          `json:"railOrTrack" validate:"omitempty,oneof=none rail track motorized"`
	Notes        string          `json:"notes" validate:"omitempty,max=500"`
	Customer     CustomerDetails `json:"customer" validate:"required"`
}

// QuoteResult is the estimator output. Amounts are euro cents; the response
// exposes only the total, the breakdown feeds the PDF summary.
type QuoteResult struct {
	AreaM2           float64
	BaseCents        int64
	InstallFeeCents  int64
	UrgencyFeeCents  int64
	BlackoutFeeCents int64
	RailFeeCents     int64
	MinimumApplied   bool
	TotalCents       int64
}

// QuoteResponse is the success body of POST /api/v1/quotes.
type QuoteResponse struct {
	Success     bool    `json:"success"`
	Total       float64 `json:"total"`
	QuoteNumber string  `json:"quoteNumber"`
}
