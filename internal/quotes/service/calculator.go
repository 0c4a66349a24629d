package service

import (
	"math"

	"orcamento_backend/internal/quotes/transport"
)

// roundCents rounds a float amount to the nearest cent (integer)
func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// Estimate computes the price estimate for a validated request.
// It is a pure function: no side effects, deterministic, identical input
// always yields identical output. Zero or negative dimensions are the
// validator's responsibility and are never clamped here.
//
// The formula: area times the per-category/finish rate, plus flat fees for
// installation and urgency, plus an area-proportional blackout surcharge,
// plus a rail fee for curtains with an accessory selected. The category
// minimum applies after all surcharges, then the total is rounded to cents.
func Estimate(req transport.QuoteRequest, book PriceBook) transport.QuoteResult {
	finish := req.Finish
	if finish == "" {
		finish = transport.FinishStandard
	}
	rail := req.RailOrTrack
	if rail == "" {
		rail = transport.RailNone
	}

	area := req.Width * req.Height
	base := area * float64(book.RateCents(req.Category, finish))

	result := transport.QuoteResult{
		AreaM2:    area,
		BaseCents: roundCents(base),
	}

	total := base
	if req.Installation {
		result.InstallFeeCents = book.InstallFeeCents
		total += float64(book.InstallFeeCents)
	}
	if req.Urgency {
		result.UrgencyFeeCents = book.UrgencyFeeCents
		total += float64(book.UrgencyFeeCents)
	}
	if req.Blackout {
		result.BlackoutFeeCents = roundCents(area * float64(book.BlackoutRateCentsPerM2))
		total += float64(result.BlackoutFeeCents)
	}
	if req.Category == transport.CategoryCurtain && rail != transport.RailNone {
		result.RailFeeCents = book.RailFeeCents
		total += float64(book.RailFeeCents)
	}

	totalCents := roundCents(total)
	if minimum := book.MinimumCents(req.Category); totalCents < minimum {
		totalCents = minimum
		result.MinimumApplied = true
	}
	result.TotalCents = totalCents

	return result
}
