package service

import (
	"orcamento_backend/internal/quotes/transport"
	"orcamento_backend/platform/config"
)

// categoryPricing holds the per-finish rates and floor for one category.
type categoryPricing struct {
	StandardRateCents int64 // cents per square meter
	PremiumRateCents  int64
	MinimumCents      int64
}

// PriceBook is the read-only pricing table built once at startup.
// It is shared across requests without synchronization because nothing
// mutates it after construction.
type PriceBook struct {
	categories map[string]categoryPricing

	InstallFeeCents        int64
	UrgencyFeeCents        int64
	BlackoutRateCentsPerM2 int64
	RailFeeCents           int64
}

// NewPriceBook builds the price book from configuration.
func NewPriceBook(cfg config.PricingConfig) PriceBook {
	p := cfg.GetPricing()
	return PriceBook{
		categories: map[string]categoryPricing{
			transport.CategoryCurtain: {
				StandardRateCents: p.CurtainStandardRateCents,
				PremiumRateCents:  p.CurtainPremiumRateCents,
				MinimumCents:      p.CurtainMinimumCents,
			},
			transport.CategoryRollerBlind: {
				StandardRateCents: p.RollerStandardRateCents,
				PremiumRateCents:  p.RollerPremiumRateCents,
				MinimumCents:      p.RollerMinimumCents,
			},
			transport.CategoryPanelTrack: {
				StandardRateCents: p.PanelStandardRateCents,
				PremiumRateCents:  p.PanelPremiumRateCents,
				MinimumCents:      p.PanelMinimumCents,
			},
		},
		InstallFeeCents:        p.InstallFeeCents,
		UrgencyFeeCents:        p.UrgencyFeeCents,
		BlackoutRateCentsPerM2: p.BlackoutRateCentsPerM2,
		RailFeeCents:           p.RailFeeCents,
	}
}

// RateCents returns the per-m2 rate for a category and finish.
// The validator guarantees the category is known before this is called.
func (b PriceBook) RateCents(category, finish string) int64 {
	cp := b.categories[category]
	if finish == transport.FinishPremium {
		return cp.PremiumRateCents
	}
	return cp.StandardRateCents
}

// MinimumCents returns the floor total for a category.
func (b PriceBook) MinimumCents(category string) int64 {
	return b.categories[category].MinimumCents
}
