package service

import (
	"reflect"
	"testing"

	"orcamento_backend/internal/quotes/transport"
)

func testBook() PriceBook {
	return PriceBook{
		categories: map[string]categoryPricing{
			transport.CategoryCurtain:     {StandardRateCents: 2500, PremiumRateCents: 3900, MinimumCents: 6000},
			transport.CategoryRollerBlind: {StandardRateCents: 3200, PremiumRateCents: 4500, MinimumCents: 7500},
			transport.CategoryPanelTrack:  {StandardRateCents: 3600, PremiumRateCents: 5200, MinimumCents: 9000},
		},
		InstallFeeCents:        3500,
		UrgencyFeeCents:        2500,
		BlackoutRateCentsPerM2: 900,
		RailFeeCents:           1800,
	}
}

func TestEstimate_BaseCurtainStandard(t *testing.T) {
	req := transport.QuoteRequest{
		Category: transport.CategoryCurtain,
		Finish:   transport.FinishStandard,
		Width:    2,
		Height:   1.5,
	}

	result := Estimate(req, testBook())

	if result.AreaM2 != 3 {
		t.Fatalf("expected area 3, got %v", result.AreaM2)
	}
	if result.TotalCents != 7500 {
		t.Fatalf("expected total 7500, got %d", result.TotalCents)
	}
	if result.MinimumApplied {
		t.Fatal("minimum should not apply above the floor")
	}
}

func TestEstimate_SurchargesAddExactly(t *testing.T) {
	base := transport.QuoteRequest{
		Category: transport.CategoryCurtain,
		Width:    2,
		Height:   1.5,
	}
	withFees := base
	withFees.Installation = true
	withFees.Urgency = true

	book := testBook()
	plain := Estimate(base, book)
	surcharged := Estimate(withFees, book)

	delta := surcharged.TotalCents - plain.TotalCents
	if delta != book.InstallFeeCents+book.UrgencyFeeCents {
		t.Fatalf("expected delta %d, got %d", book.InstallFeeCents+book.UrgencyFeeCents, delta)
	}
}

func TestEstimate_BlackoutScalesWithArea(t *testing.T) {
	req := transport.QuoteRequest{
		Category: transport.CategoryRollerBlind,
		Width:    2,
		Height:   2,
		Blackout: true,
	}

	result := Estimate(req, testBook())

	if result.BlackoutFeeCents != 3600 {
		t.Fatalf("expected blackout fee 3600 for 4 m2, got %d", result.BlackoutFeeCents)
	}
	if result.TotalCents != 4*3200+3600 {
		t.Fatalf("expected total %d, got %d", 4*3200+3600, result.TotalCents)
	}
}

func TestEstimate_RailFeeOnlyForCurtains(t *testing.T) {
	book := testBook()

	curtain := Estimate(transport.QuoteRequest{
		Category:    transport.CategoryCurtain,
		Width:       2,
		Height:      1.5,
		RailOrTrack: transport.RailTrack,
	}, book)
	if curtain.RailFeeCents != book.RailFeeCents {
		t.Fatalf("expected rail fee %d for curtain, got %d", book.RailFeeCents, curtain.RailFeeCents)
	}

	curtainNone := Estimate(transport.QuoteRequest{
		Category:    transport.CategoryCurtain,
		Width:       2,
		Height:      1.5,
		RailOrTrack: transport.RailNone,
	}, book)
	if curtainNone.RailFeeCents != 0 {
		t.Fatalf("expected no rail fee for selection none, got %d", curtainNone.RailFeeCents)
	}
}

func TestEstimate_MinimumAppliesAfterSurcharges(t *testing.T) {
	book := testBook()

	// 0.5 x 0.5 m curtain: base 625 cents, floored at 6000.
	small := Estimate(transport.QuoteRequest{
		Category: transport.CategoryCurtain,
		Width:    0.5,
		Height:   0.5,
	}, book)
	if small.TotalCents != book.MinimumCents(transport.CategoryCurtain) {
		t.Fatalf("expected floor %d, got %d", book.MinimumCents(transport.CategoryCurtain), small.TotalCents)
	}
	if !small.MinimumApplied {
		t.Fatal("expected MinimumApplied for a below-floor estimate")
	}

	// Same area with installation: 625 + 3500 = 4125, still below the
	// floor. The minimum applies to the surcharged total, not the base.
	withInstall := Estimate(transport.QuoteRequest{
		Category:     transport.CategoryCurtain,
		Width:        0.5,
		Height:       0.5,
		Installation: true,
	}, book)
	if withInstall.TotalCents != book.MinimumCents(transport.CategoryCurtain) {
		t.Fatalf("expected floor %d after surcharges, got %d", book.MinimumCents(transport.CategoryCurtain), withInstall.TotalCents)
	}
}

func TestEstimate_FloorInvariantAcrossCategories(t *testing.T) {
	book := testBook()
	for _, category := range []string{transport.CategoryCurtain, transport.CategoryRollerBlind, transport.CategoryPanelTrack} {
		for _, finish := range []string{transport.FinishStandard, transport.FinishPremium} {
			result := Estimate(transport.QuoteRequest{
				Category: category,
				Finish:   finish,
				Width:    0.4,
				Height:   0.6,
			}, book)
			if result.TotalCents < book.MinimumCents(category) {
				t.Fatalf("category %s finish %s: total %d below floor %d", category, finish, result.TotalCents, book.MinimumCents(category))
			}
		}
	}
}

func TestEstimate_FinishDefaultsToStandard(t *testing.T) {
	book := testBook()

	blank := Estimate(transport.QuoteRequest{
		Category: transport.CategoryCurtain,
		Width:    2,
		Height:   2,
	}, book)
	standard := Estimate(transport.QuoteRequest{
		Category: transport.CategoryCurtain,
		Finish:   transport.FinishStandard,
		Width:    2,
		Height:   2,
	}, book)

	if blank.TotalCents != standard.TotalCents {
		t.Fatalf("expected blank finish to price as standard: %d vs %d", blank.TotalCents, standard.TotalCents)
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	req := transport.QuoteRequest{
		Category:     transport.CategoryPanelTrack,
		Finish:       transport.FinishPremium,
		Width:        1.8,
		Height:       2.2,
		Installation: true,
		Blackout:     true,
	}
	book := testBook()

	first := Estimate(req, book)
	second := Estimate(req, book)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
