// Package pdf renders the one-page quotation summary using maroto/v2.
// The document carries the customer block, the order details conditional on
// the chosen category, the estimated total and the indicative-price
// disclaimer required before on-site confirmation.
package pdf

import (
	"fmt"
	"time"

	"orcamento_backend/internal/quotes/transport"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}    // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128} // gray-500
	colorAccent    = &props.Color{Red: 180, Green: 83, Blue: 9}    // amber-700
	colorTableHead = &props.Color{Red: 254, Green: 243, Blue: 199} // amber-100
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240} // slate-200
)

const brandName = "Guialar"
const disclaimerText = "Valor indicativo. O preço final será confirmado após medição no local por um técnico."

// SummaryRenderer implements the quote service's Renderer interface.
type SummaryRenderer struct{}

// Render produces the PDF bytes for a priced quotation request.
func (SummaryRenderer) Render(req transport.QuoteRequest, result transport.QuoteResult, quoteNumber string, issuedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter()); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	// 1. Header: brand + ORÇAMENTO title and reference
	m.AddRows(buildHeader(quoteNumber, issuedAt)...)

	// 2. Separator line
	m.AddRows(row.New(1).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: colorBorder,
	}))
	m.AddRows(row.New(6)) // spacer

	// 3. Customer block
	m.AddRows(buildCustomerBlock(req.Customer)...)
	m.AddRows(row.New(6)) // spacer

	// 4. Order details, conditional on category
	m.AddRows(buildDetailsTable(detailLines(req, result))...)
	m.AddRows(row.New(4))

	// 5. Totals block with highlighted estimate
	m.AddRows(buildTotalsBlock(totalLines(result), result.TotalCents)...)

	// 6. Notes
	if req.Notes != "" {
		m.AddRows(row.New(6))
		m.AddRows(buildNotesBlock(req.Notes)...)
	}

	// 7. Disclaimer
	m.AddRows(row.New(8))
	m.AddRows(buildDisclaimer()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Line assembly (pure, no maroto types) ───────────────────────────────

// labelValue is one rendered line of the details or totals table.
type labelValue struct {
	Label string
	Value string
}

// detailLines maps a priced request to the order-detail lines, in display
// order. Deterministic for identical input: the renderer's only varying
// input is the issue date.
func detailLines(req transport.QuoteRequest, result transport.QuoteResult) []labelValue {
	lines := []labelValue{
		{Label: "Categoria", Value: categoryLabel(req.Category)},
		{Label: "Acabamento", Value: finishLabel(req.Finish)},
		{Label: "Largura", Value: formatMeters(req.Width)},
		{Label: "Altura", Value: formatMeters(req.Height)},
		{Label: "Área", Value: fmt.Sprintf("%.2f m2", result.AreaM2)},
	}

	if req.Category == transport.CategoryCurtain && req.RailOrTrack != "" && req.RailOrTrack != transport.RailNone {
		lines = append(lines, labelValue{Label: "Calha", Value: railLabel(req.RailOrTrack)})
	}
	if req.Blackout {
		lines = append(lines, labelValue{Label: "Forro blackout", Value: "Sim"})
	}
	if req.Installation {
		lines = append(lines, labelValue{Label: "Instalação incluída", Value: "Sim"})
	}
	if req.Urgency {
		lines = append(lines, labelValue{Label: "Pedido urgente", Value: "Sim"})
	}

	return lines
}

// totalLines maps the estimate breakdown to the totals lines, excluding the
// highlighted grand total.
func totalLines(result transport.QuoteResult) []labelValue {
	lines := []labelValue{
		{Label: "Valor base", Value: formatCurrency(result.BaseCents)},
	}

	if result.InstallFeeCents > 0 {
		lines = append(lines, labelValue{Label: "Instalação", Value: formatCurrency(result.InstallFeeCents)})
	}
	if result.UrgencyFeeCents > 0 {
		lines = append(lines, labelValue{Label: "Urgência", Value: formatCurrency(result.UrgencyFeeCents)})
	}
	if result.BlackoutFeeCents > 0 {
		lines = append(lines, labelValue{Label: "Forro blackout", Value: formatCurrency(result.BlackoutFeeCents)})
	}
	if result.RailFeeCents > 0 {
		lines = append(lines, labelValue{Label: "Calha", Value: formatCurrency(result.RailFeeCents)})
	}
	if result.MinimumApplied {
		lines = append(lines, labelValue{Label: "Valor mínimo da categoria aplicado", Value: ""})
	}

	return lines
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(quoteNumber string, issuedAt time.Time) []core.Row {
	brandCol := col.New(4).Add(
		text.New(brandName, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Top:   4,
		}),
	)

	titleCol := col.New(8).Add(
		text.New("ORÇAMENTO", props.Text{
			Size:  24,
			Style: fontstyle.Bold,
			Align: align.Right,
			Color: colorAccent,
		}),
		text.New(quoteNumber, props.Text{
			Size:  11,
			Align: align.Right,
			Color: colorSecondary,
			Top:   12,
		}),
	)

	return []core.Row{
		row.New(20).Add(brandCol, titleCol),
		row.New(5).Add(
			col.New(12).Add(text.New("Data: "+issuedAt.Format("02-01-2006"), props.Text{
				Size:  8,
				Color: colorSecondary,
				Align: align.Right,
			})),
		),
	}
}

// ── Customer block ──────────────────────────────────────────────────────

func buildCustomerBlock(customer transport.CustomerDetails) []core.Row {
	rows := []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("CLIENTE", props.Text{Size: 7, Style: fontstyle.Bold, Color: colorAccent})),
		),
	}

	name := customer.Name
	if name == "" {
		name = customer.Email
	}
	rows = append(rows, row.New(5).Add(
		col.New(12).Add(text.New(name, props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary})),
	))
	rows = append(rows, row.New(5).Add(
		col.New(12).Add(text.New(customer.Email, props.Text{Size: 8, Color: colorSecondary})),
	))

	if customer.Phone != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(customer.Phone, props.Text{Size: 8, Color: colorSecondary})),
		))
	}

	address := customer.Address
	if customer.PostalCode != "" || customer.City != "" {
		locality := customer.PostalCode
		if locality != "" && customer.City != "" {
			locality += " "
		}
		locality += customer.City
		if address != "" {
			address += ", "
		}
		address += locality
	}
	if address != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(address, props.Text{Size: 8, Color: colorSecondary})),
		))
	}

	return rows
}

// ── Order details ───────────────────────────────────────────────────────

func buildDetailsTable(lines []labelValue) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(12).Add(text.New("DETALHES DO PEDIDO", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
	}

	for _, line := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(line.Label, props.Text{Size: 8, Color: colorSecondary, Top: 1})),
			col.New(6).Add(text.New(line.Value, props.Text{Size: 8, Color: colorPrimary, Align: align.Right, Top: 1})),
		))
	}

	return rows
}

// ── Totals block ────────────────────────────────────────────────────────

func buildTotalsBlock(lines []labelValue, totalCents int64) []core.Row {
	rows := []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3), // spacer
	}

	labelStyle := props.Text{Size: 9, Color: colorSecondary, Align: align.Right}
	valueStyle := props.Text{Size: 9, Color: colorPrimary, Align: align.Right}

	for _, line := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(line.Label, labelStyle)),
			col.New(3).Add(text.New(line.Value, valueStyle)),
		))
	}

	rows = append(rows, row.New(2)) // spacer
	rows = append(rows, row.New(10).Add(
		col.New(9).Add(text.New("TOTAL ESTIMADO", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Align: align.Right,
			Top:   2,
		})),
		col.New(3).Add(text.New(formatCurrency(totalCents), props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Align: align.Right,
			Top:   2,
		})),
	).WithStyle(&props.Cell{
		BackgroundColor: colorTableHead,
		BorderType:      border.Top + border.Bottom,
		BorderColor:     colorBorder,
	}))

	return rows
}

// ── Notes ───────────────────────────────────────────────────────────────

func buildNotesBlock(notes string) []core.Row {
	return []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("OBSERVAÇÕES", props.Text{
				Size:  8,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
		row.New(12).Add(
			col.New(12).Add(text.New(notes, props.Text{
				Size:  8,
				Color: colorSecondary,
				Top:   1,
			})),
		),
	}
}

// ── Disclaimer ──────────────────────────────────────────────────────────

func buildDisclaimer() []core.Row {
	return []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3),
		row.New(5).Add(
			col.New(12).Add(text.New("CONDIÇÕES", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
		row.New(4).Add(
			col.New(12).Add(text.New(disclaimerText, props.Text{
				Size:  7,
				Color: colorSecondary,
			})),
		),
	}
}

// ── Footer (registered, repeats on every page) ──────────────────────────

func buildFooter() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(brandName+"  ·  guialar.net", props.Text{
				Size:  6.5,
				Color: colorSecondary,
				Align: align.Center,
				Top:   4,
			}),
		),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

// ── Helpers ─────────────────────────────────────────────────────────────

func categoryLabel(category string) string {
	switch category {
	case transport.CategoryCurtain:
		return "Cortinado"
	case transport.CategoryRollerBlind:
		return "Estore de rolo"
	case transport.CategoryPanelTrack:
		return "Painel japonês"
	default:
		return category
	}
}

func finishLabel(finish string) string {
	if finish == transport.FinishPremium {
		return "Premium"
	}
	return "Standard"
}

func railLabel(rail string) string {
	switch rail {
	case transport.RailRail:
		return "Varão"
	case transport.RailTrack:
		return "Calha simples"
	case transport.RailMotorized:
		return "Calha motorizada"
	default:
		return rail
	}
}

func formatCurrency(cents int64) string {
	return fmt.Sprintf("€ %.2f", float64(cents)/100.0)
}

func formatMeters(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}
