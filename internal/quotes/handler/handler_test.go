package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orcamento_backend/internal/email"
	"orcamento_backend/internal/quotes/service"
	"orcamento_backend/internal/quotes/transport"
	"orcamento_backend/platform/config"
	"orcamento_backend/platform/logger"
	"orcamento_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type fakeRenderer struct {
	calls int
}

func (r *fakeRenderer) Render(req transport.QuoteRequest, result transport.QuoteResult, quoteNumber string, issuedAt time.Time) ([]byte, error) {
	r.calls++
	return []byte("%PDF-fake"), nil
}

type fakeMailer struct {
	calls int
	err   error
}

func (m *fakeMailer) SendQuoteSummaryEmail(ctx context.Context, toEmail, customerName, quoteNumber string, totalCents int64, attachments ...email.Attachment) error {
	m.calls++
	return m.err
}

func testPricing() *config.Config {
	return &config.Config{
		Pricing: config.PricingValues{
			CurtainStandardRateCents: 2500,
			CurtainPremiumRateCents:  3900,
			RollerStandardRateCents:  3200,
			RollerPremiumRateCents:   4500,
			PanelStandardRateCents:   3600,
			PanelPremiumRateCents:    5200,
			CurtainMinimumCents:      6000,
			RollerMinimumCents:       7500,
			PanelMinimumCents:        9000,
			InstallFeeCents:          3500,
			UrgencyFeeCents:          2500,
			BlackoutRateCentsPerM2:   900,
			RailFeeCents:             1800,
		},
	}
}

func newTestRouter(t *testing.T, mailer service.Mailer) (*gin.Engine, *fakeRenderer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer := &fakeRenderer{}
	svc := service.New(service.NewPriceBook(testPricing()), renderer, mailer, logger.New("development"))
	h := New(svc, validator.New())

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api/v1/quotes"))
	return engine, renderer
}

func postQuote(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if payload.Success {
		t.Fatal("expected success=false in error envelope")
	}
	return payload.Error
}

const validBody = `{
	"category": "curtain",
	"width": 2,
	"height": 1.5,
	"customer": {"name": "Maria Silva", "email": "maria@example.com"}
}`

func TestSubmit_ValidRequest(t *testing.T) {
	engine, renderer := newTestRouter(t, &fakeMailer{})

	rec := postQuote(t, engine, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload transport.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success=true")
	}
	if payload.Total != 75.0 {
		t.Fatalf("expected total 75.00, got %v", payload.Total)
	}
	if payload.QuoteNumber == "" {
		t.Fatal("expected a quote number")
	}
	if renderer.calls != 1 {
		t.Fatalf("expected one render, got %d", renderer.calls)
	}
}

func TestSubmit_MalformedJSON(t *testing.T) {
	engine, _ := newTestRouter(t, &fakeMailer{})

	rec := postQuote(t, engine, `{"category": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "invalid request body" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSubmit_UnknownCategory(t *testing.T) {
	engine, renderer := newTestRouter(t, &fakeMailer{})

	rec := postQuote(t, engine, `{
		"category": "shutters",
		"width": 2,
		"height": 1.5,
		"customer": {"email": "maria@example.com"}
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	msg := decodeError(t, rec)
	if msg != "category must be one of curtain, roller-blind or panel-track" {
		t.Fatalf("unexpected message %q", msg)
	}
	if renderer.calls != 0 {
		t.Fatal("no rendering may happen on a validation failure")
	}
}

func TestSubmit_InvalidDimensions(t *testing.T) {
	engine, _ := newTestRouter(t, &fakeMailer{})

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "zero width",
			body: `{"category":"curtain","width":0,"height":1.5,"customer":{"email":"a@b.pt"}}`,
			want: "width must be a positive number of meters",
		},
		{
			name: "negative height",
			body: `{"category":"curtain","width":2,"height":-1,"customer":{"email":"a@b.pt"}}`,
			want: "height must be a positive number of meters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postQuote(t, engine, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg := decodeError(t, rec); msg != tt.want {
				t.Fatalf("unexpected message %q", msg)
			}
		})
	}
}

func TestSubmit_MissingCustomerEmail(t *testing.T) {
	engine, _ := newTestRouter(t, &fakeMailer{})

	rec := postQuote(t, engine, `{
		"category": "curtain",
		"width": 2,
		"height": 1.5,
		"customer": {"name": "Maria Silva"}
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "customer email must be a valid email address" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSubmit_RailOnRollerBlind(t *testing.T) {
	engine, _ := newTestRouter(t, &fakeMailer{})

	rec := postQuote(t, engine, `{
		"category": "roller-blind",
		"width": 2,
		"height": 1.5,
		"railOrTrack": "track",
		"customer": {"email": "maria@example.com"}
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "railOrTrack is only available for the curtain category" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestSubmit_MailNotConfigured(t *testing.T) {
	engine, renderer := newTestRouter(t, nil)

	rec := postQuote(t, engine, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg != "email delivery is not configured" {
		t.Fatalf("unexpected message %q", msg)
	}
	if renderer.calls != 0 {
		t.Fatal("no rendering may happen without a configured mailer")
	}
}

func TestSubmit_MailDeliveryFailure(t *testing.T) {
	mailer := &fakeMailer{err: context.DeadlineExceeded}
	engine, _ := newTestRouter(t, mailer)

	rec := postQuote(t, engine, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	decodeError(t, rec)
	if mailer.calls != 1 {
		t.Fatalf("expected one delivery attempt, got %d", mailer.calls)
	}
}
