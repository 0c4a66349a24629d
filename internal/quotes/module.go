// Package quotes provides the quotation (orcamento) domain module.
package quotes

import (
	apphttp "orcamento_backend/internal/http"
	"orcamento_backend/internal/pdf"
	"orcamento_backend/internal/quotes/handler"
	"orcamento_backend/internal/quotes/service"
	"orcamento_backend/platform/config"
	"orcamento_backend/platform/events"
	"orcamento_backend/platform/logger"
	"orcamento_backend/platform/validator"
)

// Module represents the quotes domain module
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new quotes module with all dependencies wired.
// A nil mailer is allowed: submissions then fail with a configuration error.
func NewModule(cfg config.PricingConfig, mailer service.Mailer, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	book := service.NewPriceBook(cfg)
	svc := service.New(book, pdf.SummaryRenderer{}, mailer, log)
	svc.SetEventBus(bus)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rg := ctx.V1.Group("/quotes")
	rg.Use(ctx.RateLimiter.RateLimit())
	m.handler.RegisterRoutes(rg)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
