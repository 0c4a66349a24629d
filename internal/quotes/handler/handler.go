// Package handler exposes the public quotation endpoint.
package handler

import (
	"net/http"

	"orcamento_backend/internal/quotes/service"
	"orcamento_backend/internal/quotes/transport"
	"orcamento_backend/platform/httpkit"
	"orcamento_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequest = "invalid request body"

// Handler handles unauthenticated HTTP requests for quotations.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new quotes handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the public quote routes (no auth middleware).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// Submit handles POST /api/v1/quotes.
// Check order follows the contract: configuration first (cheapest), then
// payload shape, then field rules. The first violation aborts the request.
func (h *Handler) Submit(c *gin.Context) {
	if !h.svc.DeliveryConfigured() {
		httpkit.Error(c, http.StatusInternalServerError, "email delivery is not configured", nil)
		return
	}

	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, validator.FirstViolation(err), nil)
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}
