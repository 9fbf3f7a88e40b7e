package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
)

// Handler expone la emision de tokens.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/token", h.generateToken)
}

func (h *Handler) generateToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}
	if errs := req.Validate(); !errs.OK() {
		httpx.FailValidation(w, errs)
		return
	}

	res := h.service.GenerateToken(r.Context(), req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}
