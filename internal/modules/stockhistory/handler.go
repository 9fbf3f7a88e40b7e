package stockhistory

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
)

// Handler expone la insercion masiva de movimientos de stock.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/historialstock", h.bulkInsert)
}

func (h *Handler) bulkInsert(w http.ResponseWriter, r *http.Request) {
	var items []InsertItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}

	res := h.service.BulkInsert(r.Context(), items)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, map[string]string{"message": res.Value()})
}
