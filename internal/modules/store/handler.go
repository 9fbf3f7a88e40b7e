package store

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Handler expone los endpoints HTTP de tiendas.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tiendas", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/empleados", h.employeeCounter)
		r.Get("/{idTienda}", h.getByID)
		r.Patch("/{idTienda}", h.update)
		r.Delete("/{idTienda}", h.delete)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}
	if errs := req.Validate(); !errs.OK() {
		httpx.FailValidation(w, errs)
		return
	}

	res := h.service.Create(r.Context(), req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	res := h.service.List(r.Context())
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) employeeCounter(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	res := h.service.EmployeeCounter(r.Context(), limit, offset)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "idTienda")
	if !validation.IsUUID(id) {
		httpx.Fail(w, "El id de la tienda no es un UUID válido")
		return
	}

	res := h.service.GetByID(r.Context(), id)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "idTienda")
	if !validation.IsUUID(id) {
		httpx.Fail(w, "El id de la tienda no es un UUID válido")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}

	res := h.service.Update(r.Context(), id, req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Tienda actualizada")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "idTienda")
	if !validation.IsUUID(id) {
		httpx.Fail(w, "El id de la tienda no es un UUID válido")
		return
	}

	res := h.service.Delete(r.Context(), id)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Tienda eliminada")
}

func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
