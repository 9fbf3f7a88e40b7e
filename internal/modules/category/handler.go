package category

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Handler expone los endpoints HTTP de categorias.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categorias", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/{idTienda}", h.listByStore)
		r.Get("/{idTienda}/{idCategoria}", h.getByStoreAndID)
		r.Patch("/{idTienda}/{idCategoria}", h.update)
		r.Delete("/{idTienda}/{idCategoria}", h.delete)
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

func (h *Handler) listByStore(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	if !validation.IsUUID(tienda) {
		httpx.Fail(w, "El id de la tienda no es un UUID válido")
		return
	}

	res := h.service.ListByStore(r.Context(), tienda)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) getByStoreAndID(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idCategoria := chi.URLParam(r, "idCategoria")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idCategoria) {
		httpx.Fail(w, "El id de la tienda o de la categoria no es un UUID válido")
		return
	}

	res := h.service.GetByStoreAndID(r.Context(), tienda, idCategoria)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idCategoria := chi.URLParam(r, "idCategoria")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idCategoria) {
		httpx.Fail(w, "El id de la tienda o de la categoria no es un UUID válido")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}

	res := h.service.Update(r.Context(), tienda, idCategoria, req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, map[string]interface{}{
		"Respuesta": "Categoria actualizada con éxito",
		"data":      res.Value(),
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idCategoria := chi.URLParam(r, "idCategoria")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idCategoria) {
		httpx.Fail(w, "El id de la tienda o de la categoria no es un UUID válido")
		return
	}

	res := h.service.Delete(r.Context(), tienda, idCategoria)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, res.Value())
}
