package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Handler expone los endpoints HTTP de productos.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/productos", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/{idTienda}", h.listByStore)
		r.Get("/{idTienda}/contador", h.count)
		r.Get("/{idTienda}/{idProducto}", h.getByStoreAndID)
		r.Patch("/{idTienda}/{idProducto}", h.update)
		r.Delete("/{idTienda}/{idProducto}", h.delete)
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

	categoria := r.URL.Query().Get("categoria")
	if categoria != "" && !validation.IsUUID(categoria) {
		httpx.Fail(w, "El id de la categoria no es un UUID válido")
		return
	}

	res := h.service.ListByStore(r.Context(), tienda, categoria)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) count(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	if !validation.IsUUID(tienda) {
		httpx.Fail(w, "El id de la tienda no es un UUID válido")
		return
	}

	res := h.service.Count(r.Context(), tienda)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, map[string]int{"count": res.Value()})
}

func (h *Handler) getByStoreAndID(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idProducto := chi.URLParam(r, "idProducto")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idProducto) {
		httpx.Fail(w, "El id de la tienda o del producto no es un UUID válido")
		return
	}

	res := h.service.GetByStoreAndID(r.Context(), tienda, idProducto)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idProducto := chi.URLParam(r, "idProducto")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idProducto) {
		httpx.Fail(w, "El id de la tienda o del producto no es un UUID válido")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}

	res := h.service.Update(r.Context(), tienda, idProducto, req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Producto actualizado")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idProducto := chi.URLParam(r, "idProducto")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idProducto) {
		httpx.Fail(w, "El id de la tienda o del producto no es un UUID válido")
		return
	}

	res := h.service.Delete(r.Context(), tienda, idProducto)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Producto eliminado")
}
