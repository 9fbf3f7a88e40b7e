package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastellanos/inventario-backend/internal/httpx"
	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Handler expone los endpoints HTTP de usuarios.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/usuarios", func(r chi.Router) {
		r.Post("/", h.create)
		r.Post("/bulk", h.bulkCreate)
		r.Get("/{idTienda}", h.listByStore)
		r.Get("/{idTienda}/{idUsuario}", h.getByStoreAndID)
		r.Patch("/{idTienda}/{idUsuario}", h.update)
		r.Delete("/{idTienda}/{idUsuario}", h.delete)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Invalid input data types")
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

func (h *Handler) bulkCreate(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}
	for _, req := range reqs {
		if errs := req.Validate(); !errs.OK() {
			httpx.FailValidation(w, errs)
			return
		}
	}

	res := h.service.BulkCreate(r.Context(), reqs)
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
	idUsuario := chi.URLParam(r, "idUsuario")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idUsuario) {
		httpx.Fail(w, "El id del usuario o de la tienda no es un UUID válido")
		return
	}

	res := h.service.GetByStoreAndID(r.Context(), tienda, idUsuario)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.OK(w, res.Value())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idUsuario := chi.URLParam(r, "idUsuario")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idUsuario) {
		httpx.Fail(w, "El id del usuario o de la tienda no es un UUID válido")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, "Datos inválidos")
		return
	}

	res := h.service.Update(r.Context(), tienda, idUsuario, req)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Usuario actualizado")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tienda := chi.URLParam(r, "idTienda")
	idUsuario := chi.URLParam(r, "idUsuario")
	if !validation.IsUUID(tienda) || !validation.IsUUID(idUsuario) {
		httpx.Fail(w, "El id del usuario o de la tienda no es un UUID válido")
		return
	}

	res := h.service.Delete(r.Context(), tienda, idUsuario)
	if res.IsFailure() {
		httpx.Fail(w, res.Err())
		return
	}
	httpx.Respuesta(w, "Usuario eliminado")
}
