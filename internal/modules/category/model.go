package category

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Category pertenece a exactamente una tienda y agrupa cero o mas productos.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	TiendaID    uuid.UUID `json:"tienda_id"`
}

// ListItem es la proyeccion de listado: nunca expone tienda_id de otras
// tiendas porque la consulta ya viene acotada.
type ListItem struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
}

// ProductSummary es el producto anidado en la lectura de detalle.
type ProductSummary struct {
	ID             uuid.UUID       `json:"id"`
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descripcion    string          `json:"descripcion"`
}

// Detail combina la categoria con sus productos (lectura cruzada de
// agregados).
type Detail struct {
	Category
	Productos []ProductSummary `json:"productos"`
}

type CreateRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	TiendaID    string `json:"tienda_id"`
}

func (r CreateRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Require("nombre", r.Nombre)
	errs.Require("descripcion", r.Descripcion)
	errs.RequireUUID("tienda_id", r.TiendaID)
	return errs
}

// UpdateRequest solo admite los campos del allow-list: nombre y descripcion.
type UpdateRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
}

func (r UpdateRequest) empty() bool {
	return r.Nombre == nil && r.Descripcion == nil
}

type Created struct {
	IDCategoria uuid.UUID `json:"id_categoria"`
}
