package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Product es la fila persistida; el stock vigente no se guarda como contador
// mutable, se deriva del historial.
type Product struct {
	ID             uuid.UUID       `json:"id"`
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descripcion    string          `json:"descripcion"`
	CategoriaID    uuid.UUID       `json:"categoria_id"`
	TiendaID       uuid.UUID       `json:"tienda_id"`
}

// StockEntry es un movimiento del historial de stock.
type StockEntry struct {
	Cantidad  int       `json:"cantidad"`
	FechaHora time.Time `json:"fecha_hora"`
}

// CategoryRef es la categoria embebida en las lecturas.
type CategoryRef struct {
	CategoriaID uuid.UUID `json:"categoria_id"`
	Nombre      string    `json:"nombre"`
}

// StoreRef es la tienda embebida en las lecturas.
type StoreRef struct {
	TiendaID uuid.UUID `json:"tienda_id"`
	Nombre   string    `json:"nombre"`
}

// Fetched es la forma de lectura: producto con su historial agregado, su
// categoria y su tienda.
type Fetched struct {
	ID             uuid.UUID       `json:"id"`
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descripcion    string          `json:"descripcion"`
	Stock          []StockEntry    `json:"stock"`
	Categoria      CategoryRef     `json:"categoria"`
	Tienda         StoreRef        `json:"tienda"`
}

// InitialStock es el stock inicial que acompaña al alta del producto.
type InitialStock struct {
	Cantidad int `json:"cantidad"`
}

type CreateRequest struct {
	Nombre         string          `json:"nombre"`
	Marca          string          `json:"marca"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descripcion    string          `json:"descripcion"`
	Stock          InitialStock    `json:"stock"`
	CategoriaID    string          `json:"categoria_id"`
	TiendaID       string          `json:"tienda_id"`
}

func (r CreateRequest) Validate() validation.Errors {
	var errs validation.Errors
	errs.Require("nombre", r.Nombre)
	errs.Require("marca", r.Marca)
	errs.Require("descripcion", r.Descripcion)
	errs.RequireNonNegative("stock.cantidad", r.Stock.Cantidad)
	errs.RequireUUID("categoria_id", r.CategoriaID)
	errs.RequireUUID("tienda_id", r.TiendaID)
	return errs
}

// UpdateRequest es el parche parcial; el stock es derivado y queda fuera.
type UpdateRequest struct {
	Nombre         *string          `json:"nombre,omitempty"`
	Marca          *string          `json:"marca,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Descripcion    *string          `json:"descripcion,omitempty"`
	CategoriaID    *string          `json:"categoria_id,omitempty"`
}

func (r UpdateRequest) empty() bool {
	return r.Nombre == nil && r.Marca == nil && r.PrecioUnitario == nil &&
		r.Descripcion == nil && r.CategoriaID == nil
}

// changes compara el parche contra la fila actual campo por campo.
func (r UpdateRequest) changes(cur Product) bool {
	if r.Nombre != nil && *r.Nombre != cur.Nombre {
		return true
	}
	if r.Marca != nil && *r.Marca != cur.Marca {
		return true
	}
	if r.PrecioUnitario != nil && !r.PrecioUnitario.Equal(cur.PrecioUnitario) {
		return true
	}
	if r.Descripcion != nil && *r.Descripcion != cur.Descripcion {
		return true
	}
	if r.CategoriaID != nil && *r.CategoriaID != cur.CategoriaID.String() {
		return true
	}
	return false
}

type Created struct {
	IDProducto uuid.UUID `json:"id_producto"`
}
