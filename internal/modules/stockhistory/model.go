// Package stockhistory mantiene el historial de stock: un registro de
// movimientos solo-agregar. Las entradas nunca se actualizan ni se borran de
// a una; solo desaparecen con la cascada de su producto.
package stockhistory

import (
	"time"

	"github.com/google/uuid"

	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Entry es un movimiento de stock de un producto.
type Entry struct {
	ProductoID uuid.UUID `json:"producto_id"`
	Cantidad   int       `json:"cantidad"`
	FechaHora  time.Time `json:"fecha_hora"`
}

// InsertItem es el par recibido en la insercion masiva.
type InsertItem struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

func (i InsertItem) Validate() validation.Errors {
	var errs validation.Errors
	errs.RequireUUID("producto_id", i.ProductoID)
	errs.RequireNonNegative("cantidad", i.Cantidad)
	return errs
}
