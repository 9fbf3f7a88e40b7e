package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository define el almacenamiento de productos.
type Repository interface {
	ExistsDuplicate(ctx context.Context, req CreateRequest) (bool, error)
	// InsertWithStock crea el producto y su primer movimiento de historial en
	// una sola transaccion.
	InsertWithStock(ctx context.Context, req CreateRequest) (uuid.UUID, error)
	// ListByStore devuelve la forma de lectura; categoriaID vacia lista toda
	// la tienda.
	ListByStore(ctx context.Context, tiendaID, categoriaID string) ([]Fetched, error)
	GetByStoreAndID(ctx context.Context, tiendaID, id string) (*Fetched, error)
	GetRow(ctx context.Context, tiendaID, id string) (*Product, error)
	Count(ctx context.Context, tiendaID string) (int, error)
	Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) error
	// DeleteCascade borra historial y producto en una transaccion; devuelve
	// las filas de productos eliminadas.
	DeleteCascade(ctx context.Context, tiendaID, id string) (int64, error)
}
