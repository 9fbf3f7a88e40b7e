package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository define el almacenamiento de categorias. Toda operacion con
// tiendaID queda acotada a esa tienda.
type Repository interface {
	ExistsDuplicate(ctx context.Context, req CreateRequest) (bool, error)
	Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error)
	ListByStore(ctx context.Context, tiendaID string) ([]ListItem, error)
	GetByStoreAndID(ctx context.Context, tiendaID, id string) (*Category, error)
	ProductsByCategory(ctx context.Context, tiendaID, id string) ([]ProductSummary, error)
	Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) (*Category, error)
	// DeleteCascade borra historial de stock, productos y la categoria en una
	// sola transaccion; devuelve las filas de categorias eliminadas.
	DeleteCascade(ctx context.Context, tiendaID, id string) (int64, error)
}
