package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository define el almacenamiento de usuarios.
type Repository interface {
	ExistsInStore(ctx context.Context, username, tiendaID string) (bool, error)
	Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error)
	ListByStore(ctx context.Context, tiendaID string) ([]PublicUser, error)
	GetByStoreAndID(ctx context.Context, tiendaID, id string) (*PublicUser, error)
	Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) (int64, error)
	Delete(ctx context.Context, tiendaID, id string) (int64, error)
	// FindByCredentials busca por username+password exactos sin acotar por
	// tienda: la credencial sola determina la identidad.
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
}
