package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository define el almacenamiento de tiendas.
type Repository interface {
	ExistsDuplicate(ctx context.Context, req CreateRequest) (bool, error)
	Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]Store, error)
	GetByID(ctx context.Context, id string) (*Store, error)
	Update(ctx context.Context, id string, patch UpdateRequest) error
	Delete(ctx context.Context, id string) (int64, error)
	EmployeeCounts(ctx context.Context, limit, offset int) ([]EmployeeCount, error)
	CountEmployees(ctx context.Context) (int, error)
}
