package category

import (
	"context"

	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/result"
)

// Service aplica las reglas de negocio de categorias.
type Service interface {
	Create(ctx context.Context, req CreateRequest) result.Result[Created]
	ListByStore(ctx context.Context, tiendaID string) result.Result[[]ListItem]
	GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*Detail]
	Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[*Category]
	Delete(ctx context.Context, tiendaID, id string) result.Result[string]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) result.Result[Created] {
	dup, err := s.repo.ExistsDuplicate(ctx, req)
	if err != nil {
		return result.Failf[Created]("No se puede crear la categoria, %v", err)
	}
	if dup {
		return result.Fail[Created]("La categoria ya existe")
	}

	id, err := s.repo.Insert(ctx, req)
	if database.IsForeignKeyViolation(err) {
		return result.Fail[Created]("No se puede crear la categoria, la tienda no existe")
	}
	if err != nil {
		return result.Failf[Created]("No se puede crear la categoria, %v", err)
	}
	return result.Success(Created{IDCategoria: id})
}

func (s *service) ListByStore(ctx context.Context, tiendaID string) result.Result[[]ListItem] {
	items, err := s.repo.ListByStore(ctx, tiendaID)
	if err != nil {
		return result.Failf[[]ListItem]("No se puede listar las categorias de la tienda, %v", err)
	}
	return result.Success(items)
}

// GetByStoreAndID combina la categoria con sus productos. La ausencia de la
// categoria no es un fallo: devuelve nil y el llamador decide.
func (s *service) GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*Detail] {
	c, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[*Detail]("No se puede listar la categoria de la tienda, %v", err)
	}
	if c == nil {
		return result.Success[*Detail](nil)
	}

	products, err := s.repo.ProductsByCategory(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[*Detail]("No se puede listar la categoria de la tienda, %v", err)
	}
	return result.Success(&Detail{Category: *c, Productos: products})
}

func (s *service) Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[*Category] {
	existing, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[*Category]("No se puede actualizar la categoría: %v", err)
	}
	if existing == nil {
		return result.Fail[*Category]("Categoría no encontrada")
	}

	if req.empty() {
		return result.Fail[*Category]("No se proporcionaron campos válidos para actualizar")
	}

	updated, err := s.repo.Update(ctx, tiendaID, id, req)
	if err != nil {
		return result.Failf[*Category]("No se puede actualizar la categoría: %v", err)
	}
	if updated == nil {
		return result.Fail[*Category]("No se pudo actualizar la categoría")
	}
	return result.Success(updated)
}

func (s *service) Delete(ctx context.Context, tiendaID, id string) result.Result[string] {
	existing, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[string]("No se puede eliminar la categoria, %v", err)
	}
	if existing == nil {
		return result.Fail[string]("Categoria no encontrada")
	}

	removed, err := s.repo.DeleteCascade(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[string]("No se puede eliminar la categoria, %v", err)
	}
	if removed == 0 {
		return result.Fail[string]("Categoria no encontrada")
	}
	return result.Success("Categoria eliminada")
}
