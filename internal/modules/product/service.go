package product

import (
	"context"

	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/result"
)

// Service aplica las reglas de negocio de productos.
type Service interface {
	Create(ctx context.Context, req CreateRequest) result.Result[Created]
	ListByStore(ctx context.Context, tiendaID, categoriaID string) result.Result[[]Fetched]
	GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*Fetched]
	Count(ctx context.Context, tiendaID string) result.Result[int]
	Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[struct{}]
	Delete(ctx context.Context, tiendaID, id string) result.Result[struct{}]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) result.Result[Created] {
	dup, err := s.repo.ExistsDuplicate(ctx, req)
	if err != nil {
		return result.Failf[Created]("No se puede crear el producto, %v", err)
	}
	if dup {
		return result.Fail[Created]("El producto ya existe")
	}

	id, err := s.repo.InsertWithStock(ctx, req)
	if database.IsForeignKeyViolation(err) {
		return result.Fail[Created]("No se puede crear el producto, la categoría o la tienda no existe")
	}
	if err != nil {
		return result.Failf[Created]("No se puede crear el producto, %v", err)
	}
	return result.Success(Created{IDProducto: id})
}

func (s *service) ListByStore(ctx context.Context, tiendaID, categoriaID string) result.Result[[]Fetched] {
	products, err := s.repo.ListByStore(ctx, tiendaID, categoriaID)
	if err != nil {
		return result.Failf[[]Fetched]("No se puede listar los productos, %v", err)
	}
	return result.Success(products)
}

func (s *service) GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*Fetched] {
	p, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[*Fetched]("No se puede listar el producto, %v", err)
	}
	if p == nil {
		return result.Fail[*Fetched]("Producto no encontrado")
	}
	return result.Success(p)
}

func (s *service) Count(ctx context.Context, tiendaID string) result.Result[int] {
	n, err := s.repo.Count(ctx, tiendaID)
	if err != nil {
		return result.Failf[int]("No se puede contar los productos, %v", err)
	}
	return result.Success(n)
}

func (s *service) Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[struct{}] {
	if req.empty() {
		return result.Fail[struct{}]("No se proporcionaron campos para actualizar")
	}

	existing, err := s.repo.GetRow(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede actualizar el producto, %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Producto no encontrado")
	}

	// Un parche identico a lo almacenado es una actualizacion innecesaria.
	if !req.changes(*existing) {
		return result.Fail[struct{}]("No hay cambios en los datos. Actualización innecesaria.")
	}

	if err := s.repo.Update(ctx, tiendaID, id, req); err != nil {
		return result.Failf[struct{}]("No se puede actualizar el producto, %v", err)
	}
	return result.Success(struct{}{})
}

func (s *service) Delete(ctx context.Context, tiendaID, id string) result.Result[struct{}] {
	existing, err := s.repo.GetRow(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede eliminar el producto, %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Producto no encontrado")
	}

	removed, err := s.repo.DeleteCascade(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede eliminar el producto, %v", err)
	}
	if removed == 0 {
		return result.Fail[struct{}]("Producto no encontrado")
	}
	return result.Success(struct{}{})
}
