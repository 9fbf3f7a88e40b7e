package store

import (
	"context"

	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/result"
)

// Service aplica las reglas de negocio de tiendas: chequeo de duplicados
// antes de insertar, existencia antes de mutar, y disciplina Result.
type Service interface {
	Create(ctx context.Context, req CreateRequest) result.Result[Created]
	List(ctx context.Context) result.Result[[]Store]
	EmployeeCounter(ctx context.Context, limit, offset int) result.Result[EmployeeCountPage]
	GetByID(ctx context.Context, id string) result.Result[*Store]
	Update(ctx context.Context, id string, req UpdateRequest) result.Result[struct{}]
	Delete(ctx context.Context, id string) result.Result[struct{}]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) result.Result[Created] {
	dup, err := s.repo.ExistsDuplicate(ctx, req)
	if err != nil {
		return result.Failf[Created]("No se puede crear la tienda, %v", err)
	}
	if dup {
		return result.Fail[Created]("La tienda ya existe")
	}

	id, err := s.repo.Insert(ctx, req)
	if err != nil {
		return result.Failf[Created]("No se puede crear la tienda, %v", err)
	}
	return result.Success(Created{ID: id})
}

func (s *service) List(ctx context.Context) result.Result[[]Store] {
	stores, err := s.repo.List(ctx)
	if err != nil {
		return result.Failf[[]Store]("No se puede obtener las tiendas, %v", err)
	}
	return result.Success(stores)
}

func (s *service) EmployeeCounter(ctx context.Context, limit, offset int) result.Result[EmployeeCountPage] {
	counts, err := s.repo.EmployeeCounts(ctx, limit, offset)
	if err != nil {
		return result.Failf[EmployeeCountPage]("No se puede obtener el contador de empleados, %v", err)
	}
	total, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return result.Failf[EmployeeCountPage]("No se puede obtener el contador de empleados, %v", err)
	}
	return result.Success(EmployeeCountPage{Tiendas: counts, Total: total})
}

// GetByID devuelve nil cuando la tienda no existe: la ausencia no es un fallo,
// el llamador decide.
func (s *service) GetByID(ctx context.Context, id string) result.Result[*Store] {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failf[*Store]("No se puede obtener la tienda, %v", err)
	}
	return result.Success(st)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) result.Result[struct{}] {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede actualizar la tienda, %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Tienda no encontrada")
	}

	patch := req.filtered()
	if patch.empty() {
		return result.Fail[struct{}]("No se proporcionaron campos válidos para actualizar")
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return result.Failf[struct{}]("No se puede actualizar la tienda, %v", err)
	}
	return result.Success(struct{}{})
}

func (s *service) Delete(ctx context.Context, id string) result.Result[struct{}] {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede eliminar la tienda, %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Tienda no encontrada")
	}

	n, err := s.repo.Delete(ctx, id)
	if database.IsForeignKeyViolation(err) {
		return result.Fail[struct{}]("No se puede eliminar la tienda, tiene registros asociados")
	}
	if err != nil {
		return result.Failf[struct{}]("No se puede eliminar la tienda, %v", err)
	}
	if n == 0 {
		return result.Fail[struct{}]("Tienda no encontrada")
	}
	return result.Success(struct{}{})
}
