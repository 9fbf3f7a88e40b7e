package user

import (
	"context"

	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/result"
)

// Service aplica las reglas de negocio de usuarios.
type Service interface {
	Create(ctx context.Context, req CreateRequest) result.Result[Created]
	// BulkCreate procesa cada usuario de forma independiente: los fallos por
	// item se acumulan y el resto del lote sigue adelante.
	BulkCreate(ctx context.Context, reqs []CreateRequest) result.Result[BulkOutcome]
	ListByStore(ctx context.Context, tiendaID string) result.Result[[]PublicUser]
	GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*PublicUser]
	Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[struct{}]
	Delete(ctx context.Context, tiendaID, id string) result.Result[struct{}]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) result.Result[Created] {
	dup, err := s.repo.ExistsInStore(ctx, req.Username, req.TiendaID)
	if err != nil {
		return result.Failf[Created]("No se puede crear el usuario, %v", err)
	}
	if dup {
		return result.Fail[Created]("El usuario ya existe")
	}

	id, err := s.repo.Insert(ctx, req)
	if database.IsForeignKeyViolation(err) {
		return result.Fail[Created]("No se puede crear el usuario, la tienda no existe")
	}
	if err != nil {
		return result.Failf[Created]("No se puede crear el usuario, %v", err)
	}
	return result.Success(Created{ID: id})
}

func (s *service) BulkCreate(ctx context.Context, reqs []CreateRequest) result.Result[BulkOutcome] {
	outcome := BulkOutcome{Created: []Created{}, Errors: []string{}}

	for _, req := range reqs {
		res := s.Create(ctx, req)
		if res.IsFailure() {
			outcome.Errors = append(outcome.Errors, req.Username+": "+res.Err())
			continue
		}
		outcome.Created = append(outcome.Created, res.Value())
	}
	return result.Success(outcome)
}

func (s *service) ListByStore(ctx context.Context, tiendaID string) result.Result[[]PublicUser] {
	users, err := s.repo.ListByStore(ctx, tiendaID)
	if err != nil {
		return result.Failf[[]PublicUser]("No se puede obtener los usuarios, %v", err)
	}
	return result.Success(users)
}

func (s *service) GetByStoreAndID(ctx context.Context, tiendaID, id string) result.Result[*PublicUser] {
	u, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[*PublicUser]("No se puede obtener el usuario, %v", err)
	}
	return result.Success(u)
}

func (s *service) Update(ctx context.Context, tiendaID, id string, req UpdateRequest) result.Result[struct{}] {
	if req.empty() {
		return result.Fail[struct{}]("No se proporcionaron campos para actualizar")
	}

	existing, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se puede actualizar el usuario, %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Usuario no encontrado")
	}

	patch := req.filtered()
	if patch.empty() {
		return result.Fail[struct{}]("No se proporcionaron campos válidos para actualizar")
	}
	if errs := patch.validate(); !errs.OK() {
		return result.Fail[struct{}]("No se proporcionaron campos válidos para actualizar")
	}

	n, err := s.repo.Update(ctx, tiendaID, id, patch)
	if err != nil {
		return result.Failf[struct{}]("No se puede actualizar el usuario, %v", err)
	}
	if n == 0 {
		return result.Fail[struct{}]("No se actualizó ningún usuario")
	}
	return result.Success(struct{}{})
}

func (s *service) Delete(ctx context.Context, tiendaID, id string) result.Result[struct{}] {
	existing, err := s.repo.GetByStoreAndID(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se pudo eliminar el usuario: %v", err)
	}
	if existing == nil {
		return result.Fail[struct{}]("Usuario no encontrado en la tienda especificada.")
	}

	n, err := s.repo.Delete(ctx, tiendaID, id)
	if err != nil {
		return result.Failf[struct{}]("No se pudo eliminar el usuario: %v", err)
	}
	if n == 0 {
		return result.Fail[struct{}]("No se pudo eliminar el usuario, no existe.")
	}
	return result.Success(struct{}{})
}
