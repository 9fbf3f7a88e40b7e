package stockhistory

import (
	"context"

	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/result"
	"github.com/dcastellanos/inventario-backend/internal/validation"
)

// Service valida cada par (producto_id, cantidad) antes de insertar el lote.
type Service interface {
	BulkInsert(ctx context.Context, items []InsertItem) result.Result[string]
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) BulkInsert(ctx context.Context, items []InsertItem) result.Result[string] {
	if len(items) == 0 {
		return result.Fail[string]("No se proporcionaron registros para insertar")
	}

	for _, it := range items {
		if errs := it.Validate(); !errs.OK() {
			return result.Failf[string]("No se pudo insertar el historial: %s", describe(errs))
		}
	}

	if err := s.repo.BulkInsert(ctx, items); err != nil {
		if database.IsForeignKeyViolation(err) {
			return result.Fail[string]("No se pudo insertar el historial: algún producto no existe")
		}
		return result.Failf[string]("No se pudo insertar el historial: %v", err)
	}
	return result.Success("Registros insertados con éxito")
}

func describe(errs validation.Errors) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e.Campo + " " + e.Mensaje
	}
	return out
}
