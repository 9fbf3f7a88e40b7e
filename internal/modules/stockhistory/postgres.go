package stockhistory

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) BulkInsert(ctx context.Context, items []InsertItem) error {
	ids := make([]string, len(items))
	cantidades := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ProductoID
		cantidades[i] = int64(it.Cantidad)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO historial_stock (producto_id, cantidad)
		SELECT unnest($1::uuid[]), unnest($2::integer[])`,
		pq.Array(ids), pq.Array(cantidades))
	return err
}
