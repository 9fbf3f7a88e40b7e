package category

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dcastellanos/inventario-backend/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ExistsDuplicate(ctx context.Context, req CreateRequest) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) > 0
		FROM categorias
		WHERE lower(nombre) = lower($1)
		  AND lower(descripcion) = lower($2)
		  AND tienda_id = $3`,
		req.Nombre, req.Descripcion, req.TiendaID).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categorias (nombre, descripcion, tienda_id)
		VALUES ($1, $2, $3)
		RETURNING id`,
		req.Nombre, req.Descripcion, req.TiendaID).Scan(&id)
	return id, err
}

func (r *postgresRepo) ListByStore(ctx context.Context, tiendaID string) ([]ListItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, descripcion
		FROM categorias
		WHERE tienda_id = $1`, tiendaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListItem
	for rows.Next() {
		var it ListItem
		if err := rows.Scan(&it.ID, &it.Nombre, &it.Descripcion); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *postgresRepo) GetByStoreAndID(ctx context.Context, tiendaID, id string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, descripcion, tienda_id
		FROM categorias
		WHERE tienda_id = $1 AND id = $2`, tiendaID, id).
		Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.TiendaID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) ProductsByCategory(ctx context.Context, tiendaID, id string) ([]ProductSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, marca, precio_unitario, descripcion
		FROM productos
		WHERE tienda_id = $1 AND categoria_id = $2`, tiendaID, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []ProductSummary
	for rows.Next() {
		var p ProductSummary
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Marca, &p.PrecioUnitario, &p.Descripcion); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) (*Category, error) {
	set := []string{}
	args := []interface{}{}
	add := func(col string, val string) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Nombre != nil {
		add("nombre", *patch.Nombre)
	}
	if patch.Descripcion != nil {
		add("descripcion", *patch.Descripcion)
	}

	args = append(args, id, tiendaID)
	query := fmt.Sprintf(`
		UPDATE categorias
		SET %s
		WHERE id = $%d AND tienda_id = $%d
		RETURNING id, nombre, descripcion, tienda_id`,
		strings.Join(set, ", "), len(args)-1, len(args))

	var c Category
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.TiendaID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) DeleteCascade(ctx context.Context, tiendaID, id string) (int64, error) {
	var removed int64
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM historial_stock
			WHERE producto_id IN (
				SELECT id FROM productos
				WHERE categoria_id = $1 AND tienda_id = $2
			)`, id, tiendaID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM productos
			WHERE categoria_id = $1 AND tienda_id = $2`, id, tiendaID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM categorias
			WHERE id = $1 AND tienda_id = $2`, id, tiendaID)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}
