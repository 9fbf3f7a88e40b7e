package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dcastellanos/inventario-backend/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ExistsDuplicate(ctx context.Context, req CreateRequest) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM productos
			WHERE lower(nombre) = lower($1)
			  AND lower(marca) = lower($2)
			  AND precio_unitario = $3
			  AND lower(descripcion) = lower($4)
			  AND categoria_id = $5
			  AND tienda_id = $6
		)`,
		req.Nombre, req.Marca, req.PrecioUnitario, req.Descripcion,
		req.CategoriaID, req.TiendaID).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) InsertWithStock(ctx context.Context, req CreateRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO productos (nombre, marca, precio_unitario, descripcion, categoria_id, tienda_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			req.Nombre, req.Marca, req.PrecioUnitario, req.Descripcion,
			req.CategoriaID, req.TiendaID).Scan(&id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO historial_stock (producto_id, cantidad)
			VALUES ($1, $2)`, id, req.Stock.Cantidad)
		return err
	})
	return id, err
}

func (r *postgresRepo) ListByStore(ctx context.Context, tiendaID, categoriaID string) ([]Fetched, error) {
	query := `
		SELECT p.id, p.nombre, p.marca, p.precio_unitario, p.descripcion,
		       c.id, c.nombre, t.id, t.nombre
		FROM productos p
		JOIN categorias c ON p.categoria_id = c.id
		JOIN tiendas t ON p.tienda_id = t.id
		WHERE p.tienda_id = $1`
	args := []interface{}{tiendaID}
	if categoriaID != "" {
		args = append(args, categoriaID)
		query += fmt.Sprintf(" AND p.categoria_id = $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Fetched
	var ids []uuid.UUID
	for rows.Next() {
		var f Fetched
		if err := rows.Scan(&f.ID, &f.Nombre, &f.Marca, &f.PrecioUnitario, &f.Descripcion,
			&f.Categoria.CategoriaID, &f.Categoria.Nombre,
			&f.Tienda.TiendaID, &f.Tienda.Nombre); err != nil {
			return nil, err
		}
		products = append(products, f)
		ids = append(ids, f.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stock, err := r.stockByProduct(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Stock = stock[products[i].ID]
	}
	return products, nil
}

// stockByProduct trae de una vez el historial de los productos pedidos y lo
// agrupa por producto.
func (r *postgresRepo) stockByProduct(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]StockEntry, error) {
	out := make(map[uuid.UUID][]StockEntry, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT producto_id, cantidad, fecha_hora
		FROM historial_stock
		WHERE producto_id = ANY($1)
		ORDER BY fecha_hora ASC`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pid uuid.UUID
		var e StockEntry
		if err := rows.Scan(&pid, &e.Cantidad, &e.FechaHora); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], e)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByStoreAndID(ctx context.Context, tiendaID, id string) (*Fetched, error) {
	var f Fetched
	err := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.nombre, p.marca, p.precio_unitario, p.descripcion,
		       c.id, c.nombre, t.id, t.nombre
		FROM productos p
		JOIN categorias c ON p.categoria_id = c.id
		JOIN tiendas t ON p.tienda_id = t.id
		WHERE p.tienda_id = $1 AND p.id = $2`, tiendaID, id).
		Scan(&f.ID, &f.Nombre, &f.Marca, &f.PrecioUnitario, &f.Descripcion,
			&f.Categoria.CategoriaID, &f.Categoria.Nombre,
			&f.Tienda.TiendaID, &f.Tienda.Nombre)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	stock, err := r.stockByProduct(ctx, []uuid.UUID{f.ID})
	if err != nil {
		return nil, err
	}
	f.Stock = stock[f.ID]
	return &f, nil
}

func (r *postgresRepo) GetRow(ctx context.Context, tiendaID, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, marca, precio_unitario, descripcion, categoria_id, tienda_id
		FROM productos
		WHERE tienda_id = $1 AND id = $2`, tiendaID, id).
		Scan(&p.ID, &p.Nombre, &p.Marca, &p.PrecioUnitario, &p.Descripcion,
			&p.CategoriaID, &p.TiendaID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Count(ctx context.Context, tiendaID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM productos WHERE tienda_id = $1`, tiendaID).Scan(&n)
	return n, err
}

func (r *postgresRepo) Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) error {
	set := []string{}
	args := []interface{}{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Nombre != nil {
		add("nombre", *patch.Nombre)
	}
	if patch.Marca != nil {
		add("marca", *patch.Marca)
	}
	if patch.PrecioUnitario != nil {
		add("precio_unitario", *patch.PrecioUnitario)
	}
	if patch.Descripcion != nil {
		add("descripcion", *patch.Descripcion)
	}
	if patch.CategoriaID != nil {
		add("categoria_id", *patch.CategoriaID)
	}

	args = append(args, id, tiendaID)
	query := fmt.Sprintf(`UPDATE productos SET %s WHERE id = $%d AND tienda_id = $%d`,
		strings.Join(set, ", "), len(args)-1, len(args))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresRepo) DeleteCascade(ctx context.Context, tiendaID, id string) (int64, error) {
	var removed int64
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM historial_stock WHERE producto_id = $1`, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			DELETE FROM productos WHERE id = $1 AND tienda_id = $2`, id, tiendaID)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	return removed, err
}
