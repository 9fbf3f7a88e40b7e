package store

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
		FROM tiendas
		WHERE lower(nombre) = lower($1)
		  AND lower(direccion) = lower($2)
		  AND lower(telefono) = lower($3)
		  AND lower(propietario) = lower($4)`,
		req.Nombre, req.Direccion, req.Telefono, req.Propietario).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO tiendas (nombre, direccion, telefono, propietario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		req.Nombre, req.Direccion, req.Telefono, req.Propietario).Scan(&id)
	return id, err
}

func (r *postgresRepo) List(ctx context.Context) ([]Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nombre, direccion, telefono, propietario
		FROM tiendas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Direccion, &s.Telefono, &s.Propietario); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Store, error) {
	var s Store
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nombre, direccion, telefono, propietario
		FROM tiendas
		WHERE id = $1`, id).Scan(&s.ID, &s.Nombre, &s.Direccion, &s.Telefono, &s.Propietario)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, patch UpdateRequest) error {
	// Las columnas salen de este bloque fijo, nunca de claves del request.
	set := []string{}
	args := []interface{}{}
	add := func(col string, val string) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Nombre != nil {
		add("nombre", *patch.Nombre)
	}
	if patch.Direccion != nil {
		add("direccion", *patch.Direccion)
	}
	if patch.Telefono != nil {
		add("telefono", *patch.Telefono)
	}
	if patch.Propietario != nil {
		add("propietario", *patch.Propietario)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tiendas SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tiendas WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *postgresRepo) EmployeeCounts(ctx context.Context, limit, offset int) ([]EmployeeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.nombre, COUNT(u.id)::integer AS empleados
		FROM tiendas t
		JOIN usuarios u ON t.id = u.tienda_id
		GROUP BY t.id, t.nombre
		ORDER BY t.id ASC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []EmployeeCount
	for rows.Next() {
		var c EmployeeCount
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Empleados); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *postgresRepo) CountEmployees(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&total)
	return total, err
}
