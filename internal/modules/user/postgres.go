package user

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

func (r *postgresRepo) ExistsInStore(ctx context.Context, username, tiendaID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `
		SELECT 1
		FROM usuarios
		WHERE username = $1 AND tienda_id = $2`, username, tiendaID).Scan(&one)
	if database.IsNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *postgresRepo) Insert(ctx context.Context, req CreateRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuarios (username, password, tienda_id, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		req.Username, req.Password, req.TiendaID, req.Rol).Scan(&id)
	return id, err
}

// ListByStore nunca selecciona la columna password.
func (r *postgresRepo) ListByStore(ctx context.Context, tiendaID string) ([]PublicUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, rol, tienda_id
		FROM usuarios
		WHERE tienda_id = $1
		ORDER BY rol ASC, username ASC`, tiendaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []PublicUser
	for rows.Next() {
		var u PublicUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Rol, &u.TiendaID); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepo) GetByStoreAndID(ctx context.Context, tiendaID, id string) (*PublicUser, error) {
	var u PublicUser
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, rol, tienda_id
		FROM usuarios
		WHERE id = $1 AND tienda_id = $2`, id, tiendaID).
		Scan(&u.ID, &u.Username, &u.Rol, &u.TiendaID)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) Update(ctx context.Context, tiendaID, id string, patch UpdateRequest) (int64, error) {
	set := []string{}
	args := []interface{}{}
	add := func(col string, val string) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Password != nil {
		add("password", *patch.Password)
	}
	if patch.TiendaID != nil {
		add("tienda_id", *patch.TiendaID)
	}
	if patch.Rol != nil {
		add("rol", *patch.Rol)
	}

	args = append(args, id, tiendaID)
	query := fmt.Sprintf(`UPDATE usuarios SET %s WHERE id = $%d AND tienda_id = $%d`,
		strings.Join(set, ", "), len(args)-1, len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *postgresRepo) Delete(ctx context.Context, tiendaID, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM usuarios
		WHERE id = $1 AND tienda_id = $2`, id, tiendaID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *postgresRepo) FindByCredentials(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password, tienda_id, rol
		FROM usuarios
		WHERE username = $1 AND password = $2`, username, password).
		Scan(&u.ID, &u.Username, &u.Password, &u.TiendaID, &u.Rol)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
