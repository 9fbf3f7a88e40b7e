package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Codigo pq de violacion de clave foranea.
const pqForeignKeyViolation = "23503"

// IsForeignKeyViolation detecta escrituras bloqueadas por integridad
// referencial: inserts que apuntan a filas inexistentes o borrados con
// dependientes vivos.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// IsNoRows informa si err corresponde a una consulta sin filas.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
