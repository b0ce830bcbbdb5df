package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los repositorios traducen a errores de
// dominio en lugar de propagar como fallo interno.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation: el valor ya existe (username, email, delivery_number).
func isUniqueViolation(err error) bool { return pgCode(err) == pgUniqueViolation }

// isForeignKeyViolation: la fila referencia algo que no existe, por ejemplo
// una línea de entrega con un product_id inválido.
func isForeignKeyViolation(err error) bool { return pgCode(err) == pgForeignKeyViolation }
