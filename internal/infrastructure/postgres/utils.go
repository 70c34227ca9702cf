package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE usados para traducir errores a errores de dominio.
const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// pgErrorCode devuelve el SQLSTATE del error o "" si no viene de PostgreSQL.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == foreignKeyViolation
}

// isCheckViolation verifica si un error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == checkViolation
}
