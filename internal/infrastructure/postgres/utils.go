package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ablemeditech-dev/able-inventory-sub001/internal/domain"
)

// sqlState código SQLSTATE del error, o "" si no viene de PostgreSQL.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classify marca como entrada inválida los errores de conversión de parámetros
// (22P02 invalid_text_representation, p.ej. un id que no es UUID).
func classify(err error) error {
	if sqlState(err) == "22P02" {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return err
}
