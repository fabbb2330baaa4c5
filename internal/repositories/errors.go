package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint failure. Races
// on receipt numbers, emails and company names are resolved by the database
// constraint, so this is the single place concurrency conflicts surface.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
