package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for unique-constraint violations. The database is the
// single authority on uniqueness; a pre-check may lose a race, so inserts
// translate the rejected write into one of these instead of surfacing a
// raw driver error.
var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateTitle    = errors.New("movie title already exists")
	ErrDuplicateReview   = errors.New("review already exists for this user and movie")
)

const uniqueViolationCode = "23505"

// translateUnique maps a unique-violation on the given constraint to a
// sentinel, passing every other error through.
func translateUnique(err error, constraint string, sentinel error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint {
		return sentinel
	}
	return err
}
