package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error code for unique constraint violations
const uniqueViolationCode = "23505"

// IsDuplicateKey reports whether err is a postgres unique-violation error.
// Services use this to turn racy create conflicts into their own sentinel
// errors instead of leaking driver errors to handlers.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
