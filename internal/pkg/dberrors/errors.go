package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func IsDuplicateKeyError(err error) bool {
	return hasCode(err, UniqueViolation)
}

// IsForeignKeyError checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyError(err error) bool {
	return hasCode(err, ForeignKeyViolation)
}

// IsDuplicateConstraintError checks if the error is a unique violation
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
