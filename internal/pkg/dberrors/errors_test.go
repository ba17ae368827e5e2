package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "colleges_pkey"})

	if !IsDuplicateKeyError(wrapped) {
		t.Error("expected wrapped unique violation to be detected")
	}
	if !IsDuplicateConstraintError(wrapped, "colleges_pkey") {
		t.Error("expected constraint name to match")
	}
	if IsDuplicateConstraintError(wrapped, "users_username_key") {
		t.Error("expected different constraint name not to match")
	}
	if IsForeignKeyError(wrapped) {
		t.Error("unique violation must not be reported as foreign key violation")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	if !IsForeignKeyError(&pgconn.PgError{Code: ForeignKeyViolation}) {
		t.Error("expected foreign key violation to be detected")
	}
	if IsForeignKeyError(errors.New("connection refused")) {
		t.Error("plain errors are not foreign key violations")
	}
	if IsDuplicateKeyError(nil) {
		t.Error("nil is not a duplicate key error")
	}
}
