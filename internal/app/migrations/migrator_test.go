package migrations

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
)

func writeMigrations(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestMigrateFromDirectory_AppliesPendingInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	dir := writeMigrations(t, map[string]string{
		"002_users.sql":    "CREATE TABLE users (userid SERIAL PRIMARY KEY);",
		"001_colleges.sql": "CREATE TABLE colleges (collegecode TEXT PRIMARY KEY);",
		"README.md":        "ignored",
	})

	// 001 is already recorded
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")).
		WithArgs("001").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")).
		WithArgs("002").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE users")).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
		WithArgs("002").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	n, err := NewMigrator(mock, zerolog.Nop()).MigrateFromDirectory(context.Background(), dir)
	if err != nil {
		t.Fatalf("MigrateFromDirectory: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 applied migration, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMigrateFromDirectory_MissingDir(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	if _, err := NewMigrator(mock, zerolog.Nop()).MigrateFromDirectory(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestVersionOf(t *testing.T) {
	if got := versionOf("migrations/001_init.sql"); got != "001" {
		t.Errorf("expected 001, got %s", got)
	}
}
