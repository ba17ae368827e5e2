package migrations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/webssis/ssis/internal/db"
)

// Migrator applies numbered SQL files once each, tracking them in
// schema_migrations.
type Migrator struct {
	db     db.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(pool db.Pool, logger zerolog.Logger) *Migrator {
	return &Migrator{
		db:     pool,
		logger: logger,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// recordMigration marks a migration as applied inside the migration's own
// transaction
func recordMigration(ctx context.Context, tx pgx.Tx, version string) error {
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// versionOf extracts the version prefix, e.g. "001_init.sql" => "001"
func versionOf(filePath string) string {
	return strings.SplitN(filepath.Base(filePath), "_", 2)[0]
}

// MigrateFromFile applies one SQL file unless its version is already recorded.
// It reports whether the file was applied.
func (m *Migrator) MigrateFromFile(ctx context.Context, filePath string) (bool, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return false, err
	}

	version := versionOf(filePath)
	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if applied {
		m.logger.Debug().Str("file", filepath.Base(filePath)).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file: %w", err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		return false, fmt.Errorf("error occurred during SQL migration %s: %w", filepath.Base(filePath), err)
	}
	if err := recordMigration(ctx, tx, version); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", filepath.Base(filePath)).Msg("Migration applied")
	return true, nil
}

// MigrateFromDirectory applies every .sql file in dirPath in lexical order
// and returns how many were newly applied.
func (m *Migrator) MigrateFromDirectory(ctx context.Context, dirPath string) (int, error) {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(file.Name(), ".sql") {
			sqlFiles = append(sqlFiles, file.Name())
		}
	}
	sort.Strings(sqlFiles)

	count := 0
	for _, file := range sqlFiles {
		applied, err := m.MigrateFromFile(ctx, filepath.Join(dirPath, file))
		if err != nil {
			return count, err
		}
		if applied {
			count++
		}
	}
	return count, nil
}
