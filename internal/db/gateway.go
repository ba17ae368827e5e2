package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Querier is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a Querier that can also open transactions and be health-checked.
type Pool interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *Gateway) error

// Gateway mediates all SQL execution. Each call runs exactly one statement;
// connections are acquired per call and handed back by pgx before the call
// returns, on success and on failure.
type Gateway struct {
	pool    Pool
	q       Querier
	timeout time.Duration
	logger  zerolog.Logger
}

// NewGateway wraps pool. timeout bounds each statement when the caller's
// context carries no deadline; zero disables it.
func NewGateway(pool Pool, timeout time.Duration, logger zerolog.Logger) *Gateway {
	return &Gateway{
		pool:    pool,
		q:       pool,
		timeout: timeout,
		logger:  logger,
	}
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Exec runs a mutating statement and returns the number of affected rows.
// Outside a transaction the statement is committed before Exec returns.
func (g *Gateway) Exec(ctx context.Context, stmt squirrel.Sqlizer) (int64, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	tag, err := g.q.Exec(ctx, sql, args...)
	if err != nil {
		g.logger.Debug().Err(err).Str("sql", sql).Msg("Statement failed")
		return 0, fmt.Errorf("exec failed: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QueryRow scans a single row into dest. pgx.ErrNoRows is returned unwrapped
// so callers can tell absence from failure.
func (g *Gateway) QueryRow(ctx context.Context, stmt squirrel.Sqlizer, dest ...any) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	if err := g.q.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		g.logger.Debug().Err(err).Str("sql", sql).Msg("Query row failed")
		return fmt.Errorf("query row failed: %w", err)
	}
	return nil
}

// Query runs stmt and calls scan once per row. Rows are always closed.
func (g *Gateway) Query(ctx context.Context, stmt squirrel.Sqlizer, scan func(pgx.Rows) error) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	rows, err := g.q.Query(ctx, sql, args...)
	if err != nil {
		g.logger.Debug().Err(err).Str("sql", sql).Msg("Query failed")
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate rows: %w", err)
	}
	return nil
}

// Count runs a single-column integer query such as SELECT COUNT(*).
func (g *Gateway) Count(ctx context.Context, stmt squirrel.Sqlizer) (int64, error) {
	var n int64
	if err := g.QueryRow(ctx, stmt, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// Ping checks that a pooled connection can reach the database.
func (g *Gateway) Ping(ctx context.Context) error {
	if g.pool == nil {
		return fmt.Errorf("ping is not available inside a transaction")
	}
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()
	return g.pool.Ping(ctx)
}

// WithTransaction runs fn with a gateway bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
func (g *Gateway) WithTransaction(ctx context.Context, fn TransactionFn) error {
	if g.pool == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txGateway := &Gateway{q: tx, timeout: g.timeout, logger: g.logger}
	if err := fn(ctx, txGateway); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			g.logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
