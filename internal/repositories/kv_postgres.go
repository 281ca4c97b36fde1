package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
)

// KVSchema creates the table backing PostgresKeyValueRepository.
const KVSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
`

// PostgresKeyValueRepository stores collection documents in a single JSONB table.
// When txGetter returns a transaction for the context, statements run inside it.
type PostgresKeyValueRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewPostgresKeyValueRepository creates a repository. txGetter may be nil.
func NewPostgresKeyValueRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostgresKeyValueRepository {
	return &PostgresKeyValueRepository{db: db, txGetter: txGetter}
}

// Migrate creates the kv_store table if needed.
func (r *PostgresKeyValueRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, KVSchema); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (r *PostgresKeyValueRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Get fetches the value stored under key.
func (r *PostgresKeyValueRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return r.get(ctx, r.executor(ctx), key)
}

// GetForUpdate fetches the value stored under key and, inside a request
// transaction, holds a transaction-scoped advisory lock on key until commit
// or rollback. Concurrent writers of the same key queue on that lock and then
// read the committed value, missing rows included. Without a transaction it
// behaves like Get.
func (r *PostgresKeyValueRepository) GetForUpdate(ctx context.Context, key string) ([]byte, bool, error) {
	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx == nil {
		return r.get(ctx, r.db, key)
	}

	const lockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
	_, err := tx.ExecContext(ctx, lockQuery, key)

	logger.Log.Debugw("postgres lock",
		"query", lockQuery,
		"key", key,
		"error", err,
	)

	if err != nil {
		return nil, false, fmt.Errorf("postgres lock %s: %w", key, err)
	}
	return r.get(ctx, tx, key)
}

func (r *PostgresKeyValueRepository) get(ctx context.Context, q sqlx.QueryerContext, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	err := sqlx.GetContext(ctx, q, &value, query, key)

	logger.Log.Debugw("postgres get",
		"query", query,
		"key", key,
		"size", len(value),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres get %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value stored under key.
func (r *PostgresKeyValueRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, key, string(value))

	logger.Log.Debugw("postgres set",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"size", len(value),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}

// Exists reports whether key has a row.
func (r *PostgresKeyValueRepository) Exists(ctx context.Context, key string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM kv_store WHERE key = $1)`

	var exists bool
	if err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, key); err != nil {
		return false, fmt.Errorf("postgres exists %s: %w", key, err)
	}
	return exists, nil
}
