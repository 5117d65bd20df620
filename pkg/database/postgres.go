package database

import (
	"context"
	"fmt"
	"time"

	"page-builder/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements KVStore over a single kv_records table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS kv_records (
		key        TEXT PRIMARY KEY,
		version    BIGINT NOT NULL,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// InitPostgresStore creates the connection pool and ensures the schema.
func InitPostgresStore(config utils.DatabaseConfig) (*PostgresStore, error) {
	// Build connection string
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s",
		config.User, config.Password, config.Name, config.Host)

	// Parse config
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	poolConfig.MaxConns = int32(config.MaxConns)
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	// Create connection pool
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	if _, err := pool.Exec(context.Background(), createTableQuery); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure kv_records table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Get implements KVStore
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	query := `SELECT value, version FROM kv_records WHERE key = $1`

	var value []byte
	var version int64
	err := s.pool.QueryRow(ctx, query, key).Scan(&value, &version)

	if err == pgx.ErrNoRows {
		return nil, 0, ErrKeyNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("get key %s: %w", key, err)
	}

	return value, version, nil
}

// Put implements KVStore. The CAS happens in SQL: the UPDATE only matches
// when the stored version is still expectedVersion.
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte, expectedVersion int64) error {
	if expectedVersion == CreateOnly {
		query := `
			INSERT INTO kv_records (key, version, value, updated_at)
			VALUES ($1, 1, $2, NOW())
			ON CONFLICT (key) DO NOTHING
		`
		tag, err := s.pool.Exec(ctx, query, key, value)
		if err != nil {
			return fmt.Errorf("create key %s: %w", key, err)
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}
		return nil
	}

	query := `
		UPDATE kv_records
		SET version = version + 1, value = $3, updated_at = NOW()
		WHERE key = $1 AND version = $2
	`
	tag, err := s.pool.Exec(ctx, query, key, expectedVersion, value)
	if err != nil {
		return fmt.Errorf("put key %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}

	return nil
}

// Ping implements KVStore
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements KVStore
func (s *PostgresStore) Close() {
	s.pool.Close()
}
