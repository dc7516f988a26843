// Package postgres is the DocumentStore used by the dev backend when a
// DATABASE_URL is configured.
package postgres

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lorrc/restaurant-console/internal/config"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded migrations to the database at url.
func Migrate(url string) (err error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewPool opens and pings a connection pool sized from cfg.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	poolConfig.MaxConnIdleTime = cfg.ConnMaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// DocumentStore keeps documents in a single JSONB table. The seq column
// fixes insertion order and survives upserts.
type DocumentStore struct {
	pool *pgxpool.Pool
}

var _ ports.DocumentStore = (*DocumentStore)(nil)

func NewDocumentStore(pool *pgxpool.Pool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

const (
	listDocuments = `SELECT body FROM documents WHERE collection = $1 ORDER BY seq`
	getDocument   = `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	putDocument   = `
INSERT INTO documents (collection, id, body)
VALUES ($1, $2, $3)
ON CONFLICT (collection, id) DO UPDATE
SET body = EXCLUDED.body, updated_at = now()`
	deleteDocument = `DELETE FROM documents WHERE collection = $1 AND id = $2`
)

func (s *DocumentStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx, listDocuments, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = d
	}
	return out, nil
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var body []byte
	err := s.pool.QueryRow(ctx, getDocument, collection, id).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return body, nil
}

func (s *DocumentStore) Put(ctx context.Context, collection, id string, body json.RawMessage) error {
	if !json.Valid(body) {
		return &apperrors.DecodeError{What: collection + "/" + id, Err: apperrors.ErrBadRequest}
	}

	// Sent as text so postgres parses it into jsonb.
	if _, err := s.pool.Exec(ctx, putDocument, collection, id, string(body)); err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx, deleteDocument, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
