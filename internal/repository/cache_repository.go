package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// cacheRepository is the SQLite-backed implementation of ICacheRepository.
// Entries older than ttl are reported as misses; a later Put overwrites them.
type cacheRepository struct {
	db  *sql.DB
	ttl time.Duration
}

func NewCacheRepository(db *sql.DB, ttl time.Duration) ICacheRepository {
	return &cacheRepository{db: db, ttl: ttl}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `SELECT payload, fetched_at FROM api_cache WHERE cache_key = ?`

	var payload []byte
	var fetchedAt time.Time
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if r.ttl > 0 && time.Since(fetchedAt) > r.ttl {
		return nil, false, nil
	}
	return payload, true, nil
}

func (r *cacheRepository) Put(ctx context.Context, key string, payload []byte) error {
	query := `
		INSERT INTO api_cache (cache_key, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`

	_, err := r.db.ExecContext(ctx, query, key, payload, time.Now().UTC())
	return err
}
