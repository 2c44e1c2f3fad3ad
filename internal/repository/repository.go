package repository

import (
	"context"
	"database/sql"
	"time"
)

type ICacheRepository interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
}

type Repository struct {
	cache ICacheRepository
}

func NewRepository(db *sql.DB, ttl time.Duration) *Repository {
	return &Repository{
		cache: NewCacheRepository(db, ttl),
	}
}

func (r *Repository) Cache() ICacheRepository {
	return r.cache
}
