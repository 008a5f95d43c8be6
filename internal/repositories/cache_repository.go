package repositories

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("clave no encontrada en la caché")

type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
