package cache

import (
	"context"
	"errors"

	"github.com/chinmaye5/Freelance-ecommerce/models"
)

var ErrCacheMiss = errors.New("cache miss")

// ProductCache caches product listings by key (e.g. "offers"). A nil
// ProductCache disables caching; callers must treat any cache error as a
// miss and fall through to the database.
type ProductCache interface {
	Get(ctx context.Context, key string) ([]models.Product, error)
	Set(ctx context.Context, key string, products []models.Product) error
	Invalidate(ctx context.Context, key string) error
}
