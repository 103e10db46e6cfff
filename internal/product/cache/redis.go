package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"palantir/internal/domain"
)

type Repository interface {
	FindByIDsAndStore(ctx context.Context, ids []string, storeID string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
}

// CachedRepository is a cache-aside decorator for the product catalog.
// Redis failures are logged and the call falls through to the repository.
type CachedRepository struct {
	repo    Repository
	client  *redis.Client
	baseTTL time.Duration
	logger  *zap.Logger
	sfg     singleflight.Group
}

func NewCachedRepository(repo Repository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		repo:    repo,
		client:  client,
		baseTTL: ttl,
		logger:  logger,
	}
}

func (c *CachedRepository) FindByIDsAndStore(ctx context.Context, ids []string, storeID string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, misses := c.lookup(ctx, ids)

	var products []domain.Product
	for _, p := range cached {
		if p.StoreID == storeID {
			products = append(products, p)
		}
	}
	if len(misses) == 0 {
		return products, nil
	}

	sorted := append([]string(nil), misses...)
	sort.Strings(sorted)
	key := storeID + ":" + strings.Join(sorted, ",")

	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		found, err := c.repo.FindByIDsAndStore(ctx, misses, storeID)
		if err != nil {
			return nil, err
		}
		c.store(ctx, found)
		return found, nil
	})
	if err != nil {
		return nil, err
	}

	return append(products, v.([]domain.Product)...), nil
}

func (c *CachedRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	cached, _ := c.lookup(ctx, []string{id})
	if len(cached) == 1 {
		return &cached[0], nil
	}

	v, err, _ := c.sfg.Do("id:"+id, func() (interface{}, error) {
		p, err := c.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.store(ctx, []domain.Product{*p})
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (c *CachedRepository) Create(ctx context.Context, p *domain.Product) error {
	if err := c.repo.Create(ctx, p); err != nil {
		return err
	}
	if err := c.client.Del(ctx, cacheKey(p.ID)).Err(); err != nil {
		c.logger.Warn("product cache invalidation failed", zap.String("productId", p.ID), zap.Error(err))
	}
	return nil
}

func (c *CachedRepository) lookup(ctx context.Context, ids []string) ([]domain.Product, []string) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = cacheKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("product cache get failed", zap.Error(err))
		}
		return nil, ids
	}

	var (
		found  []domain.Product
		misses []string
	)
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			misses = append(misses, ids[i])
			continue
		}
		var p domain.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			c.logger.Warn("discarding corrupt product cache entry", zap.String("productId", ids[i]), zap.Error(err))
			misses = append(misses, ids[i])
			continue
		}
		found = append(found, p)
	}
	return found, misses
}

func (c *CachedRepository) store(ctx context.Context, products []domain.Product) {
	if len(products) == 0 {
		return
	}

	pipe := c.client.Pipeline()
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			c.logger.Warn("marshal product for cache failed", zap.String("productId", p.ID), zap.Error(err))
			continue
		}
		jitter := time.Duration(rand.Intn(60)) * time.Second
		pipe.Set(ctx, cacheKey(p.ID), data, c.baseTTL+jitter)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("product cache set failed", zap.Error(err))
	}
}

func cacheKey(productID string) string {
	return fmt.Sprintf("product:%s", productID)
}
