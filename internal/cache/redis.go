package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mtereshin/skyfare/config"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps quoted flight result sets for a short TTL so repeated
// browsing does not recompute and re-read every row. A miss or any Redis
// error degrades to the database.
type RedisCache struct {
	client    *redis.Client
	quotesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, quotesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		quotesTTL: quotesTTL,
	}
}

func (c *RedisCache) GetQuotes(ctx context.Context, key string) ([]domain.QuotedFlight, error) {
	data, err := c.client.Get(ctx, quotesKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var quotes []domain.QuotedFlight
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (c *RedisCache) SetQuotes(ctx context.Context, key string, quotes []domain.QuotedFlight) error {
	payload, err := json.Marshal(quotes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, quotesKey(key), payload, c.quotesTTL).Err()
}

func quotesKey(key string) string {
	return "cache:quotes:" + key
}
