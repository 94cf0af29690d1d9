package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/flightreservation/config"
	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes flight search results. Flights are read-only from the
// lifecycle's perspective, so no invalidation path is needed beyond the TTL.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(from, to, dateOfDeparture)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, from, to string, dateOfDeparture time.Time, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(from, to, dateOfDeparture), payload, c.searchTTL).Err()
}

func searchKey(from, to string, dateOfDeparture time.Time) string {
	return fmt.Sprintf("cache:flights:%s:%s:%s", from, to, dateOfDeparture.Format("2006-01-02"))
}
