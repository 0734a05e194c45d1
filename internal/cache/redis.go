package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bilgisen/geopulse/internal/config"
	"github.com/bilgisen/geopulse/internal/models"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client    *redis.Client
	prefix    string
	retention time.Duration
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:    client,
		prefix:    cfg.RedisPrefix,
		retention: cfg.CacheRetention,
	}, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Ping reports whether the backing redis is reachable.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) key(countryName string) string {
	return r.prefix + strings.ToLower(strings.TrimSpace(countryName))
}

func (r *RedisStore) Lookup(ctx context.Context, countryName string) (*models.CountryRecord, error) {
	data, err := r.client.Get(ctx, r.key(countryName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var record models.CountryRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached record: %w", err)
	}

	return &record, nil
}

func (r *RedisStore) Store(ctx context.Context, record models.CountryRecord) error {
	data, err := json.Marshal(record.FactsOnly())
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// The retention TTL only bounds growth; the freshness window is
	// enforced by the caller at read time from cachedAt.
	if err := r.client.Set(ctx, r.key(record.CountryName), data, r.retention).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}
