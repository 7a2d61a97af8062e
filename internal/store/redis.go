package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// RedisStore keeps the forecast slot and the preferences in redis under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// OpenRedis connects to redis and checks the connection.
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis %s: %w", opts.Addr, err)
	}
	return NewRedisStore(client, opts.KeyPrefix), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) forecastKey() string {
	return s.prefix + "forecast"
}

func (s *RedisStore) prefKey(key string) string {
	return s.prefix + "pref:" + key
}

// SaveForecast replaces the stored forecast.
func (s *RedisStore) SaveForecast(ctx context.Context, f *weather.Forecast) error {
	data, err := EncodeForecast(f)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.forecastKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("writing forecast: %w", err)
	}
	return nil
}

// LoadForecast returns the stored forecast or ErrNotFound.
func (s *RedisStore) LoadForecast(ctx context.Context) (*weather.Forecast, error) {
	data, err := s.client.Get(ctx, s.forecastKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading forecast: %w", err)
	}
	return DecodeForecast(data)
}

// Get returns a preference value.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.prefKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return v, true, nil
}

// Put stores a preference value.
func (s *RedisStore) Put(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}
