package store

import (
	"context"
	"sync"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// MemoryStore is a concurrency-safe in-memory forecast slot and preference store.
// The forecast is kept encoded, so callers never share memory with the stored copy.
type MemoryStore struct {
	mu sync.RWMutex

	forecast []byte
	prefs    map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prefs: make(map[string]string),
	}
}

// SaveForecast replaces the stored forecast.
func (s *MemoryStore) SaveForecast(_ context.Context, f *weather.Forecast) error {
	data, err := EncodeForecast(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forecast = data
	return nil
}

// LoadForecast returns the stored forecast or ErrNotFound.
func (s *MemoryStore) LoadForecast(_ context.Context) (*weather.Forecast, error) {
	s.mu.RLock()
	data := s.forecast
	s.mu.RUnlock()

	if data == nil {
		return nil, ErrNotFound
	}
	return DecodeForecast(data)
}

// Get returns a preference value.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.prefs[key]
	return v, ok, nil
}

// Put stores a preference value.
func (s *MemoryStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs[key] = value
	return nil
}
