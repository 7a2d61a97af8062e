package weather

import (
	"context"
)

// Provider fetches the raw forecast payload for a location.
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, loc Location, days int) (Payload, error)
}

// Store keeps the single last computed forecast tree.
// LoadForecast returns an error matching ErrNoForecast when the slot is empty.
type Store interface {
	SaveForecast(ctx context.Context, f *Forecast) error
	LoadForecast(ctx context.Context) (*Forecast, error)
}

// Preferences is a string key/value store for user settings.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}
