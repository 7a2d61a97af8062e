package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// ErrNotFound is returned when the forecast slot is empty.
var ErrNotFound = weather.ErrNoForecast

// schemaVersion of the encoded forecast envelope. Bump when the layout changes.
const schemaVersion = 1

// forecastKey is the single constant slot holding the forecast.
const forecastKey = "0"

type envelope struct {
	SchemaVersion int               `json:"schema_version"`
	SavedAt       time.Time         `json:"saved_at"`
	Forecast      *weather.Forecast `json:"forecast"`
}

// EncodeForecast serializes f into the on-disk representation.
func EncodeForecast(f *weather.Forecast) ([]byte, error) {
	data, err := json.Marshal(envelope{
		SchemaVersion: schemaVersion,
		SavedAt:       time.Now().UTC(),
		Forecast:      f,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding forecast: %w", err)
	}
	return data, nil
}

// DecodeForecast restores a forecast and relinks its derived views.
func DecodeForecast(data []byte) (*weather.Forecast, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}
	if env.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("decoding forecast: unsupported schema version %d", env.SchemaVersion)
	}
	if env.Forecast == nil {
		return nil, ErrNotFound
	}
	if err := validateTree(env.Forecast); err != nil {
		return nil, fmt.Errorf("decoding forecast: %w", err)
	}
	env.Forecast.Relink()
	return env.Forecast, nil
}

// ErrCorruptForecast is returned when stored bytes decode into an incomplete tree.
var ErrCorruptForecast = errors.New("corrupt stored forecast")

func validateTree(f *weather.Forecast) error {
	for i, d := range f.Days {
		if d == nil {
			return fmt.Errorf("%w: day %d is null", ErrCorruptForecast, i)
		}
		for j, h := range d.Hours {
			if h == nil {
				return fmt.Errorf("%w: day %d hour %d is null", ErrCorruptForecast, i, j)
			}
		}
	}
	for i, h := range f.Next24Hours {
		if h == nil {
			return fmt.Errorf("%w: window entry %d is null", ErrCorruptForecast, i)
		}
	}
	return nil
}
