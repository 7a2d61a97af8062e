package weather

import "errors"

var (
	// ErrInsufficientForecastData is returned when a payload carries fewer
	// than two forecast days, so no rolling window can be derived.
	ErrInsufficientForecastData = errors.New("insufficient forecast data")

	// ErrNoLocation is returned by a refresh before any location was saved.
	ErrNoLocation = errors.New("no location configured")

	// ErrProviderFailure wraps any error returned while fetching a payload.
	ErrProviderFailure = errors.New("forecast provider failure")

	ErrInvalidUnit     = errors.New("invalid temperature unit")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidLocation = errors.New("invalid location")
)

// ErrNoForecast is returned when no forecast has been built or stored yet.
var ErrNoForecast = errors.New("no forecast available")
