package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/i474232898/weather-forecast/internal/observability"
)

// DefaultForecastDays is the number of days requested from the provider.
const DefaultForecastDays = 7

// Service owns the current forecast tree and wires the engine to its
// collaborators: the provider, the forecast store and the preferences.
// All methods are serialized, so the engine is never used concurrently.
type Service struct {
	mu sync.Mutex

	engine   *Engine
	provider Provider
	store    Store
	prefs    Preferences
	logger   *zap.Logger
	days     int

	current     *Forecast
	lastRefresh time.Time
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithForecastDays sets how many days are requested from the provider.
func WithForecastDays(days int) ServiceOption {
	return func(s *Service) {
		if days >= 2 {
			s.days = days
		}
	}
}

// NewService creates a new Service.
func NewService(engine *Engine, provider Provider, store Store, prefs Preferences, logger *zap.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		engine:   engine,
		provider: provider,
		store:    store,
		prefs:    prefs,
		logger:   logger,
		days:     DefaultForecastDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the settings, configures the engine unit and restores the last
// stored forecast, converted to the preferred unit. An empty store is not an error.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := LoadSettings(ctx, s.prefs)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	s.engine.UseUnit(settings.Unit)

	f, err := s.store.LoadForecast(ctx)
	if err != nil {
		if errors.Is(err, ErrNoForecast) {
			s.logger.Info("No stored forecast yet")
			return nil
		}
		return fmt.Errorf("loading stored forecast: %w", err)
	}

	if n := s.engine.ApplyUnit(f, settings.Unit); n > 0 {
		observability.RecordConversions(string(settings.Unit), n)
		if err := s.store.SaveForecast(ctx, f); err != nil {
			return fmt.Errorf("saving converted forecast: %w", err)
		}
	}
	s.current = f

	s.logger.Info("Restored stored forecast",
		zap.String("city", f.City),
		zap.String("unit", string(settings.Unit)))
	return nil
}

// Refresh fetches a new payload for the saved location, assembles it and
// replaces the stored forecast. On failure the previous forecast is kept.
func (s *Service) Refresh(ctx context.Context) (*Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := LoadSettings(ctx, s.prefs)
	if err != nil {
		observability.RecordRefresh("error")
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if settings.Location == nil {
		observability.RecordRefresh("skipped")
		return nil, ErrNoLocation
	}

	start := time.Now()
	payload, err := s.provider.FetchForecast(ctx, *settings.Location, s.days)
	observability.ObserveProvider(s.provider.Name(), start, err)
	if err != nil {
		observability.RecordRefresh("error")
		s.logger.Error("Forecast fetch failed",
			zap.String("provider", s.provider.Name()),
			zap.String("location", settings.Location.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrProviderFailure, s.provider.Name(), err)
	}

	f, err := s.engine.Assemble(payload)
	if err != nil {
		observability.RecordRefresh("error")
		return nil, fmt.Errorf("assembling forecast: %w", err)
	}

	if err := s.store.SaveForecast(ctx, f); err != nil {
		observability.RecordRefresh("error")
		return nil, fmt.Errorf("saving forecast: %w", err)
	}

	s.current = f
	s.lastRefresh = time.Now()
	observability.RecordRefresh("ok")

	s.logger.Info("Forecast refreshed",
		zap.String("city", f.City),
		zap.Int("days", len(f.Days)),
		zap.Int("next_hours", len(f.Next24Hours)),
		zap.Duration("duration", time.Since(start)))
	return f.Clone(), nil
}

// Forecast returns a copy of the current forecast tree, safe to read while
// the service keeps converting its own tree.
func (s *Service) Forecast() (*Forecast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoForecast
	}
	return s.current.Clone(), nil
}

// SetUnit persists the unit preference, converts the current tree in place
// and stores it. Setting the unit already in use only rewrites the preference.
func (s *Service) SetUnit(ctx context.Context, unit Unit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := SaveUnit(ctx, s.prefs, unit); err != nil {
		return fmt.Errorf("saving unit: %w", err)
	}

	n := s.engine.ApplyUnit(s.current, unit)
	observability.RecordConversions(string(unit), n)
	if s.current == nil || n == 0 {
		return nil
	}

	if err := s.store.SaveForecast(ctx, s.current); err != nil {
		return fmt.Errorf("saving converted forecast: %w", err)
	}
	s.logger.Info("Temperature unit applied",
		zap.String("unit", string(unit)),
		zap.Int("converted", n))
	return nil
}

// SetTheme persists the theme preference.
func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SaveTheme(ctx, s.prefs, theme)
}

// SetLocation persists the last known location used by Refresh.
func (s *Service) SetLocation(ctx context.Context, loc Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := SaveLocation(ctx, s.prefs, loc); err != nil {
		return fmt.Errorf("saving location: %w", err)
	}
	s.logger.Info("Location updated", zap.String("location", loc.String()))
	return nil
}

// Settings returns the stored settings.
func (s *Service) Settings(ctx context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return LoadSettings(ctx, s.prefs)
}

// TimeZone returns the zone used for hour-of-day and hour labels.
func (s *Service) TimeZone() *time.Location {
	return s.engine.TimeZone()
}

// LastRefresh returns the time of the last successful refresh.
func (s *Service) LastRefresh() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRefresh
}
