package config

import (
	"testing"
	"time"

	"github.com/i474232898/weather-forecast/internal/weather"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "FORECAST_DAYS", "FETCH_INTERVAL", "STORE_BACKEND", "TEMPERATURE_UNIT", "WEATHER_LOCATION", "PROVIDER_RPS"} {
		t.Setenv(k, "")
	}

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.ForecastDays != 7 || cfg.FetchInterval != 30*time.Minute {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.StoreBackend != BackendBolt || cfg.DefaultUnit != weather.Celsius || cfg.Location != nil {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.ProviderRPS != 1 || cfg.ProviderBurst != 3 {
		t.Errorf("unexpected rate limit %v/%d", cfg.ProviderRPS, cfg.ProviderBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("TEMPERATURE_UNIT", "f")
	t.Setenv("WEATHER_LOCATION", "40.4,-3.7")
	t.Setenv("FETCH_INTERVAL", "5m")

	cfg, _, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ForecastDays != 3 || cfg.StoreBackend != BackendRedis || cfg.DefaultUnit != weather.Fahrenheit {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Location == nil || *cfg.Location != (weather.Location{Lat: 40.4, Lon: -3.7}) {
		t.Errorf("unexpected location %v", cfg.Location)
	}
	if cfg.FetchInterval != 5*time.Minute {
		t.Errorf("unexpected interval %s", cfg.FetchInterval)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"FORECAST_DAYS":    "1",
		"FETCH_INTERVAL":   "soon",
		"STORE_BACKEND":    "postgres",
		"TEMPERATURE_UNIT": "kelvin",
		"WEATHER_LOCATION": "north",
		"PROVIDER_RPS":     "fast",
		"REDIS_DB":         "zero",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, _, err := Load(); err == nil {
				t.Fatalf("expected an error for %s=%q", key, value)
			}
		})
	}
}
