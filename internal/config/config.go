package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// Store backends.
const (
	BackendBolt   = "bolt"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type AppConfig struct {
	Port     string
	LogLevel string

	WeatherAPIKey     string
	WeatherAPIBaseURL string

	// ForecastDays is the number of days requested per refresh.
	ForecastDays  int
	HTTPTimeout   time.Duration
	ProviderRPS   float64
	ProviderBurst int

	// FetchInterval controls how often the forecast is refreshed.
	FetchInterval time.Duration

	StoreBackend   string
	StorePath      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// DefaultUnit applies only while no unit preference is stored.
	DefaultUnit weather.Unit
	// Location seeds the last known location when none is stored.
	Location *weather.Location
}

// Load reads configuration from the environment (and .env when present) with sensible defaults.
// A missing .env is reported through envLoaded so the caller can log it once a logger exists.
func Load() (cfg *AppConfig, envLoaded bool, err error) {
	envLoaded = godotenv.Load() == nil
	cfg = &AppConfig{
		Port:              getenvDefault("PORT", "8080"),
		LogLevel:          strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		WeatherAPIKey:     os.Getenv("WEATHERAPI_API_KEY"),
		WeatherAPIBaseURL: getenvDefault("WEATHERAPI_BASE_URL", "https://api.weatherapi.com/v1"),
		StoreBackend:      strings.ToLower(getenvDefault("STORE_BACKEND", BackendBolt)),
		StorePath:         getenvDefault("STORE_PATH", "./data/weather.db"),
		RedisAddr:         getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisKeyPrefix:    getenvDefault("REDIS_KEY_PREFIX", "weather:"),
		DefaultUnit:       weather.Celsius,
	}

	if cfg.ForecastDays, err = getenvInt("FORECAST_DAYS", 7); err != nil {
		return nil, envLoaded, err
	}
	if cfg.ForecastDays < 2 || cfg.ForecastDays > 14 {
		return nil, envLoaded, fmt.Errorf("invalid FORECAST_DAYS: %d is outside 2..14", cfg.ForecastDays)
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, envLoaded, err
	}
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", 30*time.Minute); err != nil {
		return nil, envLoaded, err
	}
	if cfg.FetchInterval < time.Minute {
		return nil, envLoaded, fmt.Errorf("invalid FETCH_INTERVAL: %s is below 1m", cfg.FetchInterval)
	}

	rps := getenvDefault("PROVIDER_RPS", "1")
	if cfg.ProviderRPS, err = strconv.ParseFloat(rps, 64); err != nil {
		return nil, envLoaded, fmt.Errorf("invalid PROVIDER_RPS: %w", err)
	}
	if cfg.ProviderBurst, err = getenvInt("PROVIDER_BURST", 3); err != nil {
		return nil, envLoaded, err
	}
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return nil, envLoaded, err
	}

	switch cfg.StoreBackend {
	case BackendBolt, BackendRedis, BackendMemory:
	default:
		return nil, envLoaded, fmt.Errorf("invalid STORE_BACKEND: %q", cfg.StoreBackend)
	}

	if v := os.Getenv("TEMPERATURE_UNIT"); v != "" {
		if cfg.DefaultUnit, err = weather.ParseUnit(v); err != nil {
			return nil, envLoaded, fmt.Errorf("invalid TEMPERATURE_UNIT: %w", err)
		}
	}
	if v := os.Getenv("WEATHER_LOCATION"); v != "" {
		loc, err := weather.ParseLocation(v)
		if err != nil {
			return nil, envLoaded, fmt.Errorf("invalid WEATHER_LOCATION: %w", err)
		}
		cfg.Location = &loc
	}

	return cfg, envLoaded, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
