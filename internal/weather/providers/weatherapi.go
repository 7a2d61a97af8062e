package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// DefaultWeatherAPIBaseURL is the WeatherAPI.com v1 endpoint root.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1"

// WeatherAPIOptions configures a WeatherAPIProvider.
type WeatherAPIOptions struct {
	APIKey  string
	BaseURL string
	// RPS and Burst bound outgoing requests; RPS <= 0 disables limiting.
	RPS   float64
	Burst int
}

// WeatherAPIProvider implements weather.Provider against WeatherAPI.com forecast.json.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewWeatherAPIProvider(client *http.Client, opts WeatherAPIOptions, logger *zap.Logger) *WeatherAPIProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultWeatherAPIBaseURL
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
			Limiter: limiter,
		},
		circuit: cb,
		logger:  logger,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// FetchForecast requests a days-long forecast for loc.
func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, loc weather.Location, days int) (weather.Payload, error) {
	if p.apiKey == "" {
		return weather.Payload{}, fmt.Errorf("weatherapi: %w", ErrMissingAPIKey)
	}

	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", loc.String())
		values.Set("days", strconv.Itoa(days))
		values.Set("aqi", "no")
		values.Set("alerts", "no")

		u := fmt.Sprintf("%s/forecast.json?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	p.logger.Debug("Requesting forecast",
		zap.String("provider", p.name),
		zap.String("location", loc.String()),
		zap.Int("days", days))

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Payload{}, err
	}
	defer resp.Body.Close()

	var payload weather.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Payload{}, fmt.Errorf("decoding forecast response: %w", err)
	}
	return payload, nil
}
