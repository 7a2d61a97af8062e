package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/i474232898/weather-forecast/internal/weather"
)

const forecastBody = `{
  "location": {"name": "Lisbon", "region": "Lisboa", "country": "Portugal", "lat": 38.72, "lon": -9.13, "tz_id": "Europe/Lisbon", "localtime_epoch": 1700000000},
  "current": {"last_updated_epoch": 1700000000, "temp_c": 18.5, "feelslike_c": 17.9, "is_day": 1, "condition": {"code": 1003}, "humidity": 72},
  "forecast": {"forecastday": [
    {"date_epoch": 1699920000, "day": {"maxtemp_c": 21.0, "mintemp_c": 12.0, "daily_will_it_rain": 0, "daily_chance_of_rain": 10, "condition": {"code": 1000}},
     "astro": {"sunrise": "07:10 AM", "sunset": "05:25 PM"},
     "hour": [{"time_epoch": 1699920000, "temp_c": 13.1, "is_day": 0, "will_it_rain": 0, "chance_of_rain": 5, "condition": {"code": 1000}}]}
  ]}
}`

func newTestProvider(t *testing.T, baseURL string) *WeatherAPIProvider {
	t.Helper()
	p := NewWeatherAPIProvider(&http.Client{Timeout: 2 * time.Second}, WeatherAPIOptions{
		APIKey:  "secret",
		BaseURL: baseURL,
	}, nil)
	p.httpCfg.Backoff = BackoffConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	return p
}

func TestWeatherAPIProvider_FetchForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast.json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{"key": "secret", "q": "38.72,-9.13", "days": "7", "aqi": "no", "alerts": "no"}
		for k, v := range want {
			if got := q.Get(k); got != v {
				t.Errorf("query %s = %q, want %q", k, got, v)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	payload, err := p.FetchForecast(context.Background(), weather.Location{Lat: 38.72, Lon: -9.13}, 7)
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}

	if payload.Location.Name != "Lisbon" || payload.Location.Country != "Portugal" {
		t.Fatalf("unexpected location %+v", payload.Location)
	}
	if payload.Current.TempC != 18.5 || payload.Current.Condition.Code != 1003 {
		t.Fatalf("unexpected current %+v", payload.Current)
	}
	if len(payload.Forecast.ForecastDay) != 1 {
		t.Fatalf("expected 1 forecast day, got %d", len(payload.Forecast.ForecastDay))
	}
	day := payload.Forecast.ForecastDay[0]
	if day.Day.MaxTempC != 21.0 || day.Astro.Sunrise != "07:10 AM" || len(day.Hour) != 1 {
		t.Fatalf("unexpected day %+v", day)
	}
}

func TestWeatherAPIProvider_MissingKey(t *testing.T) {
	p := NewWeatherAPIProvider(http.DefaultClient, WeatherAPIOptions{}, nil)
	_, err := p.FetchForecast(context.Background(), weather.Location{Lat: 1, Lon: 2}, 7)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestWeatherAPIProvider_RetriesServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	if _, err := p.FetchForecast(context.Background(), weather.Location{Lat: 1, Lon: 2}, 3); err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestWeatherAPIProvider_ClientErrorNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer srv.Close()

	p := newTestProvider(t, srv.URL)
	_, err := p.FetchForecast(context.Background(), weather.Location{Lat: 1, Lon: 2}, 3)
	if !errors.Is(err, ErrUnexpected) {
		t.Fatalf("expected ErrUnexpected, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
}
