package weather

import (
	"context"
	"sync"
	"time"
)

// baseDay is a Sunday.
var baseDay = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func testEngine(unit Unit) *Engine {
	return NewEngine(unit, WithLocation(time.UTC))
}

func payloadHour(ts time.Time, tempC float64) PayloadHour {
	isDay := 0
	if h := ts.Hour(); h >= 6 && h < 18 {
		isDay = 1
	}
	ph := PayloadHour{
		TimeEpoch:    ts.Unix(),
		TempC:        tempC,
		IsDay:        isDay,
		ChanceOfRain: ts.Hour(),
	}
	ph.Condition.Code = 1000
	return ph
}

func payloadDay(day time.Time, hours int) PayloadDay {
	var pd PayloadDay
	pd.DateEpoch = day.Unix()
	pd.Day.MinTempC = 10
	pd.Day.MaxTempC = 20
	pd.Day.Condition.Code = 1189
	pd.Day.DailyWillItRain = 1
	pd.Day.DailyChanceOfRain = 85
	pd.Astro.Sunrise = "06:58 AM"
	pd.Astro.Sunset = "06:41 PM"
	for h := 0; h < hours; h++ {
		pd.Hour = append(pd.Hour, payloadHour(day.Add(time.Duration(h)*time.Hour), float64(10+h)/2))
	}
	return pd
}

// testPayload builds a payload of n full days starting at baseDay,
// observed at hour `now` of the first day.
func testPayload(n, now int) Payload {
	var p Payload
	p.Location.Name = "Lisbon"
	p.Location.Region = "Lisboa"
	p.Location.Country = "Portugal"
	p.Location.Lat = 38.72
	p.Location.Lon = -9.13
	p.Location.TzID = "Europe/Lisbon"
	p.Location.LocaltimeEpoch = baseDay.Add(time.Duration(now)*time.Hour + 5*time.Minute).Unix()
	p.Current.LastUpdatedEpoch = baseDay.Add(time.Duration(now) * time.Hour).Unix()
	p.Current.TempC = 18
	p.Current.FeelsLikeC = 17
	p.Current.IsDay = 1
	p.Current.Condition.Code = 1003
	p.Current.Humidity = 70
	for d := 0; d < n; d++ {
		p.Forecast.ForecastDay = append(p.Forecast.ForecastDay, payloadDay(baseDay.AddDate(0, 0, d), 24))
	}
	return p
}

type memPrefs struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemPrefs() *memPrefs { return &memPrefs{m: map[string]string{}} }

func (p *memPrefs) Get(_ context.Context, key string) (string, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.m[key]
	return v, ok, nil
}

func (p *memPrefs) Put(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[key] = value
	return nil
}
