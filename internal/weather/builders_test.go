package weather

import (
	"math"
	"testing"
	"time"
)

func TestBuildDaySortsHours(t *testing.T) {
	at := func(hour int, tempC float64) PayloadHour {
		return payloadHour(baseDay.Add(time.Duration(hour)*time.Hour), tempC)
	}

	tests := []struct {
		name      string
		hours     []PayloadHour
		wantHours []int
		wantTemps []float64
	}{
		{
			name:      "reversed",
			hours:     []PayloadHour{at(3, 3), at(2, 2), at(1, 1), at(0, 0)},
			wantHours: []int{0, 1, 2, 3},
			wantTemps: []float64{0, 1, 2, 3},
		},
		{
			name:      "shuffled",
			hours:     []PayloadHour{at(7, 7), at(0, 0), at(23, 23), at(12, 12), at(5, 5)},
			wantHours: []int{0, 5, 7, 12, 23},
			wantTemps: []float64{0, 5, 7, 12, 23},
		},
		{
			name:      "duplicate hours keep input order",
			hours:     []PayloadHour{at(3, 30), at(1, 1), at(3, 31), at(0, 0), at(3, 32)},
			wantHours: []int{0, 1, 3, 3, 3},
			wantTemps: []float64{0, 1, 30, 31, 32},
		},
		{
			name:      "already sorted",
			hours:     []PayloadHour{at(0, 0), at(1, 1)},
			wantHours: []int{0, 1},
			wantTemps: []float64{0, 1},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pd := payloadDay(baseDay, 0)
			pd.Hour = tc.hours

			day := testEngine(Celsius).BuildDay(pd)
			if len(day.Hours) != len(tc.wantHours) {
				t.Fatalf("expected %d hours, got %d", len(tc.wantHours), len(day.Hours))
			}
			for i, h := range day.Hours {
				if h.Timestamp.Hour() != tc.wantHours[i] || h.Temperature.Value != tc.wantTemps[i] {
					t.Fatalf("entry %d is hour %d at %v, want hour %d at %v",
						i, h.Timestamp.Hour(), h.Temperature.Value, tc.wantHours[i], tc.wantTemps[i])
				}
			}
		})
	}
}

func TestBuildDaySortsFullDay(t *testing.T) {
	pd := payloadDay(baseDay, 24)
	for i, j := 0, len(pd.Hour)-1; i < j; i, j = i+1, j-1 {
		pd.Hour[i], pd.Hour[j] = pd.Hour[j], pd.Hour[i]
	}

	day := testEngine(Celsius).BuildDay(pd)
	if len(day.Hours) != 24 {
		t.Fatalf("expected 24 hours, got %d", len(day.Hours))
	}
	for i, h := range day.Hours {
		if h.Timestamp.Hour() != i {
			t.Fatalf("hour %d has timestamp %s", i, h.Timestamp)
		}
	}
}

func TestBuildDayFields(t *testing.T) {
	day := testEngine(Celsius).BuildDay(payloadDay(baseDay.AddDate(0, 0, 1), 3))

	if day.Weekday != Monday {
		t.Errorf("expected MONDAY, got %s", day.Weekday)
	}
	if !day.Timestamp.Equal(baseDay.AddDate(0, 0, 1)) {
		t.Errorf("unexpected timestamp %s", day.Timestamp)
	}
	if day.Condition.Icon != "rain_day" {
		t.Errorf("day condition must be classified as daytime, got %q", day.Condition.Icon)
	}
	if day.MinTemperature.Value != 10 || day.MaxTemperature.Value != 20 {
		t.Errorf("unexpected min/max %v/%v", day.MinTemperature, day.MaxTemperature)
	}
	if !day.WillRain || day.RainChancePercent != 85 {
		t.Errorf("unexpected daily rain %v/%d", day.WillRain, day.RainChancePercent)
	}
	if day.Sunrise != "06:58 AM" || day.Sunset != "06:41 PM" {
		t.Errorf("unexpected astro %q/%q", day.Sunrise, day.Sunset)
	}
	if len(day.Hours) != 3 {
		t.Errorf("hour count is not enforced; expected 3, got %d", len(day.Hours))
	}
}

func TestBuildDayWeekdayUsesUTC(t *testing.T) {
	// 23:30 UTC on Sunday is already Monday in Tokyo.
	tokyo := time.FixedZone("JST", 9*3600)
	pd := payloadDay(baseDay.Add(23*time.Hour+30*time.Minute), 0)

	day := NewEngine(Celsius, WithLocation(tokyo)).BuildDay(pd)
	if day.Weekday != Sunday {
		t.Fatalf("expected SUNDAY, got %s", day.Weekday)
	}
}

func TestBuildHour(t *testing.T) {
	ts := baseDay.Add(20 * time.Hour)
	ph := payloadHour(ts, 15)
	ph.WillItRain = 1
	ph.ChanceOfRain = 80

	h := testEngine(Fahrenheit).BuildHour(ph)
	if !h.Timestamp.Equal(ts) {
		t.Errorf("timestamp %s, want %s", h.Timestamp, ts)
	}
	if h.Condition.Icon != "clear_night" {
		t.Errorf("expected night icon, got %q", h.Condition.Icon)
	}
	if h.Temperature.Unit != Fahrenheit || math.Abs(h.Temperature.Value-59) > 1e-9 {
		t.Errorf("unexpected temperature %+v", h.Temperature)
	}
	if !h.WillRain || h.RainChancePercent != 80 {
		t.Errorf("unexpected rain fields %v/%d", h.WillRain, h.RainChancePercent)
	}
	if got := h.Label(time.UTC); got != "20:00" {
		t.Errorf("Label = %q", got)
	}
}
