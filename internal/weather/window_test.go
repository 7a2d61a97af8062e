package weather

import (
	"errors"
	"testing"
	"time"
)

func buildDays(t *testing.T, e *Engine, n int) []*Day {
	t.Helper()
	var days []*Day
	for d := 0; d < n; d++ {
		days = append(days, e.BuildDay(payloadDay(baseDay.AddDate(0, 0, d), 24)))
	}
	return days
}

func TestSelectNext24Hours(t *testing.T) {
	e := testEngine(Celsius)
	days := buildDays(t, e, 2)

	for _, now := range []int{0, 1, 14, 23} {
		hours, err := e.SelectNext24Hours(baseDay.Add(time.Duration(now)*time.Hour+17*time.Minute), days)
		if err != nil {
			t.Fatalf("now=%d: %v", now, err)
		}
		if len(hours) != 24 {
			t.Fatalf("now=%d: expected 24 hours, got %d", now, len(hours))
		}
		for i, h := range hours {
			want := (now + i) % 24
			if h.Timestamp.Hour() != want {
				t.Fatalf("now=%d: entry %d is hour %d, want %d", now, i, h.Timestamp.Hour(), want)
			}
			wantDay := days[0]
			if now+i >= 24 {
				wantDay = days[1]
			}
			if h != wantDay.Hours[want] {
				t.Fatalf("now=%d: entry %d is not shared with its day", now, i)
			}
		}
	}
}

func TestSelectNext24HoursMidnight(t *testing.T) {
	e := testEngine(Celsius)
	days := buildDays(t, e, 3)

	hours, err := e.SelectNext24Hours(baseDay, days)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range hours {
		if h.Timestamp.Day() != baseDay.Day() {
			t.Fatalf("at midnight the window must be today only, got %s", h.Timestamp)
		}
	}
}

func TestSelectNext24HoursInsufficientDays(t *testing.T) {
	e := testEngine(Celsius)
	for _, n := range []int{0, 1} {
		_, err := e.SelectNext24Hours(baseDay, buildDays(t, e, n))
		if !errors.Is(err, ErrInsufficientForecastData) {
			t.Fatalf("n=%d: expected ErrInsufficientForecastData, got %v", n, err)
		}
	}
}

func TestSelectNext24HoursSparseDays(t *testing.T) {
	e := testEngine(Celsius)
	days := []*Day{
		e.BuildDay(payloadDay(baseDay, 12)),
		e.BuildDay(payloadDay(baseDay.AddDate(0, 0, 1), 24)),
	}
	hours, err := e.SelectNext24Hours(baseDay.Add(14*time.Hour), days)
	if err != nil {
		t.Fatal(err)
	}
	// today has no hours >= 14, so only tomorrow 0..13 remain
	if len(hours) != 14 {
		t.Fatalf("expected 14 hours, got %d", len(hours))
	}
}
