package weather

import (
	"fmt"
	"time"
)

// SelectNext24Hours returns the rolling window anchored at the hour of now:
// today's hours at or after that hour, then tomorrow's hours before it.
//
// The returned entries are the same *Hour values held by days. The result
// has 24 entries only when both days carry exactly one hour per hour of day;
// callers must not assume the length.
func (e *Engine) SelectNext24Hours(now time.Time, days []*Day) ([]*Hour, error) {
	if len(days) < 2 {
		return nil, fmt.Errorf("%w: need 2 days, got %d", ErrInsufficientForecastData, len(days))
	}

	current := e.hourOf(now)
	today, tomorrow := days[0], days[1]

	hours := make([]*Hour, 0, 24)
	for _, h := range today.Hours {
		if e.hourOf(h.Timestamp) >= current {
			hours = append(hours, h)
		}
	}
	for _, h := range tomorrow.Hours {
		if e.hourOf(h.Timestamp) < current {
			hours = append(hours, h)
		}
	}
	return hours, nil
}
