package weather

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is the day of week of a forecast day, always computed in UTC.
type Weekday string

const (
	Sunday    Weekday = "SUNDAY"
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

var weekdays = [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// weekdayOf interprets t in UTC regardless of the host zone.
func weekdayOf(t time.Time) Weekday {
	return weekdays[t.UTC().Weekday()]
}

// Hour is one hourly slot of a forecast day.
type Hour struct {
	Timestamp         time.Time    `json:"timestamp"`
	Condition         Condition    `json:"condition"`
	Temperature       *Temperature `json:"temperature"`
	WillRain          bool         `json:"willRain"`
	RainChancePercent int          `json:"rainChancePercent"`
}

// Label formats the hour as "HH:00" in loc.
func (h *Hour) Label(loc *time.Location) string {
	return h.Timestamp.In(loc).Format("15:00")
}

// Day is the summary of one forecast day plus its hourly breakdown.
// Hours are sorted ascending by local hour of day.
type Day struct {
	Timestamp      time.Time    `json:"timestamp"`
	Weekday        Weekday      `json:"weekday"`
	Condition      Condition    `json:"condition"`
	MinTemperature *Temperature `json:"minTemperature"`
	MaxTemperature *Temperature `json:"maxTemperature"`
	// WillRain and RainChancePercent summarize the whole day.
	WillRain          bool    `json:"willRain"`
	RainChancePercent int     `json:"rainChancePercent"`
	Sunrise           string  `json:"sunrise,omitempty"`
	Sunset            string  `json:"sunset,omitempty"`
	Hours             []*Hour `json:"hours"`
}

// DateLabel formats the day as "MM/dd" in UTC.
func (d *Day) DateLabel() string {
	return d.Timestamp.UTC().Format("01/02")
}

// CurrentState is the latest observation reported by the provider.
type CurrentState struct {
	Timestamp       time.Time    `json:"timestamp"`
	Temperature     *Temperature `json:"temperature"`
	FeelsLike       *Temperature `json:"feelsLike"`
	Condition       Condition    `json:"condition"`
	HumidityPercent int          `json:"humidityPercent"`
}

// Forecast is the canonical forecast tree built from one provider payload.
//
// Today and Next24Hours are derived views: Today is Days[0] and every entry
// of Next24Hours is the same *Hour stored in Days. Mutations through one path
// are therefore visible through the others.
type Forecast struct {
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country"`
	// Coordinates are the resolved location reported by the provider.
	Coordinates Location `json:"coordinates"`
	// TimeZone is the IANA zone of the location, e.g. "Europe/Lisbon".
	TimeZone string `json:"timeZone,omitempty"`
	// LocalTime is the provider's clock for the location at fetch time.
	LocalTime   time.Time     `json:"localTime"`
	Current     *CurrentState `json:"current"`
	Days        []*Day        `json:"days"`
	Today       *Day          `json:"today"`
	Next24Hours []*Hour       `json:"next24Hours"`
}

// Relink restores the derived views after the tree was rebuilt from bytes,
// where every path decodes into its own copy.
func (f *Forecast) Relink() {
	if len(f.Days) == 0 {
		return
	}
	f.Today = f.Days[0]

	byTime := make(map[int64]*Hour)
	for _, d := range f.Days {
		if d == nil {
			continue
		}
		for _, h := range d.Hours {
			if h != nil {
				byTime[h.Timestamp.Unix()] = h
			}
		}
	}
	for i, h := range f.Next24Hours {
		if h == nil {
			continue
		}
		if shared, ok := byTime[h.Timestamp.Unix()]; ok {
			f.Next24Hours[i] = shared
		}
	}
}

// Clone returns a deep copy of f. Values shared between paths in f are
// shared the same way in the copy.
func (f *Forecast) Clone() *Forecast {
	if f == nil {
		return nil
	}

	temps := make(map[*Temperature]*Temperature)
	cloneTemp := func(t *Temperature) *Temperature {
		if t == nil {
			return nil
		}
		if cp, ok := temps[t]; ok {
			return cp
		}
		cp := *t
		temps[t] = &cp
		return &cp
	}
	hours := make(map[*Hour]*Hour)
	cloneHour := func(h *Hour) *Hour {
		if h == nil {
			return nil
		}
		if cp, ok := hours[h]; ok {
			return cp
		}
		cp := *h
		cp.Temperature = cloneTemp(h.Temperature)
		hours[h] = &cp
		return &cp
	}
	days := make(map[*Day]*Day)
	cloneDay := func(d *Day) *Day {
		if d == nil {
			return nil
		}
		if cp, ok := days[d]; ok {
			return cp
		}
		cp := *d
		cp.MinTemperature = cloneTemp(d.MinTemperature)
		cp.MaxTemperature = cloneTemp(d.MaxTemperature)
		cp.Hours = make([]*Hour, len(d.Hours))
		for i, h := range d.Hours {
			cp.Hours[i] = cloneHour(h)
		}
		days[d] = &cp
		return &cp
	}

	c := &Forecast{City: f.City, Country: f.Country}
	if f.Current != nil {
		cur := *f.Current
		cur.Temperature = cloneTemp(f.Current.Temperature)
		cur.FeelsLike = cloneTemp(f.Current.FeelsLike)
		c.Current = &cur
	}
	c.Days = make([]*Day, len(f.Days))
	for i, d := range f.Days {
		c.Days[i] = cloneDay(d)
	}
	c.Today = cloneDay(f.Today)
	c.Next24Hours = make([]*Hour, len(f.Next24Hours))
	for i, h := range f.Next24Hours {
		c.Next24Hours[i] = cloneHour(h)
	}
	return c
}

// Temperatures returns every temperature reachable from the tree, each
// distinct instance exactly once, in a stable traversal order.
func (f *Forecast) Temperatures() []*Temperature {
	seen := make(map[*Temperature]struct{})
	var out []*Temperature
	visit := func(t *Temperature) {
		if t == nil {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	visitDay := func(d *Day) {
		if d == nil {
			return
		}
		visit(d.MinTemperature)
		visit(d.MaxTemperature)
		for _, h := range d.Hours {
			if h != nil {
				visit(h.Temperature)
			}
		}
	}

	if f.Current != nil {
		visit(f.Current.Temperature)
		visit(f.Current.FeelsLike)
	}
	visitDay(f.Today)
	for _, d := range f.Days {
		visitDay(d)
	}
	for _, h := range f.Next24Hours {
		if h != nil {
			visit(h.Temperature)
		}
	}
	return out
}

// Theme is the stored UI theme preference.
type Theme string

const (
	ThemeLight Theme = "LIGHT"
	ThemeDark  Theme = "DARK"
)

// ParseTheme accepts LIGHT or DARK, case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToUpper(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Location is a coordinate pair used to query the provider.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// String renders the location the way the provider expects it in "q".
func (l Location) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lon, 'f', -1, 64)
}

// IsZero reports whether the location is the unset sentinel 0,0.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lon == 0
}

// ParseLocation parses "lat,lon".
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, s)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Location{}, fmt.Errorf("%w: %q out of range", ErrInvalidLocation, s)
	}
	return Location{Lat: lat, Lon: lon}, nil
}
