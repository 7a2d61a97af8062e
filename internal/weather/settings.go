package weather

import (
	"context"
	"fmt"
)

// Preference keys.
const (
	PrefTemperatureUnit = "TEMPERATURE_UNIT"
	PrefTheme           = "APP_THEME"
	PrefLastLocation    = "LAST_LOCATION"
)

// Settings is the typed view over Preferences.
type Settings struct {
	Unit     Unit      `json:"temperatureUnit"`
	Theme    Theme     `json:"theme"`
	Location *Location `json:"location,omitempty"`
}

// DefaultSettings is used for every key that was never written.
func DefaultSettings() Settings {
	return Settings{Unit: Celsius, Theme: ThemeLight}
}

// LoadSettings reads all settings, falling back to defaults for missing keys.
func LoadSettings(ctx context.Context, p Preferences) (Settings, error) {
	s := DefaultSettings()

	if v, ok, err := p.Get(ctx, PrefTemperatureUnit); err != nil {
		return s, fmt.Errorf("reading %s: %w", PrefTemperatureUnit, err)
	} else if ok {
		u, err := ParseUnit(v)
		if err != nil {
			return s, err
		}
		s.Unit = u
	}

	if v, ok, err := p.Get(ctx, PrefTheme); err != nil {
		return s, fmt.Errorf("reading %s: %w", PrefTheme, err)
	} else if ok {
		th, err := ParseTheme(v)
		if err != nil {
			return s, err
		}
		s.Theme = th
	}

	if v, ok, err := p.Get(ctx, PrefLastLocation); err != nil {
		return s, fmt.Errorf("reading %s: %w", PrefLastLocation, err)
	} else if ok {
		loc, err := ParseLocation(v)
		if err != nil {
			return s, err
		}
		// 0,0 is the unset marker, not a real place.
		if !loc.IsZero() {
			s.Location = &loc
		}
	}

	return s, nil
}

// SaveUnit stores the temperature unit preference.
func SaveUnit(ctx context.Context, p Preferences, u Unit) error {
	return p.Put(ctx, PrefTemperatureUnit, string(u))
}

// SaveTheme stores the theme preference.
func SaveTheme(ctx context.Context, p Preferences, t Theme) error {
	return p.Put(ctx, PrefTheme, string(t))
}

// SaveLocation stores the last known location.
func SaveLocation(ctx context.Context, p Preferences, loc Location) error {
	return p.Put(ctx, PrefLastLocation, loc.String())
}

// SeedSettings writes unit and loc only for keys that were never written
// (a location of 0,0 counts as unset), so stored user choices always win
// over configured defaults.
func SeedSettings(ctx context.Context, p Preferences, unit Unit, loc *Location) error {
	if _, ok, err := p.Get(ctx, PrefTemperatureUnit); err != nil {
		return fmt.Errorf("reading %s: %w", PrefTemperatureUnit, err)
	} else if !ok && unit != "" {
		if err := SaveUnit(ctx, p, unit); err != nil {
			return err
		}
	}

	if loc == nil {
		return nil
	}
	v, ok, err := p.Get(ctx, PrefLastLocation)
	if err != nil {
		return fmt.Errorf("reading %s: %w", PrefLastLocation, err)
	}
	if ok {
		stored, err := ParseLocation(v)
		if err != nil || !stored.IsZero() {
			return nil
		}
	}
	return SaveLocation(ctx, p, *loc)
}
