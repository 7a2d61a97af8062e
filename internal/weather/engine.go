package weather

import "time"

// Engine turns provider payloads into canonical forecast trees and converts
// built trees between temperature units.
//
// An Engine is not safe for concurrent use; Service serializes access.
type Engine struct {
	unit Unit
	loc  *time.Location
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithLocation sets the zone used to extract the hour of day. Defaults to time.Local.
func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewEngine creates an Engine producing temperatures in unit.
func NewEngine(unit Unit, opts ...EngineOption) *Engine {
	if unit == "" {
		unit = Celsius
	}
	e := &Engine{unit: unit, loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Unit returns the unit new temperatures are built in.
func (e *Engine) Unit() Unit {
	return e.unit
}

// UseUnit changes the unit for subsequent Assemble calls without touching
// any existing tree.
func (e *Engine) UseUnit(unit Unit) {
	e.unit = unit
}

// TimeZone returns the zone used for hour-of-day extraction.
func (e *Engine) TimeZone() *time.Location {
	return e.loc
}

// hourOf returns the local hour of day (0-23) of t.
func (e *Engine) hourOf(t time.Time) int {
	return t.In(e.loc).Hour()
}

// fromEpoch converts provider epoch seconds. Instants are kept in UTC;
// zone-dependent fields are derived through the engine location.
func fromEpoch(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
