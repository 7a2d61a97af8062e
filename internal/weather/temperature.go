package weather

import (
	"fmt"
	"strings"
)

// Unit is a temperature unit.
type Unit string

const (
	Celsius    Unit = "CELSIUS"
	Fahrenheit Unit = "FAHRENHEIT"
)

// ParseUnit accepts CELSIUS/FAHRENHEIT or the short forms C/F, case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CELSIUS", "C":
		return Celsius, nil
	case "FAHRENHEIT", "F":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Symbol returns "C" or "F".
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "F"
	}
	return "C"
}

// CelsiusToFahrenheit converts c to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*1.8 + 32
}

// FahrenheitToCelsius converts f to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) / 1.8
}

// Temperature is a magnitude tagged with the unit it is expressed in.
// Unit always describes Value; Use replaces both together.
//
// Conversions are lossy: a Celsius -> Fahrenheit -> Celsius round trip is
// the identity only up to floating-point rounding.
type Temperature struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// NewTemperature builds a temperature from a provider Celsius reading,
// expressed in unit.
func NewTemperature(celsius float64, unit Unit) *Temperature {
	t := &Temperature{Value: celsius, Unit: Celsius}
	t.Use(unit)
	return t
}

// In returns t expressed in unit. It returns t unchanged when the unit
// already matches.
func (t Temperature) In(unit Unit) Temperature {
	if t.Unit == unit {
		return t
	}
	switch unit {
	case Fahrenheit:
		return Temperature{Value: CelsiusToFahrenheit(t.Value), Unit: Fahrenheit}
	case Celsius:
		return Temperature{Value: FahrenheitToCelsius(t.Value), Unit: Celsius}
	}
	return t
}

// Use converts t to unit in place. Calling it twice with the same unit is a no-op.
func (t *Temperature) Use(unit Unit) {
	*t = t.In(unit)
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°%s", t.Value, t.Unit.Symbol())
}
