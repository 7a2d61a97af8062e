package weather

import (
	"errors"
	"math"
	"testing"
)

func TestTemperatureConversion(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{37, 98.6},
	}
	for _, tc := range tests {
		f := Temperature{Value: tc.celsius, Unit: Celsius}.In(Fahrenheit)
		if f.Unit != Fahrenheit || math.Abs(f.Value-tc.fahrenheit) > 1e-9 {
			t.Errorf("%v°C -> %+v, want %v°F", tc.celsius, f, tc.fahrenheit)
		}
		c := f.In(Celsius)
		if c.Unit != Celsius || math.Abs(c.Value-tc.celsius) > 1e-9 {
			t.Errorf("round trip of %v°C gave %+v", tc.celsius, c)
		}
	}
}

func TestTemperatureUseIsIdempotent(t *testing.T) {
	temp := NewTemperature(21.5, Celsius)
	temp.Use(Fahrenheit)
	once := *temp
	temp.Use(Fahrenheit)
	if *temp != once {
		t.Fatalf("second Use changed value: %+v -> %+v", once, *temp)
	}

	same := NewTemperature(5, Celsius)
	same.Use(Celsius)
	if same.Value != 5 || same.Unit != Celsius {
		t.Fatalf("same-unit Use changed value: %+v", same)
	}
}

func TestNewTemperatureInFahrenheit(t *testing.T) {
	temp := NewTemperature(20, Fahrenheit)
	if temp.Unit != Fahrenheit || math.Abs(temp.Value-68) > 1e-9 {
		t.Fatalf("unexpected %+v", temp)
	}
}

func TestTemperatureString(t *testing.T) {
	if got := (Temperature{Value: 21.46, Unit: Celsius}).String(); got != "21.5°C" {
		t.Errorf("got %q", got)
	}
	if got := (Temperature{Value: 70.0, Unit: Fahrenheit}).String(); got != "70.0°F" {
		t.Errorf("got %q", got)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"CELSIUS": Celsius, "c": Celsius, " fahrenheit ": Fahrenheit, "F": Fahrenheit} {
		got, err := ParseUnit(in)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseUnit("kelvin"); !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("expected ErrInvalidUnit, got %v", err)
	}
}
