package httpapi

import (
	"time"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// hourView adds the display label to an hour of the rolling window.
type hourView struct {
	Label             string            `json:"label"`
	Timestamp         time.Time         `json:"timestamp"`
	Condition         weather.Condition `json:"condition"`
	Temperature       string            `json:"temperature"`
	Value             float64           `json:"value"`
	Unit              weather.Unit      `json:"unit"`
	WillRain          bool              `json:"willRain"`
	RainChancePercent int               `json:"rainChancePercent"`
}

func newHourView(h *weather.Hour, loc *time.Location) hourView {
	v := hourView{
		Label:             h.Label(loc),
		Timestamp:         h.Timestamp,
		Condition:         h.Condition,
		WillRain:          h.WillRain,
		RainChancePercent: h.RainChancePercent,
	}
	if h.Temperature != nil {
		v.Temperature = h.Temperature.String()
		v.Value = h.Temperature.Value
		v.Unit = h.Temperature.Unit
	}
	return v
}
