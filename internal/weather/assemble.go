package weather

// Assemble builds the full forecast tree from a provider payload.
// It fails with ErrInsufficientForecastData when fewer than two days are present.
func (e *Engine) Assemble(p Payload) (*Forecast, error) {
	days := make([]*Day, 0, len(p.Forecast.ForecastDay))
	for _, pd := range p.Forecast.ForecastDay {
		days = append(days, e.BuildDay(pd))
	}

	current := &CurrentState{
		Timestamp:       fromEpoch(p.Current.LastUpdatedEpoch),
		Temperature:     NewTemperature(p.Current.TempC, e.unit),
		FeelsLike:       NewTemperature(p.Current.FeelsLikeC, e.unit),
		Condition:       Classify(p.Current.Condition.Code, p.Current.IsDay == 1),
		HumidityPercent: p.Current.Humidity,
	}

	next24, err := e.SelectNext24Hours(current.Timestamp, days)
	if err != nil {
		return nil, err
	}

	return &Forecast{
		City:        p.Location.Name,
		Region:      p.Location.Region,
		Country:     p.Location.Country,
		Coordinates: Location{Lat: p.Location.Lat, Lon: p.Location.Lon},
		TimeZone:    p.Location.TzID,
		LocalTime:   fromEpoch(p.Location.LocaltimeEpoch),
		Current:     current,
		Days:        days,
		Today:       days[0],
		Next24Hours: next24,
	}, nil
}

// ApplyUnit converts every temperature of f to unit in place and makes unit
// the engine's unit for later Assemble calls. Each distinct temperature is
// converted once no matter how many paths reach it, so repeated calls are
// idempotent. It returns the number of values that changed unit.
func (e *Engine) ApplyUnit(f *Forecast, unit Unit) int {
	e.unit = unit
	if f == nil {
		return 0
	}

	converted := 0
	for _, t := range f.Temperatures() {
		if t.Unit != unit {
			t.Use(unit)
			converted++
		}
	}
	return converted
}
