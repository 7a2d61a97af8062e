package weather

import "sort"

// BuildHour maps a provider hour record.
func (e *Engine) BuildHour(ph PayloadHour) *Hour {
	return &Hour{
		Timestamp:         fromEpoch(ph.TimeEpoch),
		Condition:         Classify(ph.Condition.Code, ph.IsDay == 1),
		Temperature:       NewTemperature(ph.TempC, e.unit),
		WillRain:          ph.WillItRain == 1,
		RainChancePercent: ph.ChanceOfRain,
	}
}

// BuildDay maps a provider day record. The day condition is always
// classified as daytime, and hours are stably sorted by local hour of day.
// The number of hours is not enforced.
func (e *Engine) BuildDay(pd PayloadDay) *Day {
	ts := fromEpoch(pd.DateEpoch)

	hours := make([]*Hour, 0, len(pd.Hour))
	for _, ph := range pd.Hour {
		hours = append(hours, e.BuildHour(ph))
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return e.hourOf(hours[i].Timestamp) < e.hourOf(hours[j].Timestamp)
	})

	return &Day{
		Timestamp:      ts,
		Weekday:        weekdayOf(ts),
		Condition:      Classify(pd.Day.Condition.Code, true),
		MinTemperature: NewTemperature(pd.Day.MinTempC, e.unit),
		MaxTemperature: NewTemperature(pd.Day.MaxTempC, e.unit),

		WillRain:          pd.Day.DailyWillItRain == 1,
		RainChancePercent: pd.Day.DailyChanceOfRain,
		Sunrise:           pd.Astro.Sunrise,
		Sunset:            pd.Astro.Sunset,
		Hours:             hours,
	}
}
