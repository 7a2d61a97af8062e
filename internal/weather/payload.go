package weather

// Payload is the raw WeatherAPI.com forecast.json response, limited to the
// fields the engine reads. Temperatures are always Celsius; epochs are seconds.
type Payload struct {
	Location PayloadLocation `json:"location"`
	Current  PayloadCurrent  `json:"current"`
	Forecast struct {
		ForecastDay []PayloadDay `json:"forecastday"`
	} `json:"forecast"`
}

type PayloadLocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
}

type PayloadCondition struct {
	Code int `json:"code"`
}

type PayloadCurrent struct {
	LastUpdatedEpoch int64            `json:"last_updated_epoch"`
	TempC            float64          `json:"temp_c"`
	FeelsLikeC       float64          `json:"feelslike_c"`
	IsDay            int              `json:"is_day"`
	Condition        PayloadCondition `json:"condition"`
	Humidity         int              `json:"humidity"`
}

type PayloadDay struct {
	DateEpoch int64 `json:"date_epoch"`
	Day       struct {
		MaxTempC          float64          `json:"maxtemp_c"`
		MinTempC          float64          `json:"mintemp_c"`
		DailyWillItRain   int              `json:"daily_will_it_rain"`
		DailyChanceOfRain int              `json:"daily_chance_of_rain"`
		Condition         PayloadCondition `json:"condition"`
	} `json:"day"`
	Astro struct {
		Sunrise string `json:"sunrise"`
		Sunset  string `json:"sunset"`
	} `json:"astro"`
	Hour []PayloadHour `json:"hour"`
}

type PayloadHour struct {
	TimeEpoch    int64            `json:"time_epoch"`
	TempC        float64          `json:"temp_c"`
	IsDay        int              `json:"is_day"`
	WillItRain   int              `json:"will_it_rain"`
	ChanceOfRain int              `json:"chance_of_rain"`
	Condition    PayloadCondition `json:"condition"`
}
