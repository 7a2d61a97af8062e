package weather

// ConditionKey identifies a weather category independent of day or night.
type ConditionKey string

const (
	ConditionClear        ConditionKey = "clear"
	ConditionPartlyCloudy ConditionKey = "partly_cloudy"
	ConditionCloudy       ConditionKey = "cloudy"
	ConditionOvercast     ConditionKey = "overcast"
	ConditionMist         ConditionKey = "mist"
	ConditionSnow         ConditionKey = "snow"
	ConditionRain         ConditionKey = "rain"
	ConditionShowerRain   ConditionKey = "shower_rain"
	ConditionThunderstorm ConditionKey = "thunderstorm"
)

// UnknownConditionText is the description used for codes without one.
const UnknownConditionText = "Unknown"

// Condition is the canonical descriptor of a provider condition code.
// Icon is "<key>_day" or "<key>_night", or empty when the code is not mapped.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// conditionTable is evaluated in order; the first group containing the code wins.
var conditionTable = []struct {
	codes []int
	key   ConditionKey
}{
	{[]int{1000}, ConditionClear},
	{[]int{1003}, ConditionPartlyCloudy},
	{[]int{1006}, ConditionCloudy},
	{[]int{1009}, ConditionOvercast},
	{[]int{1030, 1135, 1147}, ConditionMist},
	{[]int{1066, 1069, 1072, 1114, 1117, 1213, 1219, 1222, 1225, 1237, 1278}, ConditionSnow},
	{[]int{1063, 1186, 1189, 1195, 1198, 1201, 1204, 1207, 1243, 1246, 1255}, ConditionRain},
	{[]int{1150, 1153, 1168, 1180, 1183, 1240, 1249, 1252, 1258, 1261, 1264}, ConditionShowerRain},
	{[]int{1087, 1273, 1276, 1279, 1282}, ConditionThunderstorm},
}

// conditionText holds the WeatherAPI.com daytime description of every code.
var conditionText = map[int]string{
	1000: "Sunny",
	1003: "Partly cloudy",
	1006: "Cloudy",
	1009: "Overcast",
	1030: "Mist",
	1063: "Patchy rain possible",
	1066: "Patchy snow possible",
	1069: "Patchy sleet possible",
	1072: "Patchy freezing drizzle possible",
	1087: "Thundery outbreaks possible",
	1114: "Blowing snow",
	1117: "Blizzard",
	1135: "Fog",
	1147: "Freezing fog",
	1150: "Patchy light drizzle",
	1153: "Light drizzle",
	1168: "Freezing drizzle",
	1171: "Heavy freezing drizzle",
	1180: "Patchy light rain",
	1183: "Light rain",
	1186: "Moderate rain at times",
	1189: "Moderate rain",
	1192: "Heavy rain at times",
	1195: "Heavy rain",
	1198: "Light freezing rain",
	1201: "Moderate or heavy freezing rain",
	1204: "Light sleet",
	1207: "Moderate or heavy sleet",
	1210: "Patchy light snow",
	1213: "Light snow",
	1216: "Patchy moderate snow",
	1219: "Moderate snow",
	1222: "Patchy heavy snow",
	1225: "Heavy snow",
	1237: "Ice pellets",
	1240: "Light rain shower",
	1243: "Moderate or heavy rain shower",
	1246: "Torrential rain shower",
	1249: "Light sleet showers",
	1252: "Moderate or heavy sleet showers",
	1255: "Light snow showers",
	1258: "Moderate or heavy snow showers",
	1261: "Light showers of ice pellets",
	1264: "Moderate or heavy showers of ice pellets",
	1273: "Patchy light rain with thunder",
	1276: "Moderate or heavy rain with thunder",
	1279: "Patchy light snow with thunder",
	1282: "Moderate or heavy snow with thunder",
}

// LookupConditionKey returns the canonical key of code.
func LookupConditionKey(code int) (ConditionKey, bool) {
	for _, group := range conditionTable {
		for _, c := range group.codes {
			if c == code {
				return group.key, true
			}
		}
	}
	return "", false
}

// IconKey builds the asset key for a condition at the given time of day.
func IconKey(key ConditionKey, isDay bool) string {
	if isDay {
		return string(key) + "_day"
	}
	return string(key) + "_night"
}

// Classify maps a provider condition code to its descriptor. Unmapped codes
// degrade to an empty icon and, if no description exists either, "Unknown".
func Classify(code int, isDay bool) Condition {
	text, ok := conditionText[code]
	if !ok {
		text = UnknownConditionText
	}

	var icon string
	if key, ok := LookupConditionKey(code); ok {
		icon = IconKey(key, isDay)
	}

	return Condition{Text: text, Icon: icon}
}
