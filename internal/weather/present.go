package weather

import "math"

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts a bearing in degrees to a 16-point compass label.
func WindDirection(deg float64) string {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return compassPoints[int(math.Round(d/22.5))%16]
}

// Level is a named band on a scale, such as UV exposure or air quality.
type Level struct {
	Label       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// UVLevel bands a UV index.
func UVLevel(uv float64) Level {
	switch {
	case uv <= 2:
		return Level{Label: "Low", Color: "green", Description: "Minimal protection required"}
	case uv <= 5:
		return Level{Label: "Moderate", Color: "yellow", Description: "Some protection required"}
	case uv <= 7:
		return Level{Label: "High", Color: "orange", Description: "Protection required"}
	case uv <= 10:
		return Level{Label: "Very High", Color: "red", Description: "Extra protection required"}
	default:
		return Level{Label: "Extreme", Color: "purple", Description: "Avoid sun exposure"}
	}
}

// AirQualityFromVisibility estimates air quality from visibility in km.
// It is a rough proxy used where no pollutant data is available.
func AirQualityFromVisibility(km float64) Level {
	switch {
	case km >= 10:
		return Level{Label: "Good", Color: "green", Description: "Air quality is satisfactory"}
	case km >= 5:
		return Level{Label: "Moderate", Color: "yellow", Description: "Air quality is acceptable"}
	case km >= 2:
		return Level{Label: "Unhealthy for Sensitive Groups", Color: "orange", Description: "Sensitive groups may experience health effects"}
	default:
		return Level{Label: "Unhealthy", Color: "red", Description: "Everyone may experience health effects"}
	}
}

// Derived groups the presentation values computed from current conditions.
type Derived struct {
	Compass    string `json:"compass"`
	UVLevel    Level  `json:"uvLevel"`
	AirQuality Level  `json:"airQuality"`
}

// Derive computes the presentation values for c.
func Derive(c Conditions) Derived {
	return Derived{
		Compass:    WindDirection(c.WindDir),
		UVLevel:    UVLevel(c.UVIndex),
		AirQuality: AirQualityFromVisibility(c.Visibility),
	}
}
