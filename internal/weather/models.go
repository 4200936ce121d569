package weather

// Conditions is one observation or forecast point as returned by the
// provider: the current conditions block, a day aggregate, or an hour.
// Field names mirror the provider so proxied payloads keep their shape.
type Conditions struct {
	Datetime       string   `json:"datetime"`
	DatetimeEpoch  int64    `json:"datetimeEpoch"`
	Temp           float64  `json:"temp"`
	FeelsLike      float64  `json:"feelslike"`
	Humidity       float64  `json:"humidity"`
	Dew            float64  `json:"dew"`
	Precip         float64  `json:"precip"`
	PrecipProb     float64  `json:"precipprob"`
	PrecipType     []string `json:"preciptype,omitempty"`
	Snow           float64  `json:"snow"`
	SnowDepth      float64  `json:"snowdepth"`
	WindGust       float64  `json:"windgust"`
	WindSpeed      float64  `json:"windspeed"`
	WindDir        float64  `json:"winddir"`
	Pressure       float64  `json:"pressure"`
	Visibility     float64  `json:"visibility"`
	CloudCover     float64  `json:"cloudcover"`
	SolarRadiation float64  `json:"solarradiation"`
	SolarEnergy    float64  `json:"solarenergy"`
	UVIndex        float64  `json:"uvindex"`
	SevereRisk     float64  `json:"severerisk"`
	Conditions     string   `json:"conditions"`
	Icon           string   `json:"icon"`
	Source         string   `json:"source,omitempty"`
	Sunrise        string   `json:"sunrise,omitempty"`
	Sunset         string   `json:"sunset,omitempty"`
	MoonPhase      *float64 `json:"moonphase,omitempty"`
}

// Day is the per-day aggregate. Hours is nil unless the hourly section was
// requested and returned.
type Day struct {
	Conditions
	TempMax      float64      `json:"tempmax"`
	TempMin      float64      `json:"tempmin"`
	FeelsLikeMax float64      `json:"feelslikemax"`
	FeelsLikeMin float64      `json:"feelslikemin"`
	PrecipCover  float64      `json:"precipcover"`
	Description  string       `json:"description,omitempty"`
	Hours        []Conditions `json:"hours,omitempty"`
}

// Alert is a severe weather alert issued for the queried location.
type Alert struct {
	Event       string `json:"event"`
	Headline    string `json:"headline,omitempty"`
	Description string `json:"description"`
	Onset       string `json:"onset,omitempty"`
	Ends        string `json:"ends,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Snapshot is the normalized result of one provider call. Sections that were
// not requested, or that the provider did not return, are nil.
type Snapshot struct {
	// Query is the LocationQuery text this snapshot was fetched for.
	Query string `json:"query"`

	ResolvedAddress string  `json:"resolvedAddress"`
	Address         string  `json:"address,omitempty"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Timezone        string  `json:"timezone"`
	TzOffset        float64 `json:"tzoffset"`

	CurrentConditions *Conditions `json:"currentConditions,omitempty"`
	Days              []Day       `json:"days,omitempty"`
	Alerts            []Alert     `json:"alerts,omitempty"`
}

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	if s.CurrentConditions != nil {
		cc := s.CurrentConditions.clone()
		out.CurrentConditions = &cc
	}
	if s.Days != nil {
		out.Days = make([]Day, len(s.Days))
		for i, d := range s.Days {
			d.Conditions = d.Conditions.clone()
			if d.Hours != nil {
				hours := make([]Conditions, len(d.Hours))
				for j, h := range d.Hours {
					hours[j] = h.clone()
				}
				d.Hours = hours
			}
			out.Days[i] = d
		}
	}
	if s.Alerts != nil {
		out.Alerts = append([]Alert(nil), s.Alerts...)
	}
	return &out
}

func (c Conditions) clone() Conditions {
	if c.PrecipType != nil {
		c.PrecipType = append([]string(nil), c.PrecipType...)
	}
	if c.MoonPhase != nil {
		mp := *c.MoonPhase
		c.MoonPhase = &mp
	}
	return c
}

// CurrentSummary is the compact current-conditions view used when many
// locations are listed side by side.
type CurrentSummary struct {
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feelsLike"`
	Humidity      float64 `json:"humidity"`
	Conditions    string  `json:"conditions"`
	Icon          string  `json:"icon"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"`
	Pressure      float64 `json:"pressure"`
	Visibility    float64 `json:"visibility"`
	UVIndex       float64 `json:"uvIndex"`
}

// Summarize condenses c into a CurrentSummary.
func Summarize(c Conditions) CurrentSummary {
	return CurrentSummary{
		Temperature:   c.Temp,
		FeelsLike:     c.FeelsLike,
		Humidity:      c.Humidity,
		Conditions:    c.Conditions,
		Icon:          c.Icon,
		WindSpeed:     c.WindSpeed,
		WindDirection: c.WindDir,
		Pressure:      c.Pressure,
		Visibility:    c.Visibility,
		UVIndex:       c.UVIndex,
	}
}
