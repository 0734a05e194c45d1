package models

// WeatherSnapshot is the live weather for a city. Every field except
// the city label is optional; nil means the upstream (or the synthetic
// generator) did not supply it.
type WeatherSnapshot struct {
	City          string   `json:"city"`
	Temperature   *float64 `json:"temperature,omitempty"`
	FeelsLike     *float64 `json:"feelsLike,omitempty"`
	MainCondition string   `json:"mainCondition,omitempty"`
	Description   string   `json:"description,omitempty"`
	Humidity      *int     `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"windSpeed,omitempty"`
	Pressure      *int     `json:"pressure,omitempty"`
	Visibility    *int     `json:"visibility,omitempty"`
}
