package models

import "time"

// CountryRecord is the aggregated result for a single country: static
// facts from the countries API, derived economic metrics, and a live
// weather/news portion that is never cached.
type CountryRecord struct {
	CountryName           string           `json:"countryName"`
	Capital               string           `json:"capital"`
	Population            int64            `json:"population"`
	Region                string           `json:"region"`
	Subregion             string           `json:"subregion"`
	Area                  float64          `json:"area"`
	Currency              string           `json:"currency"`
	Language              string           `json:"language"`
	FlagEmoji             string           `json:"flagEmoji"`
	GdpPerCapita          float64          `json:"gdpPerCapita"`
	GeopoliticalRiskIndex float64          `json:"geopoliticalRiskIndex"`
	Weather               *WeatherSnapshot `json:"weather,omitempty"`
	News                  []NewsArticle    `json:"news"`
	CachedAt              time.Time        `json:"cachedAt"`
	Error                 string           `json:"error,omitempty"`
}

// FactsOnly returns a copy of the record with the live portion
// stripped. Only this shape may be handed to the cache.
func (c CountryRecord) FactsOnly() CountryRecord {
	c.Weather = nil
	c.News = nil
	c.Error = ""
	return c
}

// FreshWithin reports whether the record was cached less than window ago.
func (c CountryRecord) FreshWithin(window time.Duration, now time.Time) bool {
	return !c.CachedAt.IsZero() && now.Sub(c.CachedAt) < window
}
