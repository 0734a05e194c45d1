package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCountryRecordJSONShape(t *testing.T) {
	temp := 4.5
	record := CountryRecord{
		CountryName:           "Norway",
		Capital:               "Oslo",
		Population:            5379475,
		Region:                "Europe",
		Subregion:             "Northern Europe",
		Area:                  323802,
		Currency:              "Norwegian krone",
		Language:              "Norwegian Nynorsk",
		FlagEmoji:             "🇳🇴",
		GdpPerCapita:          80500,
		GeopoliticalRiskIndex: 0.3,
		Weather:               &WeatherSnapshot{City: "Oslo", Temperature: &temp},
		News:                  []NewsArticle{{Title: "headline", URL: "https://example.org/1", Source: "BBC News"}},
		CachedAt:              time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal CountryRecord: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if result["countryName"] != "Norway" {
		t.Errorf("Expected countryName field to be 'Norway', got %v", result["countryName"])
	}
	if result["gdpPerCapita"] != float64(80500) {
		t.Errorf("Expected gdpPerCapita field to be 80500, got %v", result["gdpPerCapita"])
	}
	if _, ok := result["weather"]; !ok {
		t.Error("Expected weather field to be present")
	}
	if _, ok := result["error"]; ok {
		t.Error("Expected error field to be omitted when empty")
	}
}

func TestFactsOnlyStripsLivePortion(t *testing.T) {
	temp := 4.5
	record := CountryRecord{
		CountryName: "Norway",
		Capital:     "Oslo",
		Weather:     &WeatherSnapshot{City: "Oslo", Temperature: &temp},
		News:        []NewsArticle{{Title: "headline"}},
		Error:       "stale message",
		CachedAt:    time.Now(),
	}

	facts := record.FactsOnly()

	if facts.Weather != nil {
		t.Error("Expected weather to be stripped")
	}
	if facts.News != nil {
		t.Error("Expected news to be stripped")
	}
	if facts.Error != "" {
		t.Error("Expected error text to be stripped")
	}
	if facts.Capital != "Oslo" {
		t.Errorf("Expected facts fields to survive, got capital %q", facts.Capital)
	}

	// The original record is untouched.
	if record.Weather == nil || record.News == nil {
		t.Error("FactsOnly must not mutate the receiver")
	}
}
