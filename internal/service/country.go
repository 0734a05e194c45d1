// Package service orchestrates a country request: cache lookup,
// aggregated fetch, cache write-back, and the placeholder records the
// boundary returns on error paths.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/bilgisen/geopulse/internal/cache"
	"github.com/bilgisen/geopulse/internal/fetch"
	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/models"
)

// searchableCountries is the fixed suggestion list behind
// /countries/search. It is a name picker, not a search index.
var searchableCountries = []string{
	"Germany", "Japan", "Brazil", "Norway", "United States",
	"United Kingdom", "France", "China", "India", "Australia",
	"Canada", "Mexico", "Argentina", "South Korea", "Italy",
	"Spain", "Netherlands", "Sweden", "Denmark", "Switzerland",
}

const maxSearchResults = 10

// Aggregator is the fan-out fetcher the service depends on.
type Aggregator interface {
	FetchAll(ctx context.Context, countryName string) (models.CountryRecord, error)
	RefreshLive(ctx context.Context, record *models.CountryRecord)
}

// CountryService answers "tell me about country X" by merging cached
// facts with live weather and news, fetching fresh facts when the
// cache cannot help.
type CountryService struct {
	store      cache.Store
	aggregator Aggregator
	freshness  time.Duration
}

func NewCountryService(store cache.Store, aggregator Aggregator, freshness time.Duration) *CountryService {
	return &CountryService{
		store:      store,
		aggregator: aggregator,
		freshness:  freshness,
	}
}

// GetCountry returns the aggregated record for a validated country
// name. Cache failures degrade to a miss on read and a no-op on
// write; only facts-source errors surface to the caller.
func (s *CountryService) GetCountry(ctx context.Context, countryName string) (models.CountryRecord, error) {
	log := logger.Get()

	cached, err := s.store.Lookup(ctx, countryName)
	if err != nil {
		log.Error().
			Err(err).
			Str("country", countryName).
			Msg("Cache lookup failed, treating as miss")
		cached = nil
	}

	if cached != nil && cached.FreshWithin(s.freshness, time.Now()) {
		log.Debug().
			Str("country", countryName).
			Time("cached_at", cached.CachedAt).
			Msg("Cache hit, refreshing live data only")

		record := *cached
		s.aggregator.RefreshLive(ctx, &record)
		return record, nil
	}

	record, err := s.aggregator.FetchAll(ctx, countryName)
	if err != nil {
		return models.CountryRecord{}, err
	}

	// Best-effort write-back: concurrent requests may race here, but
	// entries are immutable value snapshots so last writer wins.
	if err := s.store.Store(ctx, record); err != nil {
		log.Error().
			Err(err).
			Str("country", record.CountryName).
			Msg("Cache store failed, skipping write")
	}

	return record, nil
}

// Search returns up to 10 case-insensitive substring matches from the
// static country list.
func (s *CountryService) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	matches := []string{}
	for _, country := range searchableCountries {
		if strings.Contains(strings.ToLower(country), query) {
			matches = append(matches, country)
			if len(matches) >= maxSearchResults {
				break
			}
		}
	}
	return matches
}

// ErrorRecord builds the record-shaped payload returned on every error
// path, so callers always have a renderable object.
func ErrorRecord(countryName, message string) models.CountryRecord {
	return models.CountryRecord{
		CountryName:           countryName,
		Capital:               "N/A",
		Population:            0,
		Region:                message,
		Subregion:             "Please try a different search",
		Area:                  0,
		Currency:              "N/A",
		Language:              "N/A",
		FlagEmoji:             fetch.PlaceholderFlag,
		GdpPerCapita:          0,
		GeopoliticalRiskIndex: 0,
		News:                  []models.NewsArticle{},
		CachedAt:              time.Now(),
		Error:                 message,
	}
}
