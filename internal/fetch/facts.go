// Package fetch contains the upstream clients (facts, weather, news)
// and the aggregator that fans them out per request.
package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/bilgisen/geopulse/internal/apperr"
	"github.com/bilgisen/geopulse/internal/config"
	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/models"
	"github.com/bilgisen/geopulse/internal/risk"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// restCountry is the raw facts source payload for a single country.
type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Area       float64  `json:"area"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
	Flag      string            `json:"flag"`
}

// FactsClient fetches country facts from the upstream source and maps
// them into the canonical record, deriving the economic metrics from
// the risk model. It never takes gdp/risk values from upstream.
type FactsClient struct {
	client  *resty.Client
	baseURL string
	model   *risk.Model
	breaker *gobreaker.CircuitBreaker
}

func NewFactsClient(cfg *config.Config, model *risk.Model) *FactsClient {
	return &FactsClient{
		client: resty.New().
			SetTimeout(cfg.FetchTimeout).
			SetHeader("Accept", "application/json"),
		baseURL: cfg.CountriesAPIURL,
		model:   model,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "facts-source",
			MaxRequests: 3,
			Interval:    30 * time.Second,
			Timeout:     60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
			},
			// A clean 404 is a valid answer, not an upstream failure.
			IsSuccessful: func(err error) bool {
				return err == nil || apperr.Is(err, apperr.KindNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Get().Warn().
					Str("breaker", name).
					Str("from", from.String()).
					Str("to", to.String()).
					Msg("Circuit breaker state change")
			},
		}),
	}
}

// Fetch retrieves the facts record for a country. It fails with a
// NotFound or Transient error; every other outcome is a full record.
func (f *FactsClient) Fetch(ctx context.Context, countryName string) (models.CountryRecord, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, countryName)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return models.CountryRecord{}, apperr.Wrap(apperr.KindTransient, err, "facts source circuit open")
		}
		return models.CountryRecord{}, err
	}
	return result.(models.CountryRecord), nil
}

func (f *FactsClient) doFetch(ctx context.Context, countryName string) (models.CountryRecord, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.baseURL + "/" + url.PathEscape(countryName))
	if err != nil {
		return models.CountryRecord{}, apperr.Wrap(apperr.KindTransient, err, "facts source unreachable")
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return models.CountryRecord{}, apperr.NotFound(countryName)
	case resp.StatusCode() != http.StatusOK:
		return models.CountryRecord{}, apperr.Transient(resp.StatusCode())
	}

	var countries []restCountry
	if err := json.Unmarshal(resp.Body(), &countries); err != nil {
		return models.CountryRecord{}, apperr.Wrap(apperr.KindTransient, err, "failed to parse facts response")
	}

	if len(countries) == 0 {
		return models.CountryRecord{}, apperr.NotFound(countryName)
	}

	return f.mapCountry(countries[0], countryName), nil
}

// mapCountry applies the field mapping policy to a raw payload. A
// payload without a canonical name is still a record, not a miss: the
// requested name stands in, so lookups against sparse upstream data
// keep working.
func (f *FactsClient) mapCountry(raw restCountry, requestedName string) models.CountryRecord {
	name := raw.Name.Common
	if name == "" {
		name = requestedName
	}

	capital := "N/A"
	if len(raw.Capital) > 0 && raw.Capital[0] != "" {
		capital = raw.Capital[0]
	}

	currency := "N/A"
	for _, c := range raw.Currencies {
		currency = c.Name
		break
	}

	language := "N/A"
	for _, l := range raw.Languages {
		language = l
		break
	}

	flag := raw.Flag
	if flag == "" {
		flag = FlagFor(name)
	}

	return models.CountryRecord{
		CountryName:           name,
		Capital:               capital,
		Population:            raw.Population,
		Region:                raw.Region,
		Subregion:             raw.Subregion,
		Area:                  raw.Area,
		Currency:              currency,
		Language:              language,
		FlagEmoji:             flag,
		GdpPerCapita:          f.model.GdpEstimate(name, raw.Region),
		GeopoliticalRiskIndex: f.model.RiskScore(name, raw.Region),
		CachedAt:              time.Now(),
	}
}
