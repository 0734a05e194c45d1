package fetch

import (
	"context"
	"fmt"

	"github.com/bilgisen/geopulse/internal/apperr"
	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/models"
	"golang.org/x/sync/errgroup"
)

// Aggregator fans out the facts, weather, and news fetches for one
// request and joins the results into a single record. Each task writes
// to its own slot; results are merged only after the join.
type Aggregator struct {
	facts   *FactsClient
	weather *WeatherClient
	news    *NewsClient
}

func NewAggregator(facts *FactsClient, weather *WeatherClient, news *NewsClient) *Aggregator {
	return &Aggregator{
		facts:   facts,
		weather: weather,
		news:    news,
	}
}

// FetchAll runs the three fetches concurrently and merges the results.
// A NotFound from the facts source surfaces immediately. Any other
// join failure abandons the concurrent attempt and re-runs all three
// sequentially - a full retry, not a partial one - before surfacing a
// transient error.
func (a *Aggregator) FetchAll(ctx context.Context, countryName string) (models.CountryRecord, error) {
	var (
		record  models.CountryRecord
		weather models.WeatherSnapshot
		news    []models.NewsArticle
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return safeRun(func() error {
			var err error
			record, err = a.facts.Fetch(gctx, countryName)
			return err
		})
	})
	g.Go(func() error {
		return safeRun(func() error {
			weather = a.weather.Fetch(gctx, countryName)
			return nil
		})
	})
	g.Go(func() error {
		return safeRun(func() error {
			news = a.news.Fetch(gctx, countryName)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return models.CountryRecord{}, err
		}

		logger.Get().Warn().
			Err(err).
			Str("country", countryName).
			Msg("Concurrent fetch failed, retrying sequentially")
		return a.fetchSequential(ctx, countryName)
	}

	a.merge(ctx, &record, weather, news)
	return record, nil
}

// fetchSequential is the degraded path: facts, then weather, then
// news, in that fixed order.
func (a *Aggregator) fetchSequential(ctx context.Context, countryName string) (models.CountryRecord, error) {
	record, err := a.facts.Fetch(ctx, countryName)
	if err != nil {
		return models.CountryRecord{}, err
	}

	weather := a.weather.Fetch(ctx, countryName)
	news := a.news.Fetch(ctx, countryName)

	a.merge(ctx, &record, weather, news)
	return record, nil
}

// RefreshLive attaches fresh weather and news to a record whose facts
// came from the cache. Live enrichment is best-effort: on failure the
// record keeps whatever live data is already defaulted.
func (a *Aggregator) RefreshLive(ctx context.Context, record *models.CountryRecord) {
	var (
		weather models.WeatherSnapshot
		news    []models.NewsArticle
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return safeRun(func() error {
			weather = a.weather.Fetch(gctx, record.CountryName)
			return nil
		})
	})
	g.Go(func() error {
		return safeRun(func() error {
			news = a.news.Fetch(gctx, record.CountryName)
			return nil
		})
	})

	if err := g.Wait(); err != nil {
		logger.Get().Warn().
			Err(err).
			Str("country", record.CountryName).
			Msg("Live enrichment failed, returning cached facts with defaults")
		if record.News == nil {
			record.News = []models.NewsArticle{}
		}
		return
	}

	a.merge(ctx, record, weather, news)
}

// merge joins the three results, applying the capital-as-city repair:
// if the snapshot for the country name carries no temperature and a
// capital is known, weather is retried once with the capital.
func (a *Aggregator) merge(ctx context.Context, record *models.CountryRecord, weather models.WeatherSnapshot, news []models.NewsArticle) {
	if weather.Temperature == nil && record.Capital != "" && record.Capital != "N/A" {
		weather = a.weather.Fetch(ctx, record.Capital)
	}

	record.Weather = &weather
	if news == nil {
		news = []models.NewsArticle{}
	}
	record.News = news
}

// safeRun converts a panic inside a fan-out task into an error so a
// single misbehaving branch fails the join instead of the process.
func safeRun(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch task panicked: %v", r)
		}
	}()
	return fn()
}
