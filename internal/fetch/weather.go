package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bilgisen/geopulse/internal/config"
	"github.com/bilgisen/geopulse/internal/logger"
	"github.com/bilgisen/geopulse/internal/models"
	"github.com/bilgisen/geopulse/internal/utils"
	"github.com/go-resty/resty/v2"
)

var weatherConditions = []string{
	"Clear", "Clouds", "Rain", "Snow", "Thunderstorm", "Drizzle", "Mist",
}

var weatherDescriptions = []string{
	"clear sky", "few clouds", "scattered clouds", "broken clouds",
	"overcast clouds", "light rain", "moderate rain", "heavy intensity rain",
	"light snow", "snow", "mist", "thunderstorm",
}

// openWeatherPayload is the raw weather source response.
type openWeatherPayload struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility *int `json:"visibility"`
}

// WeatherClient fetches live weather for a city. Without a real API
// key, or on any upstream error, it degrades to a synthetic snapshot
// deterministically derived from the city name - live data is
// best-effort and never fails a request.
type WeatherClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	mock    bool
}

func NewWeatherClient(cfg *config.Config) *WeatherClient {
	return &WeatherClient{
		client: resty.New().
			SetTimeout(cfg.FetchTimeout).
			SetHeader("Accept", "application/json"),
		baseURL: cfg.WeatherAPIURL,
		apiKey:  cfg.WeatherAPIKey,
		mock:    cfg.MockWeather(),
	}
}

// Fetch returns the weather snapshot for a city. It always succeeds.
func (w *WeatherClient) Fetch(ctx context.Context, city string) models.WeatherSnapshot {
	if w.mock {
		return w.synthetic(city)
	}

	snapshot, err := w.doFetch(ctx, city)
	if err != nil {
		logger.Get().Warn().
			Err(err).
			Str("city", city).
			Msg("Weather fetch failed, falling back to synthetic data")
		return w.synthetic(city)
	}
	return snapshot
}

func (w *WeatherClient) doFetch(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	resp, err := w.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"appid": w.apiKey,
			"units": "metric",
		}).
		Get(w.baseURL)
	if err != nil {
		return models.WeatherSnapshot{}, err
	}
	if resp.StatusCode() != http.StatusOK {
		return models.WeatherSnapshot{}, &apiStatusError{status: resp.StatusCode()}
	}

	var payload openWeatherPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.WeatherSnapshot{}, err
	}

	snapshot := models.WeatherSnapshot{City: city}
	if payload.Main != nil {
		temp := payload.Main.Temp
		feels := payload.Main.FeelsLike
		humidity := payload.Main.Humidity
		pressure := payload.Main.Pressure
		snapshot.Temperature = &temp
		snapshot.FeelsLike = &feels
		snapshot.Humidity = &humidity
		snapshot.Pressure = &pressure
	}
	if len(payload.Weather) > 0 {
		snapshot.MainCondition = payload.Weather[0].Main
		snapshot.Description = payload.Weather[0].Description
	}
	if payload.Wind != nil {
		speed := payload.Wind.Speed
		snapshot.WindSpeed = &speed
	}
	if payload.Visibility != nil {
		visibility := *payload.Visibility
		snapshot.Visibility = &visibility
	}

	return snapshot, nil
}

// synthetic builds a reproducible snapshot from a stable hash of the
// city name: same city, same weather, across processes.
func (w *WeatherClient) synthetic(city string) models.WeatherSnapshot {
	hash := utils.StableHash(city)

	temperature := float64(-10 + int(hash%45))
	feelsLike := temperature + float64(int(hash%6)-3)
	humidity := 20 + int(hash%70)
	pressure := 980 + int(hash%50)
	windSpeed := float64(hash%150) / 10.0
	visibility := 5000 + int(hash%5000)

	return models.WeatherSnapshot{
		City:          city,
		Temperature:   &temperature,
		FeelsLike:     &feelsLike,
		MainCondition: weatherConditions[hash%uint32(len(weatherConditions))],
		Description:   weatherDescriptions[hash%uint32(len(weatherDescriptions))],
		Humidity:      &humidity,
		WindSpeed:     &windSpeed,
		Pressure:      &pressure,
		Visibility:    &visibility,
	}
}

type apiStatusError struct {
	status int
}

func (e *apiStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from weather source", e.status)
}
