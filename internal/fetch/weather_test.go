package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bilgisen/geopulse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherClientSyntheticDeterministic(t *testing.T) {
	client := NewWeatherClient(testConfig("http://127.0.0.1:0"))
	ctx := context.Background()

	first := client.Fetch(ctx, "Oslo")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, client.Fetch(ctx, "Oslo"))
	}

	// Different cities hash to different snapshots (for these two).
	other := client.Fetch(ctx, "Paris")
	assert.NotEqual(t, first.Temperature, other.Temperature)
}

func TestWeatherClientSyntheticRanges(t *testing.T) {
	client := NewWeatherClient(testConfig("http://127.0.0.1:0"))
	ctx := context.Background()

	for _, city := range []string{"Oslo", "Paris", "Tokyo", "Canberra", "Brasília", "Ottawa", "Delhi"} {
		snap := client.Fetch(ctx, city)

		require.NotNil(t, snap.Temperature, city)
		assert.GreaterOrEqual(t, *snap.Temperature, -10.0, city)
		assert.LessOrEqual(t, *snap.Temperature, 35.0, city)

		require.NotNil(t, snap.Humidity, city)
		assert.GreaterOrEqual(t, *snap.Humidity, 20, city)
		assert.LessOrEqual(t, *snap.Humidity, 90, city)

		require.NotNil(t, snap.Pressure, city)
		assert.GreaterOrEqual(t, *snap.Pressure, 980, city)
		assert.LessOrEqual(t, *snap.Pressure, 1030, city)

		require.NotNil(t, snap.WindSpeed, city)
		assert.GreaterOrEqual(t, *snap.WindSpeed, 0.0, city)
		assert.LessOrEqual(t, *snap.WindSpeed, 15.0, city)

		require.NotNil(t, snap.Visibility, city)
		assert.GreaterOrEqual(t, *snap.Visibility, 5000, city)
		assert.LessOrEqual(t, *snap.Visibility, 10000, city)

		assert.Contains(t, weatherConditions, snap.MainCondition, city)
		assert.Contains(t, weatherDescriptions, snap.Description, city)
	}
}

func TestWeatherClientLiveParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Oslo", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"main": {"temp": 4.2, "feels_like": 1.1, "humidity": 80, "pressure": 1012},
			"weather": [{"main": "Clouds", "description": "overcast clouds"}],
			"wind": {"speed": 6.5},
			"visibility": 9000
		}`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		WeatherAPIURL: srv.URL,
		WeatherAPIKey: "real-key",
		FetchTimeout:  2 * time.Second,
	}
	client := NewWeatherClient(cfg)

	snap := client.Fetch(context.Background(), "Oslo")

	require.NotNil(t, snap.Temperature)
	assert.Equal(t, 4.2, *snap.Temperature)
	require.NotNil(t, snap.FeelsLike)
	assert.Equal(t, 1.1, *snap.FeelsLike)
	assert.Equal(t, "Clouds", snap.MainCondition)
	assert.Equal(t, "overcast clouds", snap.Description)
	require.NotNil(t, snap.WindSpeed)
	assert.Equal(t, 6.5, *snap.WindSpeed)
	require.NotNil(t, snap.Visibility)
	assert.Equal(t, 9000, *snap.Visibility)
}

func TestWeatherClientFallsBackOnUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := &config.Config{
		WeatherAPIURL: srv.URL,
		WeatherAPIKey: "real-key",
		FetchTimeout:  2 * time.Second,
	}
	client := NewWeatherClient(cfg)

	// Upstream failure degrades to the synthetic snapshot, same as
	// running without a key.
	snap := client.Fetch(context.Background(), "Oslo")
	mock := NewWeatherClient(testConfig("http://127.0.0.1:0")).Fetch(context.Background(), "Oslo")
	assert.Equal(t, mock, snap)
}
