package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/domain"
	"github.com/weathermate/backend/pkg/config"
)

func newTestWeatherService(baseURL string) *WeatherService {
	return NewWeatherService(config.WeatherConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestCurrentConditionsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/current" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("access_key") != "test-key" {
			t.Errorf("access_key = %q, want test-key", q.Get("access_key"))
		}
		if q.Get("query") != "Paris, France" {
			t.Errorf("query = %q, want %q", q.Get("query"), "Paris, France")
		}
		if q.Get("units") != "m" {
			t.Errorf("units = %q, want m", q.Get("units"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"location": {"name": "Paris", "country": "France"},
			"current": {
				"temperature": 21.46,
				"weather_descriptions": ["Partly cloudy"],
				"precip": 0.2,
				"humidity": 71,
				"wind_speed": 11
			}
		}`))
	}))
	defer srv.Close()

	svc := newTestWeatherService(srv.URL)
	reading, err := svc.CurrentConditions(context.Background(), "Paris, France")
	if err != nil {
		t.Fatalf("CurrentConditions failed: %v", err)
	}

	if reading.TemperatureC != 21.5 {
		t.Errorf("TemperatureC = %v, want 21.5 (rounded)", reading.TemperatureC)
	}
	if reading.Condition != "Partly cloudy" {
		t.Errorf("Condition = %q, want %q", reading.Condition, "Partly cloudy")
	}
	if reading.PrecipitationMM != 0.2 {
		t.Errorf("PrecipitationMM = %v, want 0.2", reading.PrecipitationMM)
	}
	if reading.City != "Paris" || reading.Country != "France" {
		t.Errorf("location = %q/%q, want Paris/France", reading.City, reading.Country)
	}
	if reading.IsMock {
		t.Error("IsMock = true for a live response")
	}
}

func TestCurrentConditionsProviderErrorBody(t *testing.T) {
	// Weatherstack reports bad keys and unknown cities with HTTP 200.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": {"code": 101, "type": "invalid_access_key", "info": "You have not supplied a valid API Access Key."}
		}`))
	}))
	defer srv.Close()

	svc := newTestWeatherService(srv.URL)
	_, err := svc.CurrentConditions(context.Background(), "TestCity")

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *domain.FetchError", err)
	}
	if fetchErr.Query != "TestCity" {
		t.Errorf("FetchError.Query = %q, want TestCity", fetchErr.Query)
	}
}

func TestCurrentConditionsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := newTestWeatherService(srv.URL)
	_, err := svc.CurrentConditions(context.Background(), "Paris")

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *domain.FetchError", err)
	}
}

func TestCurrentConditionsNetworkFailure(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := newTestWeatherService(srv.URL)
	_, err := svc.CurrentConditions(context.Background(), "Paris")

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *domain.FetchError", err)
	}
}

func TestCurrentConditionsMockModeWithoutAPIKey(t *testing.T) {
	svc := NewWeatherService(config.WeatherConfig{
		APIKey:  "",
		BaseURL: "http://api.weatherstack.com",
		Timeout: time.Second,
	}, zap.NewNop())

	reading, err := svc.CurrentConditions(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("CurrentConditions failed: %v", err)
	}
	if !reading.IsMock {
		t.Error("IsMock = false, want mock reading without API key")
	}
	if reading.City != "Lisbon" {
		t.Errorf("City = %q, want the query echoed back", reading.City)
	}
}
