package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/domain"
	"github.com/weathermate/backend/pkg/config"
	"github.com/weathermate/backend/pkg/utils"
)

// WeatherService fetches current conditions from the Weatherstack API.
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg config.WeatherConfig, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// weatherstackResponse represents the Weatherstack /current API response.
// Provider errors arrive with HTTP 200 and a populated error object.
type weatherstackResponse struct {
	Success *bool `json:"success,omitempty"`
	Error   struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		Temperature         float64  `json:"temperature"`
		WeatherDescriptions []string `json:"weather_descriptions"`
		Precip              float64  `json:"precip"`
		Humidity            int      `json:"humidity"`
		WindSpeed           float64  `json:"wind_speed"`
	} `json:"current"`
}

// CurrentConditions fetches current weather for a location query such as
// "Paris" or "Paris, France". Metric units only.
func (s *WeatherService) CurrentConditions(ctx context.Context, query string) (domain.Reading, error) {
	// Return mock data if no API key (demo mode)
	if s.apiKey == "" {
		s.logger.Warn("no weather API key configured, returning mock reading",
			zap.String("query", query))
		return s.getMockReading(query), nil
	}

	params := url.Values{}
	params.Set("access_key", s.apiKey)
	params.Set("query", query)
	params.Set("units", "m")
	endpoint := s.baseURL + "/current?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.Reading{}, &domain.FetchError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Reading{}, &domain.FetchError{
			Query: query,
			Err:   fmt.Errorf("provider returned status %d", resp.StatusCode),
		}
	}

	var wsResp weatherstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&wsResp); err != nil {
		return domain.Reading{}, &domain.FetchError{
			Query: query,
			Err:   fmt.Errorf("failed to decode response: %w", err),
		}
	}

	// Weatherstack signals invalid city/key with HTTP 200 and an error body.
	if wsResp.Error.Info != "" || (wsResp.Success != nil && !*wsResp.Success) {
		return domain.Reading{}, &domain.FetchError{
			Query: query,
			Err: fmt.Errorf("provider error %d (%s): %s",
				wsResp.Error.Code, wsResp.Error.Type, wsResp.Error.Info),
		}
	}

	reading := domain.Reading{
		TemperatureC:    utils.RoundTo(wsResp.Current.Temperature, 1),
		PrecipitationMM: wsResp.Current.Precip,
		Humidity:        wsResp.Current.Humidity,
		WindKPH:         wsResp.Current.WindSpeed,
		City:            wsResp.Location.Name,
		Country:         wsResp.Location.Country,
		ObservedAt:      time.Now(),
		IsMock:          false,
	}

	if len(wsResp.Current.WeatherDescriptions) > 0 {
		reading.Condition = wsResp.Current.WeatherDescriptions[0]
	}

	return reading, nil
}

// getMockReading returns simulated seasonal weather for demo mode
func (s *WeatherService) getMockReading(query string) domain.Reading {
	month := time.Now().Month()
	var temp, precip float64
	var condition string

	switch {
	case month >= 12 || month <= 2: // Winter
		temp = -3.0
		precip = 1.2
		condition = "Light snow"
	case month >= 3 && month <= 5: // Spring
		temp = 12.0
		precip = 0.4
		condition = "Partly cloudy"
	case month >= 6 && month <= 8: // Summer
		temp = 27.0
		precip = 0.0
		condition = "Sunny"
	default: // Autumn
		temp = 9.0
		precip = 0.8
		condition = "Light rain"
	}

	return domain.Reading{
		TemperatureC:    temp,
		Condition:       condition,
		PrecipitationMM: precip,
		Humidity:        65,
		WindKPH:         12.5,
		City:            query,
		Country:         "",
		ObservedAt:      time.Now(),
		IsMock:          true,
	}
}
