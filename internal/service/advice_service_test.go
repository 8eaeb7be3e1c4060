package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/repository/postgres"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		city, region, want string
	}{
		{"Paris", "France", "Paris, France"},
		{"Paris", "", "Paris"},
		{"Springfield", "Illinois", "Springfield, Illinois"},
	}
	for _, tt := range tests {
		if got := Location(tt.city, tt.region); got != tt.want {
			t.Errorf("Location(%q, %q) = %q, want %q", tt.city, tt.region, got, tt.want)
		}
	}
}

func TestGetAdviceFetchesRecommendsAndRecordsLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"location": {"name": "Oslo", "country": "Norway"},
			"current": {
				"temperature": -5,
				"weather_descriptions": ["Light snow"],
				"precip": 0.9,
				"humidity": 80,
				"wind_speed": 7
			}
		}`))
	}))
	defer srv.Close()

	repo := postgres.NewMockRepository()
	weatherSvc := newTestWeatherService(srv.URL)
	engine := NewRecommendationEngine(DefaultRuleSet())
	adviceSvc := NewAdviceService(weatherSvc, engine, repo, zap.NewNop())

	advice, err := adviceSvc.GetAdvice(context.Background(), "Oslo", "Norway")
	if err != nil {
		t.Fatalf("GetAdvice failed: %v", err)
	}

	if advice.Reading.City != "Oslo" {
		t.Errorf("Reading.City = %q, want Oslo", advice.Reading.City)
	}
	if len(advice.Recommendations) != 2 {
		t.Fatalf("got %d recommendations %v, want 2 (freezing band + snow)", len(advice.Recommendations), advice.Recommendations)
	}

	// The lookup is persisted in the background.
	adviceSvc.WaitBackground()

	records, err := repo.ListRecentLookups(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentLookups failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d lookup records, want 1", len(records))
	}
	rec := records[0]
	if rec.City != "Oslo" || rec.TemperatureC != -5 || rec.Condition != "Light snow" {
		t.Errorf("unexpected lookup record: %+v", rec)
	}
	if len(rec.Suggestions) != 2 {
		t.Errorf("lookup stored %d suggestions, want 2", len(rec.Suggestions))
	}
	if rec.ID == uuid.Nil {
		t.Error("lookup record has zero ID")
	}
	if rec.CreatedAt.After(time.Now()) {
		t.Errorf("lookup CreatedAt %v is in the future", rec.CreatedAt)
	}
}

func TestGetAdviceSurfacesFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "error": {"code": 615, "type": "request_failed", "info": "Your API request failed."}}`))
	}))
	defer srv.Close()

	repo := postgres.NewMockRepository()
	adviceSvc := NewAdviceService(newTestWeatherService(srv.URL),
		NewRecommendationEngine(DefaultRuleSet()), repo, zap.NewNop())

	if _, err := adviceSvc.GetAdvice(context.Background(), "Nowhere", ""); err == nil {
		t.Fatal("GetAdvice succeeded, want fetch error")
	}

	// Failed fetches must not leave lookup records behind.
	adviceSvc.WaitBackground()
	records, _ := repo.ListRecentLookups(context.Background(), 10)
	if len(records) != 0 {
		t.Errorf("got %d lookup records after failed fetch, want 0", len(records))
	}
}
