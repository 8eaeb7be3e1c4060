package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/domain"
)

// AdviceService wires the weather fetch to the recommendation engine and
// records each lookup.
type AdviceService struct {
	weatherSvc *WeatherService
	engine     *RecommendationEngine
	repo       LookupRepository
	logger     *zap.Logger

	wgBg sync.WaitGroup // tracks background save goroutines for graceful shutdown
}

// NewAdviceService creates a new advice service
func NewAdviceService(
	weatherSvc *WeatherService,
	engine *RecommendationEngine,
	repo LookupRepository,
	logger *zap.Logger,
) *AdviceService {
	return &AdviceService{
		weatherSvc: weatherSvc,
		engine:     engine,
		repo:       repo,
		logger:     logger,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *AdviceService) WaitBackground() {
	s.wgBg.Wait()
}

// GetAdvice fetches current conditions for the location and runs the
// recommendation engine over the reading. The lookup is persisted in the
// background; persistence failures are logged, never surfaced.
func (s *AdviceService) GetAdvice(ctx context.Context, city, region string) (domain.Advice, error) {
	query := Location(city, region)

	reading, err := s.weatherSvc.CurrentConditions(ctx, query)
	if err != nil {
		return domain.Advice{}, err
	}

	recs, err := s.engine.Recommend(reading)
	if err != nil {
		return domain.Advice{}, err
	}

	advice := domain.Advice{
		Reading:         reading,
		Recommendations: recs,
		Timestamp:       time.Now(),
	}

	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rec := domain.LookupRecord{
			ID:           uuid.New(),
			City:         reading.City,
			TemperatureC: reading.TemperatureC,
			Condition:    reading.Condition,
			Suggestions:  suggestionTexts(recs),
			CreatedAt:    advice.Timestamp,
		}
		if err := s.repo.SaveLookup(bgCtx, rec); err != nil {
			s.logger.Error("failed to save lookup", zap.Error(err),
				zap.String("city", rec.City))
		}
	}()

	return advice, nil
}

// Rules exposes the engine's rule tables.
func (s *AdviceService) Rules() domain.RuleSet {
	return s.engine.Rules()
}

// Location joins a city with an optional state/country qualifier into one
// provider query, e.g. ("Paris", "France") -> "Paris, France". The qualifier
// disambiguates duplicate city names.
func Location(city, region string) string {
	if region == "" {
		return city
	}
	return city + ", " + region
}

func suggestionTexts(recs []domain.Recommendation) []string {
	texts := make([]string, 0, len(recs))
	for _, r := range recs {
		texts = append(texts, r.Text)
	}
	return texts
}
