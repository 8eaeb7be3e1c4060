package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/weathermate/backend/internal/domain"
)

// RecommendationEngine maps a weather reading to an ordered, non-empty list
// of suggestions. It is a pure function of its input: no randomness, no I/O.
// The rule tables are plain data so deployments can swap thresholds and
// wording without touching code.
type RecommendationEngine struct {
	rules domain.RuleSet
}

// DefaultRuleSet returns the built-in bands and keyword rules.
// Band boundaries: freezing below 0, chilly [0,15), warm [15,25), hot from 25.
// Keyword priority is the slice order: snow beats rain beats clear beats cloud.
func DefaultRuleSet() domain.RuleSet {
	return domain.RuleSet{
		Bands: []domain.TemperatureBand{
			{Name: "freezing", MaxC: 0, Suggestion: "Bundle up in a heavy coat, gloves and a hat before heading out"},
			{Name: "chilly", MaxC: 15, Suggestion: "Grab a warm jacket and treat yourself to a hot drink at a local cafe"},
			{Name: "warm", MaxC: 25, Suggestion: "Great weather for a walk, a run or a picnic in the park"},
			{Name: "hot", MaxC: math.Inf(1), Suggestion: "Stay hydrated and keep to the shade, or go for a swim to cool off"},
		},
		Keywords: []domain.KeywordRule{
			{Keywords: []string{"snow"}, Suggestion: "Snow out there: wear boots with grip, or build a snowman while it lasts"},
			{Keywords: []string{"rain", "drizzle"}, Suggestion: "Take an umbrella or a waterproof jacket"},
			{Keywords: []string{"clear", "sunny"}, Suggestion: "Don't forget sunglasses and sunscreen"},
			{Keywords: []string{"cloud", "overcast"}, Suggestion: "Overcast skies: outdoor plans are fine, but pack a light layer"},
		},
		Fallback: "No special advice for this weather, enjoy your day",
	}
}

// NewRecommendationEngine creates an engine with the given rule set.
// The bands must be ordered by ascending MaxC with the last band unbounded.
func NewRecommendationEngine(rules domain.RuleSet) *RecommendationEngine {
	return &RecommendationEngine{rules: rules}
}

// Rules returns the engine's rule tables for inspection.
func (e *RecommendationEngine) Rules() domain.RuleSet {
	return e.rules
}

// Recommend returns the ordered suggestions for a reading: the temperature
// band suggestion first, then the condition keyword suggestion if any.
// The result is never empty. A non-finite temperature violates the weather
// service contract and fails with domain.ErrInvalidReading.
func (e *RecommendationEngine) Recommend(reading domain.Reading) ([]domain.Recommendation, error) {
	t := reading.TemperatureC
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("%w: non-finite temperature %v", domain.ErrInvalidReading, t)
	}

	var recs []domain.Recommendation

	if band, ok := e.classify(t); ok {
		recs = append(recs, domain.Recommendation{
			Text:   band.Suggestion,
			Source: domain.SourceBand,
		})
	}

	if rule, ok := e.matchKeyword(reading.Condition); ok {
		recs = append(recs, domain.Recommendation{
			Text:   rule.Suggestion,
			Source: domain.SourceCondition,
		})
	}

	// With a full band partition this only fires for an empty rule set.
	if len(recs) == 0 {
		recs = append(recs, domain.Recommendation{
			Text:   e.rules.Fallback,
			Source: domain.SourceFallback,
		})
	}

	return recs, nil
}

// classify finds the band a temperature falls into. Bands are half-open
// ranges [prev.MaxC, MaxC), so every finite temperature matches exactly one.
func (e *RecommendationEngine) classify(t float64) (domain.TemperatureBand, bool) {
	for _, band := range e.rules.Bands {
		if t < band.MaxC {
			return band, true
		}
	}
	return domain.TemperatureBand{}, false
}

// matchKeyword scans the keyword rules in priority order and returns the
// first whose keyword appears in the condition text, case-insensitively.
func (e *RecommendationEngine) matchKeyword(condition string) (domain.KeywordRule, bool) {
	text := strings.ToLower(strings.TrimSpace(condition))
	if text == "" {
		return domain.KeywordRule{}, false
	}
	for _, rule := range e.rules.Keywords {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule, true
			}
		}
	}
	return domain.KeywordRule{}, false
}
