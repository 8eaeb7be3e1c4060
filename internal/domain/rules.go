package domain

import (
	"encoding/json"
	"math"
)

// TemperatureBand maps a contiguous temperature range to one suggestion.
// A band covers all temperatures below MaxC that no earlier band claimed,
// so an ordered slice of bands with ascending MaxC partitions the real line.
// The last band in a set must have MaxC = +Inf.
type TemperatureBand struct {
	Name       string  `json:"name"`
	MaxC       float64 `json:"max_c"` // exclusive upper bound in Celsius
	Suggestion string  `json:"suggestion"`
}

// MarshalJSON renders the unbounded top band with a null upper bound,
// since +Inf is not representable in JSON.
func (b TemperatureBand) MarshalJSON() ([]byte, error) {
	out := struct {
		Name       string   `json:"name"`
		MaxC       *float64 `json:"max_c"`
		Suggestion string   `json:"suggestion"`
	}{Name: b.Name, Suggestion: b.Suggestion}
	if !math.IsInf(b.MaxC, 1) {
		out.MaxC = &b.MaxC
	}
	return json.Marshal(out)
}

// KeywordRule matches free-text condition descriptions by case-insensitive
// substring. Rules are evaluated in slice order and the first match wins,
// which is what keeps combined descriptions like "rain and clouds" from
// producing contradictory advice.
type KeywordRule struct {
	Keywords   []string `json:"keywords"`
	Suggestion string   `json:"suggestion"`
}

// RuleSet is the full data-driven rule table for the recommendation engine:
// the band partition, the ordered keyword rules and the fallback suggestion.
type RuleSet struct {
	Bands    []TemperatureBand `json:"bands"`
	Keywords []KeywordRule     `json:"keywords"`
	Fallback string            `json:"fallback"`
}
