package domain

import "time"

// Reading represents a single point-in-time weather observation for one city.
// It is immutable once constructed and produced only by the weather service.
type Reading struct {
	TemperatureC    float64   `json:"temperature_c"`
	Condition       string    `json:"condition"`
	PrecipitationMM float64   `json:"precipitation_mm"`
	Humidity        int       `json:"humidity"`
	WindKPH         float64   `json:"wind_kph"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	ObservedAt      time.Time `json:"observed_at"`
	IsMock          bool      `json:"is_mock"`
}

// Recommendation is one human-readable suggestion derived from a Reading.
type Recommendation struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Recommendation sources.
const (
	SourceBand      = "band"
	SourceCondition = "condition"
	SourceFallback  = "fallback"
)

// Advice pairs the original reading with the ordered suggestions so callers
// can display both together.
type Advice struct {
	Reading         Reading          `json:"reading"`
	Recommendations []Recommendation `json:"recommendations"`
	Timestamp       time.Time        `json:"timestamp"`
}

// AdviceResponse wraps advice with metadata
type AdviceResponse struct {
	Data    Advice `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
