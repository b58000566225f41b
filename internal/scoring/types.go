// Package scoring produces importance/impact/urgency scores, risk
// classifications, and action recommendations for monitored signals.
// Scoring is deterministic arithmetic over extracted features; there is no
// learned model behind it.
package scoring

import (
	"errors"
	"time"
)

// RiskLevel buckets an overall score via the configured thresholds.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
	RiskMinimal  RiskLevel = "minimal"
)

// criticalThreshold sits above the configurable bands and is not tunable.
const criticalThreshold = 0.85

// adhocSignalID is the sentinel used when a signal carries no identifier.
const adhocSignalID = "adhoc"

// ErrThresholdOrder is returned when risk thresholds are not strictly
// decreasing from high to low. A misordered configuration would silently
// invert risk levels, so construction rejects it.
var ErrThresholdOrder = errors.New("scoring: risk thresholds must satisfy high > medium > low")

// Config holds the tunable scoring thresholds. Zero values fall back to the
// defaults, so Config{} is valid.
type Config struct {
	ThresholdHigh       float64  `json:"threshold_high" koanf:"threshold_high"`
	ThresholdMedium     float64  `json:"threshold_medium" koanf:"threshold_medium"`
	ThresholdLow        float64  `json:"threshold_low" koanf:"threshold_low"`
	ConfidenceThreshold float64  `json:"confidence_threshold" koanf:"confidence_threshold"`
	EnabledFeatures     []string `json:"enabled_features,omitempty" koanf:"enabled_features"`
	Ensemble            bool     `json:"ensemble" koanf:"ensemble"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		ThresholdHigh:       0.70,
		ThresholdMedium:     0.40,
		ThresholdLow:        0.20,
		ConfidenceThreshold: 0.50,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ThresholdHigh == 0 {
		c.ThresholdHigh = d.ThresholdHigh
	}
	if c.ThresholdMedium == 0 {
		c.ThresholdMedium = d.ThresholdMedium
	}
	if c.ThresholdLow == 0 {
		c.ThresholdLow = d.ThresholdLow
	}
	if c.ConfidenceThreshold == 0 {
		c.ConfidenceThreshold = d.ConfidenceThreshold
	}
	return c
}

// Validate checks the threshold ordering invariant.
func (c Config) Validate() error {
	if !(c.ThresholdHigh > c.ThresholdMedium && c.ThresholdMedium > c.ThresholdLow && c.ThresholdLow > 0) {
		return ErrThresholdOrder
	}
	return nil
}

// Result is the full scoring output for one signal. Results are created
// fresh per call and never mutated.
type Result struct {
	SignalID        string    `json:"signal_id"`
	ImportanceScore float64   `json:"importance_score"`
	ImpactScore     float64   `json:"impact_score"`
	UrgencyScore    float64   `json:"urgency_score"`
	OverallScore    float64   `json:"overall_score"`
	OverallRisk     RiskLevel `json:"overall_risk"`
	Confidence      float64   `json:"confidence"`
	Recommendations []string  `json:"recommendations"`
	ScoredAt        time.Time `json:"scored_at"`
}

// Factor is one contribution to a single-dimension prediction.
type Factor struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Prediction is the single-dimension scoring output with an explanation and
// the contributing-factor breakdown.
type Prediction struct {
	SignalID    string    `json:"signal_id"`
	Score       float64   `json:"score"`
	Risk        RiskLevel `json:"risk"`
	Confidence  float64   `json:"confidence"`
	Explanation string    `json:"explanation"`
	Factors     []Factor  `json:"factors"`
	ScoredAt    time.Time `json:"scored_at"`
}
