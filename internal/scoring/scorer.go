package scoring

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/fyrsmithlabs/legisignal/internal/features"
	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

// Overall weighting of the three dimensions. Impact dominates: operational
// consequence outweighs raw salience.
const (
	weightImportance = 0.35
	weightImpact     = 0.40
	weightUrgency    = 0.25
)

// Scorer scores signals against fixed configuration. It holds only
// read-only state and is safe for concurrent use.
type Scorer struct {
	cfg       Config
	extractor *features.Extractor
	now       func() time.Time
}

// Option customizes Scorer construction.
type Option func(*Scorer)

// WithClock overrides the time source stamped onto results.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// NewScorer builds a scorer. The extractor is required; the config is
// validated so a misordered threshold set fails fast instead of silently
// inverting risk levels.
func NewScorer(cfg Config, extractor *features.Extractor, opts ...Option) (*Scorer, error) {
	if extractor == nil {
		return nil, fmt.Errorf("scoring: extractor is required")
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scorer{cfg: cfg, extractor: extractor, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Score produces the full multi-dimension result for one signal.
func (s *Scorer) Score(sig signal.Signal) Result {
	fs := s.extractor.Extract(sig)

	importance := round3(s.importance(fs))
	impact := round3(s.impact(fs))
	urgency := round3(s.urgency(fs))
	overall := round3(importance*weightImportance + impact*weightImpact + urgency*weightUrgency)
	confidence := round3(s.confidence(fs))

	return Result{
		SignalID:        signalID(sig),
		ImportanceScore: importance,
		ImpactScore:     impact,
		UrgencyScore:    urgency,
		OverallScore:    overall,
		OverallRisk:     s.classifyRisk(overall),
		Confidence:      confidence,
		Recommendations: s.recommend(fs, urgency, overall, confidence),
		ScoredAt:        s.now(),
	}
}

// ScoreImportance scores the importance dimension only, with an explanation
// and the contributing-factor breakdown.
func (s *Scorer) ScoreImportance(sig signal.Signal) Prediction {
	fs := s.extractor.Extract(sig)

	factors := []Factor{
		{Name: "keyword_density", Weight: 0.25, Contribution: capUnit(fs.KeywordDensity*50) * 0.25},
		{Name: "source_reliability", Weight: 0.20, Contribution: fs.SourceReliabilityScore * 0.20},
		{Name: "high_priority_keywords", Weight: 0.25, Contribution: capUnit(float64(fs.HighPriorityKeywords)/5) * 0.25},
		{Name: "complexity", Weight: 0.15, Contribution: fs.ComplexityScore * 0.15},
		{Name: "entity_references", Weight: 0.15, Contribution: capUnit(float64(fs.EntityCount)/10) * 0.15},
	}

	score := 0.0
	top := factors[0]
	for _, f := range factors {
		score += f.Contribution
		if f.Contribution > top.Contribution {
			top = f
		}
	}
	score = round3(capUnit(score))

	return Prediction{
		SignalID:    signalID(sig),
		Score:       score,
		Risk:        s.classifyRisk(score),
		Confidence:  round3(s.confidence(fs)),
		Explanation: fmt.Sprintf("importance %.3f, driven primarily by %s (%.3f of %.2f budget)", score, top.Name, top.Contribution, top.Weight),
		Factors:     factors,
		ScoredAt:    s.now(),
	}
}

// ScoreAll scores signals concurrently, one worker per signal, preserving
// input order. Each result is self-contained, so no coordination is needed
// beyond the gather.
func (s *Scorer) ScoreAll(sigs []signal.Signal) []Result {
	results := make([]Result, len(sigs))
	var wg sync.WaitGroup
	for i, sig := range sigs {
		wg.Add(1)
		go func(i int, sig signal.Signal) {
			defer wg.Done()
			results[i] = s.Score(sig)
		}(i, sig)
	}
	wg.Wait()
	return results
}

func (s *Scorer) importance(fs features.FeatureSet) float64 {
	score := capUnit(fs.KeywordDensity*50) * 0.25
	score += fs.SourceReliabilityScore * 0.20
	score += capUnit(float64(fs.HighPriorityKeywords)/5) * 0.25
	score += fs.ComplexityScore * 0.15
	score += capUnit(float64(fs.EntityCount)/10) * 0.15
	return capUnit(score)
}

func (s *Scorer) impact(fs features.FeatureSet) float64 {
	score := fs.SourceReliabilityScore * 0.25
	score += math.Min(0.25, float64(fs.RegulationCitations)*0.05)
	score += fs.SpecificityScore * 0.20
	if fs.IsRetroactive {
		score += 0.15
	}
	score += math.Min(0.15, float64(fs.OrganizationMentions)*0.03)
	return capUnit(score)
}

func (s *Scorer) urgency(fs features.FeatureSet) float64 {
	score := 0.0
	if fs.HasDeadline() {
		switch d := *fs.DaysUntilDeadline; {
		case d <= 0:
			score += 0.40
		case d <= 7:
			score += 0.35
		case d <= 30:
			score += 0.25
		case d <= 60:
			score += 0.15
		default:
			score += 0.05
		}
	}
	if fs.HasEffectiveDate() {
		switch d := *fs.DaysUntilEffective; {
		case d <= 0:
			score += 0.30
		case d <= 30:
			score += 0.25
		case d <= 90:
			score += 0.15
		default:
			score += 0.05
		}
	}
	if fs.IsRetroactive {
		score += 0.20
	}
	// With no dates at all, heavy keyword pressure still signals urgency.
	if !fs.HasDeadline() && !fs.HasEffectiveDate() && fs.HighPriorityKeywords > 3 {
		score += 0.20
	}
	return capUnit(score)
}

func (s *Scorer) confidence(fs features.FeatureSet) float64 {
	conf := 0.30
	switch {
	case fs.TextLength > 500:
		conf += 0.15
	case fs.TextLength > 100:
		conf += 0.10
	}
	switch {
	case fs.SourceReliabilityScore >= 0.90:
		conf += 0.20
	case fs.SourceType != "" && fs.SourceType != "other":
		conf += 0.10
	}
	if fs.HasEffectiveDate() {
		conf += 0.15
	}
	if fs.HasDeadline() {
		conf += 0.10
	}
	if fs.RegulationCitations > 0 {
		conf += 0.10
	}
	return capUnit(conf)
}

// classifyRisk maps an overall score to its risk bucket. Boundaries are
// inclusive: a score exactly at a threshold lands in the higher band.
func (s *Scorer) classifyRisk(overall float64) RiskLevel {
	switch {
	case overall >= criticalThreshold:
		return RiskCritical
	case overall >= s.cfg.ThresholdHigh:
		return RiskHigh
	case overall >= s.cfg.ThresholdMedium:
		return RiskMedium
	case overall >= s.cfg.ThresholdLow:
		return RiskLow
	default:
		return RiskMinimal
	}
}

// recommend emits action hints most-urgent-first. The list is never empty:
// when no rule fires a routine-monitoring note is returned.
func (s *Scorer) recommend(fs features.FeatureSet, urgency, overall, confidence float64) []string {
	var recs []string
	if urgency >= 0.70 {
		recs = append(recs, "Immediate review required: a statutory or comment deadline is imminent.")
	}
	if fs.HasDeadline() && *fs.DaysUntilDeadline >= 0 && *fs.DaysUntilDeadline <= 7 {
		recs = append(recs, "Prepare a comment submission before the comment period closes.")
	}
	if fs.IsRetroactive {
		recs = append(recs, "Assess retroactive applicability against active cases and prior determinations.")
	}
	if overall >= s.cfg.ThresholdHigh {
		recs = append(recs, "Escalate to policy leadership for assignment and tracking.")
	}
	if confidence < s.cfg.ConfidenceThreshold {
		recs = append(recs, "Evidence is incomplete; verify against the primary source before acting.")
	}
	if len(recs) == 0 {
		recs = append(recs, "No immediate action needed; include in routine monitoring.")
	}
	return recs
}

func signalID(sig signal.Signal) string {
	if sig.ID == "" {
		return adhocSignalID
	}
	return sig.ID
}

func capUnit(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
