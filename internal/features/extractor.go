package features

import (
	"regexp"
	"strings"
	"time"

	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

// Config holds the static tables the extractor reads. Zero values fall back
// to the built-in defaults, so Config{} is a valid configuration.
type Config struct {
	HighPriorityKeywords []string           `json:"high_priority_keywords,omitempty" koanf:"high_priority_keywords"`
	SourceReliability    map[string]float64 `json:"source_reliability,omitempty" koanf:"source_reliability"`
	OrganizationPatterns []string           `json:"organization_patterns,omitempty" koanf:"organization_patterns"`
	CitationPatterns     []string           `json:"citation_patterns,omitempty" koanf:"citation_patterns"`
}

// Extractor converts signals into feature sets. It holds only read-only
// tables and is safe for concurrent use.
type Extractor struct {
	keywords    []string
	reliability map[string]float64
	orgPatterns []*regexp.Regexp
	citPatterns []*regexp.Regexp
	now         func() time.Time
}

// Option customizes Extractor construction.
type Option func(*Extractor)

// WithClock overrides the time source used for temporal deltas. Tests use
// this to keep extraction reproducible.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor builds an extractor from config, compiling entity patterns up
// front. Invalid patterns are skipped rather than failing construction.
func NewExtractor(cfg Config, opts ...Option) *Extractor {
	keywords := cfg.HighPriorityKeywords
	if len(keywords) == 0 {
		keywords = DefaultHighPriorityKeywords()
	}
	reliability := cfg.SourceReliability
	if len(reliability) == 0 {
		reliability = DefaultSourceReliability()
	}
	orgSrc := cfg.OrganizationPatterns
	if len(orgSrc) == 0 {
		orgSrc = defaultOrganizationPatterns
	}
	citSrc := cfg.CitationPatterns
	if len(citSrc) == 0 {
		citSrc = defaultCitationPatterns
	}

	e := &Extractor{
		keywords:    lowerAll(keywords),
		reliability: reliability,
		orgPatterns: compileAll(orgSrc),
		citPatterns: compileAll(citSrc),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces the feature set for a signal. It never fails: parsing
// failures degrade the corresponding feature to its default.
func (e *Extractor) Extract(sig signal.Signal) FeatureSet {
	text := sig.FullText()
	now := e.now()

	var fs FeatureSet
	e.extractTextStats(&fs, text)
	e.extractKeywords(&fs, text)
	e.extractSource(&fs, sig)
	e.extractTemporal(&fs, sig, now)
	e.extractEntities(&fs, text)
	e.extractHistorical(&fs)
	e.extractDerived(&fs)
	return fs
}

func (e *Extractor) extractTextStats(fs *FeatureSet, text string) {
	fs.TextLength = len(text)

	words := strings.Fields(text)
	fs.WordCount = len(words)

	for _, frag := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(frag) != "" {
			fs.SentenceCount++
		}
	}

	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len(w)
		}
		fs.AvgWordLength = float64(total) / float64(len(words))
	}
}

func (e *Extractor) extractKeywords(fs *FeatureSet, text string) {
	for _, kw := range e.keywords {
		fs.KeywordMatches += strings.Count(text, kw)
	}
	// The list is all high-priority terms, so the counts coincide.
	fs.HighPriorityKeywords = fs.KeywordMatches
	if fs.WordCount > 0 {
		fs.KeywordDensity = float64(fs.KeywordMatches) / float64(fs.WordCount)
	}
}

func (e *Extractor) extractSource(fs *FeatureSet, sig signal.Signal) {
	fs.SourceType = strings.ToLower(sig.SourceType)
	if score, ok := e.reliability[fs.SourceType]; ok {
		fs.SourceReliabilityScore = score
	} else {
		fs.SourceReliabilityScore = unknownSourceReliability
	}
	// No historical-feedback collaborator yet; accuracy mirrors reliability.
	fs.SourceHistoricalAccuracy = fs.SourceReliabilityScore
}

func (e *Extractor) extractTemporal(fs *FeatureSet, sig signal.Signal, now time.Time) {
	fs.DaysUntilEffective = signal.DaysUntil(sig.EffectiveDate, now)
	fs.DaysUntilDeadline = signal.DaysUntil(sig.CommentsCloseDate, now)
	fs.IsRetroactive = fs.DaysUntilEffective != nil && *fs.DaysUntilEffective < 0
}

func (e *Extractor) extractEntities(fs *FeatureSet, text string) {
	for _, re := range e.orgPatterns {
		fs.OrganizationMentions += len(re.FindAllString(text, -1))
	}
	for _, re := range e.citPatterns {
		fs.RegulationCitations += len(re.FindAllString(text, -1))
	}
	fs.EntityCount = fs.OrganizationMentions + fs.RegulationCitations
}

func (e *Extractor) extractHistorical(fs *FeatureSet) {
	// Neutral defaults until a historical-feedback store is wired in.
	fs.SimilarSignalCount = 0
	fs.HistoricalImpactAvg = 0.5
	fs.AuthorTrackRecord = 0.5
}

func (e *Extractor) extractDerived(fs *FeatureSet) {
	complexity := 0.0
	switch {
	case fs.TextLength > 5000:
		complexity += 0.3
	case fs.TextLength > 1000:
		complexity += 0.2
	}
	switch {
	case fs.RegulationCitations > 3:
		complexity += 0.3
	case fs.RegulationCitations > 0:
		complexity += 0.15
	}
	if fs.AvgWordLength > 6 {
		complexity += 0.2
	}
	fs.ComplexityScore = capUnit(complexity)

	specificity := 0.0
	switch {
	case fs.EntityCount > 5:
		specificity += 0.3
	case fs.EntityCount > 2:
		specificity += 0.15
	}
	if fs.RegulationCitations > 0 {
		specificity += 0.3
	}
	if fs.HasEffectiveDate() {
		specificity += 0.2
	}
	if fs.HasDeadline() {
		specificity += 0.2
	}
	fs.SpecificityScore = capUnit(specificity)
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

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			// Skip invalid patterns
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
