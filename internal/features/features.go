// Package features converts raw signal records into structured feature sets
// used by the scoring engine. Extraction is total: malformed input degrades
// the corresponding feature to its default rather than failing.
package features

// FeatureSet is the extractor's output. It is immutable once produced; every
// bounded field stays within its documented interval regardless of input.
type FeatureSet struct {
	// Text statistics.
	TextLength    int     `json:"text_length"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	AvgWordLength float64 `json:"avg_word_length"`

	// Keyword features.
	KeywordMatches       int     `json:"keyword_matches"`
	KeywordDensity       float64 `json:"keyword_density"`
	HighPriorityKeywords int     `json:"high_priority_keywords"`

	// Source features.
	SourceType               string  `json:"source_type"`
	SourceReliabilityScore   float64 `json:"source_reliability_score"`
	SourceHistoricalAccuracy float64 `json:"source_historical_accuracy"`

	// Temporal features. Nil means unknown, which is distinct from zero.
	DaysUntilEffective *int `json:"days_until_effective,omitempty"`
	DaysUntilDeadline  *int `json:"days_until_deadline,omitempty"`
	IsRetroactive      bool `json:"is_retroactive"`

	// Entity features.
	OrganizationMentions int `json:"organization_mentions"`
	RegulationCitations  int `json:"regulation_citations"`
	EntityCount          int `json:"entity_count"`

	// Historical features. Neutral defaults until a feedback store exists.
	SimilarSignalCount  int     `json:"similar_signal_count"`
	HistoricalImpactAvg float64 `json:"historical_impact_avg"`
	AuthorTrackRecord   float64 `json:"author_track_record"`

	// Derived features, computed last from everything above.
	ComplexityScore  float64 `json:"complexity_score"`
	SpecificityScore float64 `json:"specificity_score"`
}

// HasEffectiveDate reports whether the effective date parsed.
func (f FeatureSet) HasEffectiveDate() bool { return f.DaysUntilEffective != nil }

// HasDeadline reports whether the comment-close date parsed.
func (f FeatureSet) HasDeadline() bool { return f.DaysUntilDeadline != nil }
