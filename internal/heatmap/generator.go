package heatmap

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

// Config holds the generator's tunables. Zero values fall back to defaults.
type Config struct {
	CosponsorThreshold int `json:"cosponsor_threshold" koanf:"cosponsor_threshold"`
	BillUrgencyDays    int `json:"bill_urgency_days" koanf:"bill_urgency_days"`
	HearingUrgencyDays int `json:"hearing_urgency_days" koanf:"hearing_urgency_days"`
	GenericUrgencyDays int `json:"generic_urgency_days" koanf:"generic_urgency_days"`
}

func (c Config) withDefaults() Config {
	if c.CosponsorThreshold == 0 {
		c.CosponsorThreshold = defaultCosponsorThreshold
	}
	if c.BillUrgencyDays == 0 {
		c.BillUrgencyDays = defaultBillUrgencyDays
	}
	if c.HearingUrgencyDays == 0 {
		c.HearingUrgencyDays = defaultHearingUrgencyDays
	}
	if c.GenericUrgencyDays == 0 {
		c.GenericUrgencyDays = defaultGenericUrgencyDays
	}
	return c
}

// assessment is one kind's likelihood/impact/urgency verdict for a record.
type assessment struct {
	id          string
	title       string
	likelihood  int
	impact      int
	urgencyDays int
}

// assessor turns one raw record into an assessment. The generator keeps a
// closed strategy table of assessors keyed by signal kind, so adding a new
// kind is a localized extension.
type assessor func(g *Generator, record any, now time.Time) (assessment, bool)

// Generator builds heat maps from heterogeneous records. It holds only
// read-only configuration and is safe for concurrent use.
type Generator struct {
	cfg       Config
	assessors map[signal.Kind]assessor
	now       func() time.Time
}

// Option customizes Generator construction.
type Option func(*Generator)

// WithClock overrides the time source used for urgency deltas.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator builds a generator with the default assessor table.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg: cfg.withDefaults(),
		now: time.Now,
	}
	g.assessors = map[signal.Kind]assessor{
		signal.KindBill:    assessBill,
		signal.KindHearing: assessHearing,
		signal.KindGeneric: assessGeneric,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func assessBill(g *Generator, record any, now time.Time) (assessment, bool) {
	b, ok := record.(signal.Bill)
	if !ok {
		return assessment{}, false
	}
	date := b.EffectiveDate
	if date == "" {
		date = b.LatestActionDate
	}
	return assessment{
		id:          b.BillID,
		title:       b.Title,
		likelihood:  assessBillLikelihood(b, g.cfg.CosponsorThreshold),
		impact:      assessBillImpact(b),
		urgencyDays: urgencyDaysOr(date, now, g.cfg.BillUrgencyDays),
	}, true
}

func assessHearing(g *Generator, record any, now time.Time) (assessment, bool) {
	h, ok := record.(signal.Hearing)
	if !ok {
		return assessment{}, false
	}
	return assessment{
		id:          h.EventID,
		title:       h.Title,
		likelihood:  assessHearingLikelihood(h),
		impact:      assessHearingImpact(h),
		urgencyDays: urgencyDaysOr(h.HearingDate, now, g.cfg.HearingUrgencyDays),
	}, true
}

func assessGeneric(g *Generator, record any, now time.Time) (assessment, bool) {
	c, ok := record.(signal.Context)
	if !ok {
		return assessment{}, false
	}
	return assessment{
		id:          c.IssueID,
		title:       c.Title,
		likelihood:  assessGenericLikelihood(c),
		impact:      assessGenericImpact(c),
		urgencyDays: urgencyDaysOr(c.Date, now, g.cfg.GenericUrgencyDays),
	}, true
}

// Input bundles the heterogeneous records a heat map is built from, plus
// optional pre-assessed issues to merge.
type Input struct {
	Bills    []signal.Bill    `json:"bills,omitempty"`
	Hearings []signal.Hearing `json:"hearings,omitempty"`
	Contexts []signal.Context `json:"contexts,omitempty"`
	Existing []Issue          `json:"existing,omitempty"`
}

// Generate builds a heat map from the input. Issues are assessed
// independently; there is no cross-issue normalization. Empty input yields a
// valid empty map.
func (g *Generator) Generate(in Input) HeatMap {
	now := g.now()

	var issues []Issue
	for _, b := range in.Bills {
		issues = append(issues, g.assessRecord(signal.KindBill, b, now)...)
	}
	for _, h := range in.Hearings {
		issues = append(issues, g.assessRecord(signal.KindHearing, h, now)...)
	}
	for _, c := range in.Contexts {
		issues = append(issues, g.assessRecord(signal.KindGeneric, c, now)...)
	}
	issues = append(issues, in.Existing...)

	hm := HeatMap{
		ID:            uuid.NewString(),
		GeneratedDate: now,
		Issues:        issues,
		Total:         len(issues),
		QuadrantCount: map[Quadrant]int{},
	}
	for _, iss := range issues {
		hm.QuadrantCount[iss.Quadrant]++
	}
	return hm
}

// FromBills is a convenience for bill-only heat maps.
func (g *Generator) FromBills(bills []signal.Bill) HeatMap {
	return g.Generate(Input{Bills: bills})
}

// FromHearings is a convenience for hearing-only heat maps.
func (g *Generator) FromHearings(hearings []signal.Hearing) HeatMap {
	return g.Generate(Input{Hearings: hearings})
}

func (g *Generator) assessRecord(kind signal.Kind, record any, now time.Time) []Issue {
	assess, ok := g.assessors[kind]
	if !ok {
		return nil
	}
	a, ok := assess(g, record, now)
	if !ok {
		return nil
	}
	return []Issue{NewIssue(a.id, a.title, a.likelihood, a.impact, a.urgencyDays)}
}

// sortByScoreDesc sorts issues by score descending, keeping stable input
// order on ties.
func sortByScoreDesc(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Score > issues[j].Score
	})
}
