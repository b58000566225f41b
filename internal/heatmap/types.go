// Package heatmap ranks heterogeneous issues (bills, hearings, generic
// contexts) on a likelihood x impact priority map, weighted by how soon each
// issue's next time-sensitive event lands.
package heatmap

import (
	"time"
)

// Quadrant is one of the four priority buckets on the 2x2 map.
type Quadrant string

const (
	QuadrantHighPriority Quadrant = "high_priority"
	QuadrantWatch        Quadrant = "watch"
	QuadrantMonitor      Quadrant = "monitor"
	QuadrantLow          Quadrant = "low"
)

// Issue is one assessed item on the heat map. Immutable after construction
// via NewIssue.
type Issue struct {
	IssueID     string   `json:"issue_id"`
	Title       string   `json:"title"`
	Likelihood  int      `json:"likelihood"`   // 1-5
	Impact      int      `json:"impact"`       // 1-5
	UrgencyDays int      `json:"urgency_days"` // may be negative
	Score       float64  `json:"score"`
	Quadrant    Quadrant `json:"quadrant"`
}

// NewIssue builds an issue, clamping likelihood and impact to the 1-5 scale
// and deriving the score and quadrant.
func NewIssue(id, title string, likelihood, impact, urgencyDays int) Issue {
	likelihood = clampLevel(likelihood)
	impact = clampLevel(impact)
	return Issue{
		IssueID:     id,
		Title:       title,
		Likelihood:  likelihood,
		Impact:      impact,
		UrgencyDays: urgencyDays,
		Score:       CalculateScore(likelihood, impact, urgencyDays),
		Quadrant:    DetermineQuadrant(likelihood, impact),
	}
}

// CalculateScore is likelihood x impact x urgency multiplier. The multiplier
// makes near-term events disproportionately visible even when the raw
// product is moderate.
func CalculateScore(likelihood, impact, urgencyDays int) float64 {
	return float64(likelihood*impact) * urgencyMultiplier(urgencyDays)
}

func urgencyMultiplier(urgencyDays int) float64 {
	switch {
	case urgencyDays <= 7:
		return 2.0
	case urgencyDays <= 14:
		return 1.5
	case urgencyDays <= 30:
		return 1.2
	default:
		return 1.0
	}
}

// DetermineQuadrant splits the 1-5 scale at its midpoint. The (3,3) boundary
// resolves to high priority: the tie-break favors visibility.
func DetermineQuadrant(likelihood, impact int) Quadrant {
	switch {
	case likelihood >= 3 && impact >= 3:
		return QuadrantHighPriority
	case likelihood < 3 && impact >= 4:
		return QuadrantWatch
	case likelihood >= 3:
		return QuadrantMonitor
	default:
		return QuadrantLow
	}
}

// HeatMap is an ordered collection of issues plus derived summary counts.
// It owns its issues exclusively.
type HeatMap struct {
	ID            string           `json:"heat_map_id"`
	GeneratedDate time.Time        `json:"generated_date"`
	Issues        []Issue          `json:"issues"`
	Total         int              `json:"total"`
	QuadrantCount map[Quadrant]int `json:"quadrant_counts"`
}

// HighPriority returns the high-priority issues sorted by score descending.
// Ties keep stable input order.
func (h *HeatMap) HighPriority() []Issue {
	return h.byQuadrant(QuadrantHighPriority)
}

func (h *HeatMap) byQuadrant(q Quadrant) []Issue {
	var out []Issue
	for _, iss := range h.Issues {
		if iss.Quadrant == q {
			out = append(out, iss)
		}
	}
	sortByScoreDesc(out)
	return out
}

func clampLevel(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
