package heatmap

import (
	"strings"
	"time"

	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

// Defaults for urgency-days when a record carries no usable date. "No known
// date" must not read as "no urgency".
const (
	defaultBillUrgencyDays    = 90
	defaultHearingUrgencyDays = 14
	defaultGenericUrgencyDays = 30
)

// cosponsorBoostThreshold is the bipartisan-support cutoff above which a
// bill's likelihood rises one level.
const defaultCosponsorThreshold = 50

// billStages maps latest-action phrases to procedural-stage likelihood.
// Checked in order; the first match wins, so later stages come first.
var billStages = []struct {
	phrase string
	level  int
}{
	{"passed", 5},
	{"agreed to", 5},
	{"ordered to be reported", 4},
	{"reported by", 4},
	{"reported to", 4},
	{"markup", 3},
	{"committee consideration", 3},
	{"hearings held", 3},
	{"referred to", 2},
	{"introduced", 1},
}

// assessBillLikelihood derives likelihood from the bill's procedural stage,
// with a bipartisan-support boost for heavily cosponsored bills.
func assessBillLikelihood(b signal.Bill, cosponsorThreshold int) int {
	action := strings.ToLower(b.LatestActionText)
	level := 1
	for _, stage := range billStages {
		if strings.Contains(action, stage.phrase) {
			level = stage.level
			break
		}
	}
	if b.CosponsorsCount >= cosponsorThreshold {
		level++
	}
	return clampLevel(level)
}

// assessBillImpact scores a bill by its title and policy-area vocabulary.
// Study and report bills cap at 3 regardless of their framing.
func assessBillImpact(b signal.Bill) int {
	title := strings.ToLower(b.Title)
	area := strings.ToLower(b.PolicyArea)

	impact := 3
	switch {
	case strings.Contains(title, "comprehensive"):
		impact = 5
	case strings.Contains(title, "reform") || strings.Contains(title, "overhaul"):
		impact = 4
	case strings.Contains(title, "appropriations") || strings.Contains(area, "appropriations"):
		impact = 4
	case strings.Contains(title, "benefits") || strings.Contains(title, "health care") || strings.Contains(title, "healthcare"):
		impact = 4
	case strings.Contains(title, "designation") || strings.Contains(title, "naming") || strings.Contains(title, "renaming"):
		impact = 2
	}
	if strings.Contains(title, "study") || strings.Contains(title, "report") || strings.Contains(title, "commission") {
		if impact > 3 {
			impact = 3
		}
	}
	return clampLevel(impact)
}

// assessHearingLikelihood derives likelihood from the hearing title.
// Scheduled hearings mostly happen; oversight and money hearings raise the
// floor, markups nearly always proceed.
func assessHearingLikelihood(h signal.Hearing) int {
	title := strings.ToLower(h.Title)
	switch {
	case strings.Contains(title, "markup"):
		return 5
	case strings.Contains(title, "oversight"), strings.Contains(title, "appropriations"), strings.Contains(title, "budget"):
		return 4
	default:
		return 3
	}
}

// assessHearingImpact scores a hearing by its title vocabulary.
func assessHearingImpact(h signal.Hearing) int {
	title := strings.ToLower(h.Title)
	switch {
	case strings.Contains(title, "budget"), strings.Contains(title, "appropriations"):
		return 5
	case strings.Contains(title, "investigation"), strings.Contains(title, "failure"), strings.Contains(title, "oversight"):
		return 4
	case strings.Contains(title, "nomination"):
		return 2
	default:
		return 3
	}
}

// assessGenericLikelihood uses the caller-supplied level when present and a
// neutral midpoint otherwise.
func assessGenericLikelihood(c signal.Context) int {
	if c.Likelihood != 0 {
		return clampLevel(c.Likelihood)
	}
	return 3
}

// assessGenericImpact combines the reputational-risk band with the count of
// affected workflows; more workflows raise the floor.
func assessGenericImpact(c signal.Context) int {
	impact := 2
	switch strings.ToLower(c.ReputationRisk) {
	case "severe", "critical":
		impact = 5
	case "high":
		impact = 4
	case "medium":
		impact = 3
	case "low":
		impact = 2
	}
	switch n := len(c.AffectedWorkflows); {
	case n >= 5 && impact < 4:
		impact = 4
	case n >= 2 && impact < 3:
		impact = 3
	}
	return clampLevel(impact)
}

// urgencyDaysOr returns the day delta to the raw date, or the kind-specific
// default when the date is absent or unparsable.
func urgencyDaysOr(raw string, now time.Time, fallback int) int {
	if d := signal.DaysUntil(raw, now); d != nil {
		return *d
	}
	return fallback
}
