package heatmap

import (
	"fmt"
	"strings"
)

// quadrantOrder is the rendering order, most consequential first.
var quadrantOrder = []Quadrant{
	QuadrantHighPriority,
	QuadrantWatch,
	QuadrantMonitor,
	QuadrantLow,
}

var quadrantLabels = map[Quadrant]string{
	QuadrantHighPriority: "HIGH PRIORITY (act now)",
	QuadrantWatch:        "WATCH (high impact, lower likelihood)",
	QuadrantMonitor:      "MONITOR (likely, lower impact)",
	QuadrantLow:          "LOW (routine)",
}

// Render produces the plain-text brief form of the heat map, grouped by
// quadrant. Presentation only; it does not feed back into scoring.
func (h *HeatMap) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Priority heat map %s — %d issue(s), generated %s\n",
		h.ID, h.Total, h.GeneratedDate.Format("2006-01-02"))

	for _, q := range quadrantOrder {
		issues := h.byQuadrant(q)
		if len(issues) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", quadrantLabels[q])
		for _, iss := range issues {
			fmt.Fprintf(&b, "  [%5.1f] %s (L%d/I%d, %s)\n",
				iss.Score, iss.Title, iss.Likelihood, iss.Impact, formatUrgency(iss.UrgencyDays))
		}
	}
	return b.String()
}

func formatUrgency(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day out"
	default:
		return fmt.Sprintf("%d days out", days)
	}
}
