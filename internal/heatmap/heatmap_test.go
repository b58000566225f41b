package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/legisignal/internal/signal"
)

var testNow = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return NewGenerator(Config{}, WithClock(func() time.Time { return testNow }))
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		likelihood, impact, urgencyDays int
		want                            float64
	}{
		{4, 5, 5, 40.0},  // <=7 days doubles
		{4, 5, 10, 30.0}, // <=14 days: 1.5x
		{4, 5, 20, 24.0}, // <=30 days: 1.2x
		{4, 5, 60, 20.0}, // beyond a month: no boost
		{4, 5, -3, 40.0}, // overdue counts as immediate
		{1, 1, 90, 1.0},
	}
	for _, tt := range tests {
		got := CalculateScore(tt.likelihood, tt.impact, tt.urgencyDays)
		assert.Equal(t, tt.want, got, "L%d I%d %dd", tt.likelihood, tt.impact, tt.urgencyDays)
	}
}

func TestDetermineQuadrant(t *testing.T) {
	tests := []struct {
		likelihood, impact int
		want               Quadrant
	}{
		{3, 3, QuadrantHighPriority}, // boundary resolves toward visibility
		{5, 5, QuadrantHighPriority},
		{2, 4, QuadrantWatch},
		{1, 5, QuadrantWatch},
		{4, 2, QuadrantMonitor},
		{3, 2, QuadrantMonitor},
		{2, 2, QuadrantLow},
		{2, 3, QuadrantLow}, // low likelihood needs impact >= 4 to make watch
		{1, 1, QuadrantLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetermineQuadrant(tt.likelihood, tt.impact), "L%d I%d", tt.likelihood, tt.impact)
	}
}

func TestNewIssueClamps(t *testing.T) {
	iss := NewIssue("i1", "out of range", 9, 0, 60)
	assert.Equal(t, 5, iss.Likelihood)
	assert.Equal(t, 1, iss.Impact)
	assert.Equal(t, 5.0, iss.Score)
	assert.Equal(t, QuadrantMonitor, iss.Quadrant)
}

func TestBillAssessment(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("passed bill with broad support", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{
			BillID:           "hr-1234",
			Title:            "Some Act",
			LatestActionText: "Passed House",
			CosponsorsCount:  100,
		}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].Likelihood)
	})

	t.Run("introduced bill", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{LatestActionText: "Introduced in Senate"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 1, hm.Issues[0].Likelihood)
	})

	t.Run("cosponsor boost raises one level", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{LatestActionText: "Referred to Committee", CosponsorsCount: 75}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 3, hm.Issues[0].Likelihood)
	})

	t.Run("comprehensive reform is maximal impact", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{Title: "Comprehensive Veterans Benefits Reform Act"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].Impact)
	})

	t.Run("study bills cap at three", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{Title: "Veterans Benefits Reform Study Act"}})
		require.Len(t, hm.Issues, 1)
		assert.LessOrEqual(t, hm.Issues[0].Impact, 3)
	})

	t.Run("undated bill gets the 90 day default", func(t *testing.T) {
		hm := g.FromBills([]signal.Bill{{Title: "Some Act"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 90, hm.Issues[0].UrgencyDays)
	})
}

func TestHearingAssessment(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("budget hearing is maximal impact", func(t *testing.T) {
		hm := g.FromHearings([]signal.Hearing{{Title: "FY2027 VA Budget Review"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].Impact)
	})

	t.Run("investigation floor", func(t *testing.T) {
		hm := g.FromHearings([]signal.Hearing{{Title: "Investigation into Claims Backlog"}})
		require.Len(t, hm.Issues, 1)
		assert.GreaterOrEqual(t, hm.Issues[0].Impact, 4)
	})

	t.Run("oversight raises likelihood floor", func(t *testing.T) {
		hm := g.FromHearings([]signal.Hearing{{Title: "Oversight of Electronic Health Records"}})
		require.Len(t, hm.Issues, 1)
		assert.GreaterOrEqual(t, hm.Issues[0].Likelihood, 4)
	})

	t.Run("undated hearing gets the 14 day default", func(t *testing.T) {
		hm := g.FromHearings([]signal.Hearing{{Title: "Member Day"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 14, hm.Issues[0].UrgencyDays)
	})

	t.Run("dated hearing uses the real delta", func(t *testing.T) {
		hm := g.FromHearings([]signal.Hearing{{Title: "Member Day", HearingDate: "2026-09-05"}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].UrgencyDays)
	})
}

func TestGenericAssessment(t *testing.T) {
	g := newTestGenerator(t)

	t.Run("severe reputation risk", func(t *testing.T) {
		hm := g.Generate(Input{Contexts: []signal.Context{{
			IssueID:        "ctx-1",
			Title:          "Data exposure coverage",
			ReputationRisk: "severe",
		}}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].Impact)
		assert.Equal(t, 3, hm.Issues[0].Likelihood)
	})

	t.Run("workflow count raises the floor", func(t *testing.T) {
		hm := g.Generate(Input{Contexts: []signal.Context{{
			ReputationRisk:    "low",
			AffectedWorkflows: []string{"claims", "appeals", "payments", "enrollment", "scheduling"},
		}}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 4, hm.Issues[0].Impact)
	})

	t.Run("caller supplied likelihood wins", func(t *testing.T) {
		hm := g.Generate(Input{Contexts: []signal.Context{{Likelihood: 5}}})
		require.Len(t, hm.Issues, 1)
		assert.Equal(t, 5, hm.Issues[0].Likelihood)
	})
}

func TestGenerateEmptyInput(t *testing.T) {
	hm := newTestGenerator(t).Generate(Input{})

	assert.NotEmpty(t, hm.ID)
	assert.Equal(t, testNow, hm.GeneratedDate)
	assert.Equal(t, 0, hm.Total)
	assert.Empty(t, hm.Issues)
	assert.Empty(t, hm.HighPriority())
}

func TestGenerateMixedInput(t *testing.T) {
	g := newTestGenerator(t)

	hm := g.Generate(Input{
		Bills:    []signal.Bill{{BillID: "hr-1", Title: "Comprehensive Care Reform Act", LatestActionText: "Passed Senate"}},
		Hearings: []signal.Hearing{{EventID: "ev-1", Title: "FY2027 Budget Hearing", HearingDate: "2026-09-04"}},
		Contexts: []signal.Context{{IssueID: "ctx-1", Title: "Routine media query", ReputationRisk: "low"}},
		Existing: []Issue{NewIssue("old-1", "carried issue", 4, 4, 3)},
	})

	assert.Equal(t, 4, hm.Total)
	assert.Len(t, hm.Issues, 4)

	sum := 0
	for _, n := range hm.QuadrantCount {
		sum += n
	}
	assert.Equal(t, hm.Total, sum)
}

func TestHighPrioritySortedByScore(t *testing.T) {
	hm := HeatMap{
		Issues: []Issue{
			NewIssue("a", "a", 3, 3, 60), // 9.0
			NewIssue("b", "b", 5, 5, 3),  // 50.0
			NewIssue("c", "c", 2, 2, 3),  // low quadrant
			NewIssue("d", "d", 4, 4, 20), // 19.2
			NewIssue("e", "e", 3, 3, 60), // 9.0, ties with a, stays after it
		},
	}

	high := hm.HighPriority()
	require.Len(t, high, 4)
	assert.Equal(t, []string{"b", "d", "a", "e"}, []string{high[0].IssueID, high[1].IssueID, high[2].IssueID, high[3].IssueID})
}

func TestRender(t *testing.T) {
	g := newTestGenerator(t)
	hm := g.Generate(Input{
		Bills:    []signal.Bill{{BillID: "hr-1", Title: "Comprehensive Care Reform Act", LatestActionText: "Passed Senate"}},
		Contexts: []signal.Context{{IssueID: "ctx-1", Title: "Routine media query", ReputationRisk: "low", Likelihood: 2}},
	})

	out := hm.Render()
	assert.Contains(t, out, "HIGH PRIORITY")
	assert.Contains(t, out, "Comprehensive Care Reform Act")
	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "Routine media query")
}
