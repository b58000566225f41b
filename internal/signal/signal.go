// Package signal defines the raw legislative/regulatory records consumed by
// the scoring and heat-map engines, plus the shared date-parsing helpers.
//
// A Signal is a flat record with optional fields; absence of any field is
// legal and downstream consumers degrade gracefully rather than fail.
package signal

import "strings"

// Kind tags the flavor of a record so kind-specific heuristics can dispatch.
type Kind string

const (
	KindBill    Kind = "bill"
	KindHearing Kind = "hearing"
	KindGeneric Kind = "generic"
)

// Signal is a raw monitored record: a bill, proposed rule, hearing notice,
// or oversight event. All fields are optional.
type Signal struct {
	ID                string `json:"signal_id,omitempty"`
	Title             string `json:"title,omitempty"`
	Summary           string `json:"summary,omitempty"`
	Content           string `json:"content,omitempty"`
	Body              string `json:"body,omitempty"`
	SourceType        string `json:"source_type,omitempty"`
	EffectiveDate     string `json:"effective_date,omitempty"`
	CommentsCloseDate string `json:"comments_close_date,omitempty"`
	PubDate           string `json:"pub_date,omitempty"`
}

// Text returns the record body, preferring content over the legacy body field.
func (s Signal) Text() string {
	if s.Content != "" {
		return s.Content
	}
	return s.Body
}

// FullText returns the lower-cased concatenation of title, summary, and body
// text. This is the sole text basis for all downstream textual analysis.
func (s Signal) FullText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Title, s.Summary, s.Text()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Bill is a tracked piece of legislation as delivered by the acquisition
// pipeline. Only the fields the heat-map heuristics read are modeled.
type Bill struct {
	BillID           string `json:"bill_id,omitempty"`
	Title            string `json:"title,omitempty"`
	LatestActionText string `json:"latest_action_text,omitempty"`
	LatestActionDate string `json:"latest_action_date,omitempty"`
	CosponsorsCount  int    `json:"cosponsors_count,omitempty"`
	PolicyArea       string `json:"policy_area,omitempty"`
	EffectiveDate    string `json:"effective_date,omitempty"`
}

// Hearing is a scheduled committee hearing or markup.
type Hearing struct {
	EventID     string `json:"event_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Committee   string `json:"committee,omitempty"`
	HearingDate string `json:"hearing_date,omitempty"`
}

// Context is a generic issue record for signals that are neither bills nor
// hearings (media events, stakeholder escalations, audit findings).
type Context struct {
	IssueID           string   `json:"issue_id,omitempty"`
	Title             string   `json:"title,omitempty"`
	ReputationRisk    string   `json:"reputation_risk,omitempty"` // low|medium|high|severe
	AffectedWorkflows []string `json:"affected_workflows,omitempty"`
	Date              string   `json:"date,omitempty"`
	Likelihood        int      `json:"likelihood,omitempty"` // optional caller-supplied 1-5
}
