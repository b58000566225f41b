package features

// DefaultHighPriorityKeywords is the built-in list of domain terms whose
// presence raises a signal's salience. Matching is case-insensitive
// substring matching against the lowered text basis.
func DefaultHighPriorityKeywords() []string {
	return []string{
		"veteran",
		"deadline",
		"final rule",
		"proposed rule",
		"effective immediately",
		"comment period",
		"compliance",
		"mandatory",
		"appropriations",
		"oversight",
		"enforcement",
		"penalty",
		"termination",
		"suspension",
		"eligibility",
	}
}

// DefaultSourceReliability maps lower-cased source types to reliability
// scores in [0,1]. Known sources sit in the 0.80-0.95 band; anything
// unrecognized falls back to 0.50.
func DefaultSourceReliability() map[string]float64 {
	return map[string]float64{
		"federal_register": 0.95,
		"congress_gov":     0.95,
		"gao":              0.90,
		"crs":              0.90,
		"committee":        0.85,
		"agency_press":     0.85,
		"trade_press":      0.80,
		"news":             0.80,
	}
}

// unknownSourceReliability is the fallback for source types not in the table.
const unknownSourceReliability = 0.50

// defaultOrganizationPatterns match federal agencies and congressional
// committees relevant to the monitored portfolio.
var defaultOrganizationPatterns = []string{
	`department of veterans affairs`,
	`veterans (?:health|benefits) administration`,
	`office of (?:management and budget|inspector general)`,
	`government accountability office`,
	`congressional budget office`,
	`(?:house|senate) committee on [a-z' ]+`,
	`committee on veterans' affairs`,
	`\bva\b`,
	`\bomb\b`,
	`\bgao\b`,
}

// defaultCitationPatterns match statutory and regulatory citations. The text
// basis is already lower-cased, so the patterns are written in lower case.
var defaultCitationPatterns = []string{
	`\d+\s+cfr\s+(?:part\s+)?\d+`,
	`\d+\s+u\.s\.c\.\s*§?\s*\d+`,
	`public law\s+\d+-\d+`,
	`\d+\s+fed\.\s*reg\.\s*\d+`,
	`\bh\.r\.\s*\d+`,
	`\bs\.\s*\d+\b`,
}
