package signal

import "time"

// dateFormats is the ordered list of accepted date layouts. The first layout
// that parses wins; anything else is treated as unknown, never an error.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"January 2, 2006",
}

// ParseDate parses a raw date string against the accepted layouts.
// It returns ok=false for empty or unparsable input.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the signed whole-day delta from now to the raw date, or
// nil when the date is absent or unparsable. Negative values are in the past.
func DaysUntil(raw string, now time.Time) *int {
	t, ok := ParseDate(raw)
	if !ok {
		return nil
	}
	days := int(t.Sub(now).Hours() / 24)
	return &days
}
