package normalize

import (
	"strings"
	"time"
)

// DateResult is the outcome of normalizing a date cell. Time is the zero
// value unless Status is StatusParsed.
type DateResult struct {
	Time   time.Time
	Status Status
}

// Valid reports whether the cell resolved to an actual date
func (d DateResult) Valid() bool {
	return d.Status == StatusParsed
}

// dateFormats are tried in order. The sheet locale writes day before
// month, so 01/02/2024 is the 1st of February, never January 2nd.
var dateFormats = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2 Jan 2006",
	"2 January 2006",
	"2006-01-02",
}

// Date parses a raw date cell with day-before-month ordering. Unparseable
// input yields an absent marker, never an error.
func Date(raw string) DateResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || nullLike[strings.ToLower(trimmed)] {
		return DateResult{Status: StatusEmpty}
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return DateResult{Time: t, Status: StatusParsed}
		}
	}

	return DateResult{Status: StatusMalformed}
}
