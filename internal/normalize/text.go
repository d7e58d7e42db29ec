package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// IntResult is the outcome of normalizing an integer cell (e.g. a year)
type IntResult struct {
	Value  int
	Status Status
}

// Int coerces a raw cell to an integer. Sheets frequently hand back years
// as "2024.0", so the value is parsed as a float first and truncated.
// Unparseable input is zero with StatusMalformed.
func Int(raw string) IntResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || nullLike[strings.ToLower(trimmed)] {
		return IntResult{Value: 0, Status: StatusEmpty}
	}

	val, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return IntResult{Value: 0, Status: StatusMalformed}
	}

	return IntResult{Value: int(val), Status: StatusParsed}
}

// Categorical trims a status-like cell and title-cases it, defaulting to
// "Unknown" for empty input. Title-casing uppercases the first letter of
// every word and lowers the rest ("cash and online" -> "Cash And Online").
func Categorical(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || nullLike[strings.ToLower(trimmed)] {
		return "Unknown"
	}
	return TitleCase(trimmed)
}

// FreeText trims a free-text cell without any case transform - client
// names and reference numbers carry meaningful casing (acronyms)
func FreeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if nullLike[strings.ToLower(trimmed)] {
		return ""
	}
	return trimmed
}

// TitleCase uppercases each letter that follows a non-letter and lowers
// everything else
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
