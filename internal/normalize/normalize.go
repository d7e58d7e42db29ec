// Package normalize converts single raw spreadsheet cells into canonical
// numeric, date and text values. All functions are pure and never fail:
// a cell that cannot be parsed yields the type's default, but the outcome
// is reported as a distinct Status so callers can tell "genuinely zero"
// from "defaulted".
package normalize

// Status classifies how a raw cell value was resolved
type Status int

const (
	// StatusParsed means the cell carried a value that parsed cleanly
	StatusParsed Status = iota
	// StatusEmpty means the cell was empty, whitespace or null-like
	StatusEmpty
	// StatusMalformed means the cell carried content that did not parse
	StatusMalformed
)

// String returns a readable status name
func (s Status) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusEmpty:
		return "empty"
	case StatusMalformed:
		return "malformed"
	}
	return "unknown"
}
