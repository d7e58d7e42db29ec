package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AmountResult is the outcome of normalizing a monetary cell
type AmountResult struct {
	Value  float64
	Status Status
}

// currencyGlyphs strips the Rupee sign, the dollar sign, grouping commas
// and all whitespace in one pass, matching the sheet's Indian currency
// formatting ("₹ 91,102,303.30")
var currencyGlyphs = regexp.MustCompile(`[₹$,\s]`)

// nullLike are cell values that spreadsheets emit for absent numbers
var nullLike = map[string]bool{
	"na": true, "n/a": true, "nan": true, "none": true, "null": true, "-": true,
}

// Amount converts a raw monetary cell into a float. Empty or null-like
// input is zero. A value wholly wrapped in parentheses is negative (the
// accounting convention). Anything that still fails to parse is zero with
// StatusMalformed - a bad cell is unknown, never fatal.
func Amount(raw string) AmountResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || nullLike[strings.ToLower(trimmed)] {
		return AmountResult{Value: 0, Status: StatusEmpty}
	}

	clean := currencyGlyphs.ReplaceAllString(trimmed, "")
	if clean == "" {
		return AmountResult{Value: 0, Status: StatusEmpty}
	}

	// Accounting negatives: (1234.50) -> -1234.50
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = "-" + clean[1:len(clean)-1]
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return AmountResult{Value: 0, Status: StatusMalformed}
	}

	return AmountResult{Value: val, Status: StatusParsed}
}
