package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAmountCurrencyFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		status   Status
	}{
		{"91,102,303.30", 91102303.30, StatusParsed},
		{"₹ 75,000,000.00", 75000000.00, StatusParsed},
		{"$1,234.56", 1234.56, StatusParsed},
		{"  45500000  ", 45500000, StatusParsed},
		{"0", 0, StatusParsed},
		{"-500.25", -500.25, StatusParsed},
	}

	for _, test := range tests {
		result := Amount(test.input)
		assert.Equal(t, test.status, result.Status, "status for %q", test.input)
		assert.InDelta(t, test.expected, result.Value, 0.001, "value for %q", test.input)
	}
}

func TestAmountAccountingNegative(t *testing.T) {
	result := Amount("(1,234.50)")
	assert.Equal(t, StatusParsed, result.Status)
	assert.InDelta(t, -1234.50, result.Value, 0.001)
}

func TestAmountEmptyAndNullLike(t *testing.T) {
	for _, input := range []string{"", "   ", "NA", "n/a", "NaN", "None", "null", "-"} {
		result := Amount(input)
		assert.Equal(t, StatusEmpty, result.Status, "input %q", input)
		assert.Zero(t, result.Value, "input %q", input)
	}
}

func TestAmountMalformed(t *testing.T) {
	for _, input := range []string{"abc", "12.3.4", "1,2,3x", "Inf", "--5"} {
		result := Amount(input)
		assert.Equal(t, StatusMalformed, result.Status, "input %q", input)
		assert.Zero(t, result.Value, "malformed input must collapse to zero: %q", input)
	}
}

func TestDateDayFirstOrdering(t *testing.T) {
	// 01/02/2024 is the 1st of February in the sheet's locale
	result := Date("01/02/2024")
	assert.True(t, result.Valid())
	assert.Equal(t, time.February, result.Time.Month())
	assert.Equal(t, 1, result.Time.Day())
	assert.Equal(t, 2024, result.Time.Year())
}

func TestDateFormats(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15-01-2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15.01.2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15/01/24", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 Jan 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 January 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		result := Date(test.input)
		assert.True(t, result.Valid(), "input %q", test.input)
		assert.True(t, result.Time.Equal(test.expected), "input %q parsed as %s", test.input, result.Time)
	}
}

func TestDateAbsentAndMalformed(t *testing.T) {
	assert.Equal(t, StatusEmpty, Date("").Status)
	assert.Equal(t, StatusEmpty, Date("NA").Status)
	assert.Equal(t, StatusMalformed, Date("not a date").Status)
	assert.Equal(t, StatusMalformed, Date("32/13/2024").Status)
	assert.False(t, Date("garbage").Valid())
}

func TestIntCoercion(t *testing.T) {
	assert.Equal(t, 2024, Int("2024").Value)
	assert.Equal(t, 2024, Int("2024.0").Value)
	assert.Equal(t, 2023, Int("2023.9").Value) // truncation, not rounding
	assert.Equal(t, 1250, Int("1,250").Value)

	assert.Equal(t, StatusEmpty, Int("").Status)
	assert.Equal(t, StatusMalformed, Int("twenty").Status)
	assert.Zero(t, Int("twenty").Value)
}

func TestCategorical(t *testing.T) {
	assert.Equal(t, "Completed", Categorical("  completed "))
	assert.Equal(t, "In Progress", Categorical("in progress"))
	assert.Equal(t, "Cash And Online", Categorical("CASH AND ONLINE"))
	assert.Equal(t, "Unknown", Categorical(""))
	assert.Equal(t, "Unknown", Categorical("   "))
	assert.Equal(t, "Unknown", Categorical("N/A"))
}

func TestFreeTextPreservesCasing(t *testing.T) {
	assert.Equal(t, "ABC Industries", FreeText("  ABC Industries  "))
	assert.Equal(t, "WO001", FreeText("WO001"))
	assert.Equal(t, "", FreeText("NA"))
	assert.Equal(t, "", FreeText("   "))
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello world", "Hello World"},
		{"HELLO WORLD", "Hello World"},
		{"in-progress", "In-Progress"},
		{"a1b", "A1B"}, // letter after a digit restarts a word
		{"", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, TitleCase(test.input), "input %q", test.input)
	}
}
