package tabular

import (
	"math"
	"strconv"
	"strings"
)

// Coercer converts raw cell strings into numeric values with deterministic
// rules. Values that cannot be coerced come back as NaN so callers can decide
// whether the column is required.
type Coercer struct{}

// NewCoercer creates a new numeric coercer.
func NewCoercer() *Coercer {
	return &Coercer{}
}

// Missing markers commonly found in exported listing data.
var missingMarkers = map[string]bool{
	"":     true,
	"-":    true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// IsMissing reports whether a raw cell should be treated as absent.
func (c *Coercer) IsMissing(raw string) bool {
	return missingMarkers[strings.ToLower(strings.TrimSpace(raw))]
}

// ParseNumeric attempts to parse a raw cell as a float.
// Handles currency symbols, thousands separators, percentage signs and
// parenthesised negatives. Returns (NaN, false) when the value is missing
// or not numeric.
func (c *Coercer) ParseNumeric(raw string) (float64, bool) {
	if c.IsMissing(raw) {
		return math.NaN(), false
	}

	cleanVal := strings.TrimSpace(raw)

	// Parentheses for negative numbers: (123) -> -123
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimPrefix(cleanVal, "(")
		cleanVal = strings.TrimSuffix(cleanVal, ")")
		isNegative = true
	}

	// Strip currency symbols
	for _, symbol := range []string{"$", "€", "£", "¥", "USD", "EUR", "GBP"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.TrimSpace(cleanVal)

	// Strip percentage sign
	cleanVal = strings.ReplaceAll(cleanVal, "%", "")

	// Commas and spaces act as thousands separators in this dataset
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.ReplaceAll(cleanVal, " ", "")

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return math.NaN(), false
	}
	return val, true
}
