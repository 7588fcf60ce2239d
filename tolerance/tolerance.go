// Package tolerance extracts the general-tolerance table from a drawing's
// free text.
//
// A drawing's title block typically carries a block like:
//
//	UNLESS OTHERWISE SPECIFIED TOLERANCES ARE:
//	FRACTIONAL: 1/64
//	TWO PLACE DECIMAL: .010
//	THREE PLACE DECIMAL: .005
//
// [Parse] scans page texts for the marker word TOLERANCE; the first page
// containing it wins and later pages are never merged in. One fixed
// labeled-value pattern is applied per tolerance class; fractions convert to
// decimals. A class absent from the text is simply omitted - no defaults are
// synthesized.
package tolerance

import (
	"regexp"
	"strconv"
	"strings"
)

// Class identifies one general-tolerance class.
type Class string

// The four tolerance classes found on drawing sheets.
const (
	Fractional   Class = "FRACTIONAL"
	OneDecimal   Class = "ONE_DECIMAL"
	TwoDecimal   Class = "TWO_DECIMAL"
	ThreeDecimal Class = "THREE_DECIMAL"
)

// Table maps each tolerance class found on the drawing to its decimal value.
// An absent class means not found, never zero.
type Table map[Class]float64

// Marker is the word whose presence selects the page holding the
// general-tolerance block.
const Marker = "TOLERANCE"

var (
	fractionalPattern   = regexp.MustCompile(`FRACTIONAL\s*[:\-]?\s*(\d+)\s*/\s*(\d+)`)
	oneDecimalPattern   = regexp.MustCompile(`ONE\s+(?:PL\.?|PLACE)?\s*DECIMAL\s*[:\-]?\s*([\d/.]+)`)
	twoDecimalPattern   = regexp.MustCompile(`TWO\s+(?:PL\.?|PLACE)?\s*DECIMAL\s*[:\-]?\s*([\d.]+)`)
	threeDecimalPattern = regexp.MustCompile(`THREE\s+(?:PL\.?|PLACE)?\s*DECIMAL\s*[:\-]?\s*([\d.]+)`)
)

// Parse scans the given page texts in order and extracts the
// general-tolerance table from the first page mentioning the marker word.
// The result may be empty but is never nil.
func Parse(pageTexts []string) Table {
	var text string
	for _, t := range pageTexts {
		upper := strings.ToUpper(t)
		if strings.Contains(upper, Marker) {
			text = upper
			break
		}
	}

	table := make(Table)

	if m := fractionalPattern.FindStringSubmatch(text); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil && den != 0 {
			table[Fractional] = num / den
		}
	}
	if m := oneDecimalPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseValue(m[1]); ok {
			table[OneDecimal] = v
		}
	}
	if m := twoDecimalPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseValue(m[1]); ok {
			table[TwoDecimal] = v
		}
	}
	if m := threeDecimalPattern.FindStringSubmatch(text); m != nil {
		if v, ok := parseValue(m[1]); ok {
			table[ThreeDecimal] = v
		}
	}

	return table
}

// parseValue converts a captured value, either plain decimal or
// numerator/denominator, to a float.
func parseValue(s string) (float64, bool) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
