package dmd

import (
	"errors"
	"regexp"
	"strconv"
)

// Token patterns for DMD data lines. Anything between matches (labels,
// tabs, punctuation) is ignored.
var (
	floatPattern = regexp.MustCompile(`-?\d+\.?\d*(?:[eE][+-]?\d+)?`)
	intPattern   = regexp.MustCompile(`\d+`)
)

// ScanFloats extracts numeric tokens from a line in left-to-right order.
// It accepts bare integers, decimals and scientific notation. A line with
// no numeric tokens yields an empty result, not an error. Tokens beyond
// the float range saturate to an infinity rather than dropping out, so the
// remaining tokens keep their positions.
func ScanFloats(line string) []float64 {
	var out []float64
	for _, tok := range floatPattern.FindAllString(line, -1) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ScanInts extracts unsigned decimal integer tokens from a line in
// left-to-right order. Face and UV indices are always written unsigned.
// Tokens beyond the int range saturate to the maximum value rather than
// dropping out, so the remaining tokens keep their positions.
func ScanInts(line string) []int {
	var out []int
	for _, tok := range intPattern.FindAllString(line, -1) {
		v, err := strconv.ParseInt(tok, 10, strconv.IntSize)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		out = append(out, int(v))
	}
	return out
}
