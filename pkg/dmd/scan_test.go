package dmd

import (
	"math"
	"reflect"
	"testing"
)

func TestScanFloats(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []float64
	}{
		{"plain triple", "1.0 2.0 3.0", []float64{1, 2, 3}},
		{"tabs and leading whitespace", "\t  1.5\t-2.5   3.25  ", []float64{1.5, -2.5, 3.25}},
		{"bare integers", "1 2 3", []float64{1, 2, 3}},
		{"scientific notation", "1.5e-3 2E+2 3e0", []float64{0.0015, 200, 3}},
		{"label noise ignored", "v: 1.0, 2.0; 3.0", []float64{1, 2, 3}},
		{"overflow saturates without shifting", "1e999 2.0 3.0", []float64{math.Inf(1), 2, 3}},
		{"no tokens", "just words here", nil},
		{"empty line", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanFloats(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanFloats(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScanInts(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []int
	}{
		{"plain triple", "1 2 3", []int{1, 2, 3}},
		{"fixed-width columns", "\t     1      2      3", []int{1, 2, 3}},
		{"sign is not part of the token", "-5 6", []int{5, 6}},
		{"overflow saturates without shifting", "99999999999999999999 2 3", []int{math.MaxInt, 2, 3}},
		{"no tokens", "faces:", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanInts(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanInts(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
