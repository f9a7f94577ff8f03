package deduction

import (
	"math"
	"testing"
)

// The published minute chart, repeated here so a typo in the production
// table cannot silently pass.
var wantMinuteFraction = [61]float64{
	0.000, 0.002, 0.004, 0.006, 0.007, 0.009, 0.011, 0.013, 0.015, 0.017,
	0.019, 0.020, 0.022, 0.024, 0.026, 0.028, 0.030, 0.031, 0.033, 0.035,
	0.037, 0.039, 0.041, 0.043, 0.044, 0.046, 0.048, 0.050, 0.052, 0.054,
	0.056, 0.065, 0.067, 0.069, 0.071, 0.073, 0.075, 0.077, 0.079, 0.081,
	0.083, 0.085, 0.087, 0.090, 0.092, 0.094, 0.096, 0.098, 0.100, 0.102,
	0.104, 0.106, 0.108, 0.110, 0.113, 0.115, 0.117, 0.119, 0.121, 0.123,
	0.125,
}

func TestFractionMinuteChart(t *testing.T) {
	for m := 0; m <= 60; m++ {
		got := Fraction(0, m)
		if got != wantMinuteFraction[m] {
			t.Errorf("Fraction(0, %d) = %v, want %v", m, got, wantMinuteFraction[m])
		}
	}
}

func TestFractionMinuteChartMonotonic(t *testing.T) {
	prev := Fraction(0, 0)
	for m := 1; m <= 60; m++ {
		got := Fraction(0, m)
		if got < prev {
			t.Errorf("Fraction(0, %d) = %v decreased from %v", m, got, prev)
		}
		prev = got
	}
}

func TestFractionHoursLinear(t *testing.T) {
	for h := 0; h <= 8; h++ {
		want := float64(h) * 0.125
		if got := Fraction(h, 0); got != want {
			t.Errorf("Fraction(%d, 0) = %v, want %v", h, got, want)
		}
	}
}

func TestFractionClampsOutOfRange(t *testing.T) {
	cases := []struct {
		hours, minutes int
		want           float64
	}{
		{9, 0, 1.0},     // hours capped at 8
		{100, 0, 1.0},   // hours capped at 8
		{0, 61, 0.125},  // minutes capped at 60
		{0, 999, 0.125}, // minutes capped at 60
		{-1, -5, 0.0},   // negatives clamp to zero
		{8, 60, 1.125},  // both at the cap
	}
	for _, c := range cases {
		if got := Fraction(c.hours, c.minutes); got != c.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", c.hours, c.minutes, got, c.want)
		}
	}
}

func TestFractionFromMinutes(t *testing.T) {
	cases := []struct {
		total int
		want  float64
	}{
		{0, 0},
		{15, 0.028},
		{30, 0.056},
		{31, 0.065},
		{60, 0.125},
		{75, 0.153}, // 1h + 15m = 0.125 + 0.028
		{-10, 0},
	}
	for _, c := range cases {
		got := FractionFromMinutes(c.total)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("FractionFromMinutes(%d) = %v, want %v", c.total, got, c.want)
		}
	}
}
