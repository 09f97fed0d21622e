package domain

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.005, 1.01}, // half up, not banker's rounding
		{2.675, 2.68},
		{1.004, 1.0},
		{-1.005, -1.01},
		{19.999, 20.0},
		{0.1 + 0.2, 0.3},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLineAmount(t *testing.T) {
	cases := []struct {
		name     string
		quantity float64
		rate     float64
		want     float64
	}{
		{"whole numbers", 2, 100, 200},
		{"fractional result", 1.5, 99.99, 149.99},
		{"rounds half up", 3, 33.335, 100.01},
		{"zero quantity", 0, 100, 0},
		{"negative quantity clamps to zero", -2, 100, 0},
		{"negative rate clamps to zero", 2, -50, 0},
		{"NaN quantity clamps to zero", math.NaN(), 100, 0},
		{"infinite rate clamps to zero", 2, math.Inf(1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LineAmount(tc.quantity, tc.rate); got != tc.want {
				t.Errorf("LineAmount(%v, %v) = %v, want %v", tc.quantity, tc.rate, got, tc.want)
			}
		})
	}
}
