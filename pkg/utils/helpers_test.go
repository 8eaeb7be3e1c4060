package utils

import "testing"

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{21.46, 1, 21.5},
		{-5.04, 1, -5.0},
		{0.005, 2, 0.01},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := RoundTo(tt.value, tt.places); got != tt.want {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.value, tt.places, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		value, min, max, want int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{15, 1, 10, 10},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampInt(%d, %d, %d) = %d, want %d", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}
