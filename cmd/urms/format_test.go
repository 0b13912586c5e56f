package main

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "₹0"},
		{490, "₹490"},
		{4900, "₹4,900"},
		{28700, "₹28,700"},
		{820000, "₹820,000"},
		{1234567, "₹1,234,567"},
		{-4900, "-₹4,900"},
	}
	for _, tt := range tests {
		if got := formatINR(tt.n); got != tt.want {
			t.Errorf("formatINR(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
