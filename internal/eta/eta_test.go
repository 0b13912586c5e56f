package eta

import "testing"

func TestPredict(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		speed    float64
		want     int
	}{
		{"nominal", 150, 30, 300},
		{"zero speed uses default", 150, 0, 450},
		{"negative speed uses default", 150, -10, 450},
		{"fractional minutes truncate", 100, 45, 133},
		{"short hop", 5, 60, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Predict(tt.distance, tt.speed); got != tt.want {
				t.Errorf("Predict(%v, %v) = %d, want %d", tt.distance, tt.speed, got, tt.want)
			}
		})
	}
}
