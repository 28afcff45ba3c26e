package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFortuneLongitude(t *testing.T) {
	tests := []struct {
		name           string
		sun, moon, asc float64
		want           float64
	}{
		{"plain sum", 10, 20, 30, 40},
		{"wraps negative", 350, 100, 200, 310},
		{"wraps above 360", 10, 300, 200, 130},
		{"sun equals moon", 100, 100, 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FortuneLongitude(tt.sun, tt.moon, tt.asc)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
}
