package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodies_FixedOrder(t *testing.T) {
	want := []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

	assert.Equal(t, want, Bodies())
	// Deterministic output ordering depends on this never changing.
	assert.Equal(t, want, Bodies())
}

func TestBody_String(t *testing.T) {
	tests := []struct {
		body Body
		want string
	}{
		{Sun, "Sun"},
		{Moon, "Moon"},
		{Mercury, "Mercury"},
		{Venus, "Venus"},
		{Mars, "Mars"},
		{Jupiter, "Jupiter"},
		{Saturn, "Saturn"},
		{Body(99), "Unknown"},
		{Body(-1), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.body.String())
	}
}
