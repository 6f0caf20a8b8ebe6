package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		name     string
		wins     int
		losses   int
		ties     int
		expected float64
	}{
		{"no games played", 0, 0, 0, 0},
		{"all wins", 4, 0, 0, 1},
		{"all losses", 0, 4, 0, 0},
		{"even record", 2, 2, 0, 0.5},
		{"tie counts as half win", 2, 1, 1, 0.625},
		{"rounds to three decimals", 1, 2, 0, 0.333},
		{"rounds up", 2, 1, 0, 0.667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WinPercentage(tt.wins, tt.losses, tt.ties))
		})
	}
}
