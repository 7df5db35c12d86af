package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampCores(t *testing.T) {
	assert.Equal(t, MinCores, ClampCores(-3))
	assert.Equal(t, MinCores, ClampCores(0))
	assert.Equal(t, 4, ClampCores(4))
	assert.Equal(t, MaxCores, ClampCores(100))
}

func TestClampRAM(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-4, 1},
		{0, 1},
		{1, 1},
		{3, 2},
		{64, 64},
		{1000, 512},
		{float64(MaxRAM) * 4, float64(MaxRAM)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampRAM(tt.in), "ClampRAM(%v)", tt.in)
	}
}
