package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{3.5, 0, 4},
		{0.125, 2, 0.13},
		{-0.125, 2, -0.13},
		{1234.5678, 2, 1234.57},
		{1234.5678, -2, 1200},
		{7, 3, 7},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.x, tt.places), 1e-9, "Round(%v, %d)", tt.x, tt.places)
	}
}

func TestRoundZeroHasNoSign(t *testing.T) {
	got := Round(math.Copysign(0, -1), 2)
	assert.False(t, math.Signbit(got))

	got = Round(-0.001, 2)
	assert.Equal(t, 0.0, got)
}

func TestRoundUsesStoredBinaryValue(t *testing.T) {
	// 1.005 is stored as 1.00499999999999989...
	got, err := ConvertLength(1.005, "m", "m", 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, got)
	assert.InDelta(t, 1.01, Round(1.0051, 2), 1e-12)
}
