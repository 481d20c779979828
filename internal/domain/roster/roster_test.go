package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftContextDurationHours(t *testing.T) {
	tests := []struct {
		minutes int
		want    float64
	}{
		{480, 8},
		{450, 7.5},
		{720, 12},
		{90, 1.5},
		{0, 0},
	}

	for _, tt := range tests {
		sc := ShiftContext{DurationMinutes: tt.minutes}
		assert.Equal(t, tt.want, sc.DurationHours())
	}
}
