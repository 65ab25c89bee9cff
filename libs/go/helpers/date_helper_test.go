package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifferenceInDays(t *testing.T) {
	base := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		left  time.Time
		right time.Time
		want  int
	}{
		{"same instant", base, base, 0},
		{"one day later", base.AddDate(0, 0, 1), base, 1},
		{"partial day truncates", base.Add(47 * time.Hour), base, 1},
		{"earlier is negative", base.AddDate(0, 0, -3), base, -3},
		{"partial negative truncates toward zero", base.Add(-30 * time.Hour), base, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DifferenceInDays(tt.left, tt.right))
		})
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", FormatDisplayDate(time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC)))
}
