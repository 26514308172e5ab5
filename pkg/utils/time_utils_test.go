package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeID_MillisecondTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	id := NewTimeID()
	after := time.Now().UnixMilli()

	n, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, before)
	assert.LessOrEqual(t, n, after)
}

func TestFormatDistanceToNow(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"under a minute", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-12 * time.Minute), "12m"},
		{"hours", now.Add(-3 * time.Hour), "3h"},
		{"days", now.Add(-5 * 24 * time.Hour), "5d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistanceToNow(tt.t))
		})
	}

	t.Run("past a week falls back to the date", func(t *testing.T) {
		old := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "Mar 9", FormatDistanceToNow(old))
	})
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "July 4, 2025", FormatDate(d))
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Jun 15 - Jun 22, 2025", FormatDateRange(start, end))
}
