package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return Interval{Start: s, End: e}
}

func TestInterval_Validate(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		i := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")
		assert.NoError(t, i.Validate())
	})

	t.Run("end equals start", func(t *testing.T) {
		i := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T09:00:00Z")
		assert.ErrorIs(t, i.Validate(), ErrInvalidInterval)
	})

	t.Run("end before start", func(t *testing.T) {
		i := mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T09:00:00Z")
		assert.ErrorIs(t, i.Validate(), ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	base := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "identical interval",
			other: mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap from the right",
			other: mustInterval(t, "2026-09-01T09:30:00Z", "2026-09-01T10:30:00Z"),
			want:  true,
		},
		{
			name:  "partial overlap from the left",
			other: mustInterval(t, "2026-09-01T08:30:00Z", "2026-09-01T09:30:00Z"),
			want:  true,
		},
		{
			name:  "fully contained",
			other: mustInterval(t, "2026-09-01T09:15:00Z", "2026-09-01T09:45:00Z"),
			want:  true,
		},
		{
			name:  "fully containing",
			other: mustInterval(t, "2026-09-01T08:00:00Z", "2026-09-01T11:00:00Z"),
			want:  true,
		},
		{
			name:  "touching at base end",
			other: mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z"),
			want:  false,
		},
		{
			name:  "touching at base start",
			other: mustInterval(t, "2026-09-01T08:00:00Z", "2026-09-01T09:00:00Z"),
			want:  false,
		},
		{
			name:  "fully disjoint",
			other: mustInterval(t, "2026-09-01T12:00:00Z", "2026-09-01T13:00:00Z"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_Duration(t *testing.T) {
	i := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:30:00Z")
	assert.Equal(t, 90*time.Minute, i.Duration())
}
