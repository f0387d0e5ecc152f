package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConflict(t *testing.T) {
	existing := []ActiveInterval{
		{BookingID: 1, Interval: mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")},
		{BookingID: 2, Interval: mustInterval(t, "2026-09-01T14:00:00Z", "2026-09-01T15:00:00Z")},
	}

	t.Run("overlapping candidate is rejected", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T09:30:00Z", "2026-09-01T10:30:00Z")

		err := CheckConflict(candidate, nil, existing)
		require.Error(t, err)

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(1), conflict.BookingID)
	})

	t.Run("boundary-touching candidate is admitted", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T08:00:00Z", "2026-09-01T09:00:00Z")
		assert.NoError(t, CheckConflict(candidate, nil, existing))
	})

	t.Run("gap between bookings is free", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T14:00:00Z")
		assert.NoError(t, CheckConflict(candidate, nil, existing))
	})

	t.Run("reschedule to own window is not a conflict", func(t *testing.T) {
		// Бронирование 1 переносится на своё же окно: исключение себя
		// делает повторное сохранение идемпотентным
		candidate := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")
		excludeID := int64(1)

		assert.NoError(t, CheckConflict(candidate, &excludeID, existing))
	})

	t.Run("exclusion does not hide other conflicts", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T13:30:00Z", "2026-09-01T14:30:00Z")
		excludeID := int64(1)

		err := CheckConflict(candidate, &excludeID, existing)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, int64(2), conflict.BookingID)
	})

	t.Run("invalid candidate is rejected before scanning", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T09:00:00Z")
		assert.ErrorIs(t, CheckConflict(candidate, nil, existing), ErrInvalidInterval)
	})

	t.Run("empty active set admits any valid candidate", func(t *testing.T) {
		candidate := mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T17:00:00Z")
		assert.NoError(t, CheckConflict(candidate, nil, nil))
	})
}
