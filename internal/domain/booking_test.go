package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusDeclined.Valid())
	assert.False(t, BookingStatus("cancelled").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusNew, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusDeclined, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
		})
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusNew, StatusConfirmed, true},
		{StatusNew, StatusDeclined, true},
		{StatusNew, StatusCompleted, false},
		{StatusNew, StatusNew, false},

		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusDeclined, true},
		{StatusConfirmed, StatusNew, false},
		{StatusConfirmed, StatusConfirmed, false},

		// Терминальные статусы
		{StatusCompleted, StatusNew, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusDeclined, false},
		{StatusDeclined, StatusNew, false},
		{StatusDeclined, StatusConfirmed, false},
		{StatusDeclined, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" -> "+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsScheduled(t *testing.T) {
	b := &Booking{Status: StatusNew}
	assert.False(t, b.IsScheduled())

	b.Scheduled = &Interval{}
	assert.True(t, b.IsScheduled())
}
