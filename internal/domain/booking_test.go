package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_Overlaps(t *testing.T) {
	// Существующее бронирование 10..15 (полуинтервал)
	b := &Booking{CheckIn: day(10), CheckOut: day(15)}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical range", day(10), day(15), true},
		{"contained inside", day(11), day(13), true},
		{"covers existing", day(8), day(20), true},
		{"overlaps left edge", day(8), day(11), true},
		{"overlaps right edge", day(14), day(18), true},
		{"touches at checkout boundary", day(15), day(18), false},
		{"touches at checkin boundary", day(7), day(10), false},
		{"fully before", day(1), day(5), false},
		{"fully after", day(20), day(25), false},
		{"empty candidate range", day(12), day(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusConfirmed, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
}

func TestBooking_IsBlocking(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsBlocking())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsBlocking())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsBlocking())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsBlocking())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(BookingStatus("archived")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}
