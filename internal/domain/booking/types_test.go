//go:build unit

package booking_test

import (
	"testing"

	"buchungssystem/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoom(t *testing.T) {
	for _, room := range booking.Rooms() {
		parsed, err := booking.ParseRoom(room.Key())
		require.NoError(t, err)
		assert.Equal(t, room, parsed)
	}

	_, err := booking.ParseRoom("KELLER")
	require.ErrorIs(t, err, booking.ErrInvalidInput)

	// Keys are the uppercase identifiers, labels never parse.
	_, err = booking.ParseRoom("Wolf")
	require.ErrorIs(t, err, booking.ErrInvalidInput)
}

func TestParseResource(t *testing.T) {
	for _, res := range booking.Resources() {
		parsed, err := booking.ParseResource(res.Key())
		require.NoError(t, err)
		assert.Equal(t, res, parsed)
	}

	_, err := booking.ParseResource("POOL")
	require.ErrorIs(t, err, booking.ErrInvalidInput)
}

func TestResourceLabels(t *testing.T) {
	assert.Equal(t, "Grillhütte", booking.ResourceGrill.String())
	assert.Equal(t, "GRILL", booking.ResourceGrill.Key())
	assert.Equal(t, "Sauna", booking.ResourceSauna.String())
	assert.Equal(t, "SAUNA", booking.ResourceSauna.Key())
}

func TestBookingOverlaps(t *testing.T) {
	b := booking.Booking{Start: at(1, 10, 0), End: at(1, 12, 0)}

	assert.True(t, b.Overlaps(at(1, 11, 0), at(1, 13, 0)))
	assert.True(t, b.Overlaps(at(1, 9, 0), at(1, 10, 15)))
	assert.True(t, b.Overlaps(at(1, 10, 30), at(1, 11, 30)))

	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, b.Overlaps(at(1, 12, 0), at(1, 13, 0)))
	assert.False(t, b.Overlaps(at(1, 9, 0), at(1, 10, 0)))
}

func TestRejectionIs(t *testing.T) {
	dynamic := &booking.Rejection{Code: booking.CodeDuplicateDay, Message: `Pro Tag ist nur eine Buchung für "Sauna" erlaubt.`}
	assert.ErrorIs(t, dynamic, booking.ErrDuplicateDay)
	assert.NotErrorIs(t, dynamic, booking.ErrSlotTaken)
}

func TestRejectionClass(t *testing.T) {
	assert.Equal(t, booking.ClassConflict, booking.ErrSlotTaken.Class())
	assert.Equal(t, booking.ClassConflict, booking.ErrDuplicateDay.Class())
	assert.Equal(t, booking.ClassForbidden, booking.ErrForbidden.Class())
	assert.Equal(t, booking.ClassNotFound, booking.ErrNotFound.Class())
	assert.Equal(t, booking.ClassValidation, booking.ErrPastBooking.Class())
}
