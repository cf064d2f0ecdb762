package response

import (
	"buchungssystem/internal/domain/booking"

	"github.com/google/uuid"
)

const civilTimeLayout = "2006-01-02T15:04:05"

type BookingResponse struct {
	ID       uuid.UUID `json:"id"`
	Room     string    `json:"room"`
	Resource string    `json:"resource"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
}

type CreateBookingResponse struct {
	Status string    `json:"status"`
	ID     uuid.UUID `json:"id"`
}

type DeleteBookingResponse struct {
	Status string `json:"status"`
}

func FromBooking(b booking.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		Room:     b.Room.String(),
		Resource: b.Resource.String(),
		Start:    b.Start.Format(civilTimeLayout),
		End:      b.End.Format(civilTimeLayout),
	}
}

func FromBookings(bookings []booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromBooking(b)
	}
	return out
}
