package request

import (
	"time"

	"buchungssystem/internal/domain/booking"
)

// CreateBookingRequest carries enum wire keys and naive civil timestamps.
// Clients book in house time; the timestamps are interpreted in the fixed
// booking zone, never in the client's zone.
type CreateBookingRequest struct {
	Room     string `json:"room" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (r CreateBookingRequest) ToProposal(loc *time.Location) (booking.Proposal, error) {
	room, err := booking.ParseRoom(r.Room)
	if err != nil {
		return booking.Proposal{}, err
	}

	resource, err := booking.ParseResource(r.Resource)
	if err != nil {
		return booking.Proposal{}, err
	}

	start, err := parseCivilTime(r.Start, loc)
	if err != nil {
		return booking.Proposal{}, err
	}

	end, err := parseCivilTime(r.End, loc)
	if err != nil {
		return booking.Proposal{}, err
	}

	return booking.Proposal{
		Room:     room,
		Resource: resource,
		Start:    start,
		End:      end,
	}, nil
}

func parseCivilTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	// Offset-carrying input is accepted but reinterpreted as house time,
	// matching the original backend's tzinfo replacement.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc), nil
	}
	return time.Time{}, booking.ErrInvalidInput
}
