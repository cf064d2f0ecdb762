package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a persisted reservation. It is immutable once created; admins
// may delete it, nothing updates it in place.
type Booking struct {
	ID        uuid.UUID
	Room      Room
	Resource  Resource
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

// Proposal is a reservation candidate before validation. Start and End are
// civil times in the fixed booking zone.
type Proposal struct {
	Room     Room
	Resource Resource
	Start    time.Time
	End      time.Time
}

func (p Proposal) DurationMinutes() int {
	return int(p.End.Sub(p.Start).Minutes())
}

// Overlaps reports whether [Start,End) intersects [start,end).
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}
