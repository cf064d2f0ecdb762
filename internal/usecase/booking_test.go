//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"buchungssystem/internal/domain/booking"
	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/infra"
	"buchungssystem/internal/pkg/clock"
	"buchungssystem/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cet = time.FixedZone("CET", 3600)

func houseRules() booking.Rules {
	return booking.Rules{
		MaxDaysAhead:           14,
		MinTimeMinutes:         8 * 60,
		MaxTimeMinutes:         22 * 60,
		StepMinutes:            15,
		DefaultDurationMinutes: 60,
		Location:               cet,
		Resources:              booking.DefaultResourceRules(),
	}
}

func at(days, hour, minute int) time.Time {
	return time.Date(2024, 6, 1+days, hour, minute, 0, 0, cet)
}

// fakeStore is an in-memory BookingStore with the same half-open interval
// semantics as the SQL queries.
type fakeStore struct {
	mu       sync.Mutex
	bookings []booking.Booking
}

func (s *fakeStore) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *b
	stored.ID = uuid.New()
	s.bookings = append(s.bookings, stored)
	return stored.ID, nil
}

func (s *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
}

func (s *fakeStore) List(_ context.Context) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]booking.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *fakeStore) FirstOnDay(_ context.Context, res booking.Resource, dayStart, dayEnd time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.Resource == res && !b.Start.Before(dayStart) && b.Start.Before(dayEnd) {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FirstOverlapping(_ context.Context, res booking.Resource, start, end time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.Resource == res && b.Overlaps(start, end) {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func newTestUseCase(t *testing.T) (usecase.BookingUseCase, *fakeStore, *clock.MockClock) {
	t.Helper()
	store := &fakeStore{}
	clk := clock.NewMockClock(at(0, 10, 0))
	uc := usecase.NewBookingUseCase(store, clk, houseRules())
	return uc, store, clk
}

func saunaProposal(days int) booking.Proposal {
	return booking.Proposal{
		Room:     booking.RoomWolf,
		Resource: booking.ResourceSauna,
		Start:    at(days, 10, 0),
		End:      at(days, 11, 0),
	}
}

func TestBookingCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid proposal is stored", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		id, err := uc.Create(ctx, saunaProposal(1), user.RoleUser)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("unknown room never reaches the store", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		p := saunaProposal(1)
		p.Room = booking.Room("Keller")
		_, err := uc.Create(ctx, p, user.RoleUser)
		require.ErrorIs(t, err, booking.ErrInvalidInput)
		assert.Empty(t, store.bookings)
	})

	t.Run("rejected proposal never reaches the store", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		p := saunaProposal(1)
		p.Start, p.End = p.End, p.Start
		_, err := uc.Create(ctx, p, user.RoleUser)
		require.ErrorIs(t, err, booking.ErrInvalidRange)
		assert.Empty(t, store.bookings)
	})

	t.Run("second booking of the resource on the same day is rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.Create(ctx, saunaProposal(1), user.RoleUser)
		require.NoError(t, err)

		second := saunaProposal(1)
		second.Room = booking.RoomBiber
		second.Start = at(1, 14, 0)
		second.End = at(1, 15, 0)
		_, err = uc.Create(ctx, second, user.RoleUser)
		require.ErrorIs(t, err, booking.ErrDuplicateDay)

		var rej *booking.Rejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, `Pro Tag ist nur eine Buchung für "Sauna" erlaubt.`, rej.Message)
	})

	t.Run("duplicate-day check keys on the resource, not the room", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		_, err := uc.Create(ctx, saunaProposal(1), user.RoleUser)
		require.NoError(t, err)

		// Same day, different resource: allowed.
		grill := booking.Proposal{
			Room:     booking.RoomWolf,
			Resource: booking.ResourceGrill,
			Start:    at(1, 14, 0),
			End:      at(1, 16, 0),
		}
		_, err = uc.Create(ctx, grill, user.RoleUser)
		require.NoError(t, err)
	})

	t.Run("overlap with a span from the previous day is slot taken", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		// Admin overnight booking reaching into day 2. It starts on day 1,
		// so the duplicate-day check for day 2 passes and the overlap check
		// has to catch it.
		overnight := booking.Proposal{
			Room:     booking.RoomWolf,
			Resource: booking.ResourceSauna,
			Start:    at(1, 21, 0),
			End:      at(2, 12, 0),
		}
		_, err := uc.Create(ctx, overnight, user.RoleAdmin)
		require.NoError(t, err)

		taken := saunaProposal(2)
		taken.Start = at(2, 11, 0)
		taken.End = at(2, 12, 0)
		_, err = uc.Create(ctx, taken, user.RoleUser)
		require.ErrorIs(t, err, booking.ErrSlotTaken)
	})

	t.Run("admin may double-book", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		_, err := uc.Create(ctx, saunaProposal(1), user.RoleAdmin)
		require.NoError(t, err)
		_, err = uc.Create(ctx, saunaProposal(1), user.RoleAdmin)
		require.NoError(t, err)
		assert.Len(t, store.bookings, 2)
	})

	t.Run("clock is read per request", func(t *testing.T) {
		uc, _, clk := newTestUseCase(t)

		// Day 16 is out of reach today and within reach two days later.
		_, err := uc.Create(ctx, saunaProposal(16), user.RoleUser)
		require.ErrorIs(t, err, booking.ErrTooFarAhead)

		clk.Add(48 * time.Hour)
		_, err = uc.Create(ctx, saunaProposal(16), user.RoleUser)
		require.NoError(t, err)
	})

	t.Run("concurrent identical proposals admit exactly one", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		const n = 8
		errors := make([]error, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errors[i] = uc.Create(ctx, saunaProposal(1), user.RoleUser)
			}(i)
		}
		wg.Wait()

		accepted := 0
		for _, err := range errors {
			if err == nil {
				accepted++
			} else {
				require.ErrorIs(t, err, booking.ErrDuplicateDay)
			}
		}
		assert.Equal(t, 1, accepted)
		assert.Len(t, store.bookings, 1)
	})
}

func TestBookingDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes an existing booking", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		id, err := uc.Create(ctx, saunaProposal(1), user.RoleUser)
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, id, user.RoleAdmin))
		assert.Empty(t, store.bookings)
	})

	t.Run("user may not delete, even their own booking", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t)

		id, err := uc.Create(ctx, saunaProposal(1), user.RoleUser)
		require.NoError(t, err)

		err = uc.Delete(ctx, id, user.RoleUser)
		require.ErrorIs(t, err, booking.ErrForbidden)
		assert.Len(t, store.bookings, 1)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t)

		err := uc.Delete(ctx, uuid.New(), user.RoleAdmin)
		require.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestBookingList(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestUseCase(t)

	first := saunaProposal(1)
	id1, err := uc.Create(ctx, first, user.RoleUser)
	require.NoError(t, err)

	second := booking.Proposal{
		Room:     booking.RoomHermelin,
		Resource: booking.ResourceGrill,
		Start:    at(2, 12, 0),
		End:      at(2, 14, 0),
	}
	id2, err := uc.Create(ctx, second, user.RoleUser)
	require.NoError(t, err)

	got, err := uc.List(ctx)
	require.NoError(t, err)

	want := []booking.Booking{
		{ID: id1, Room: first.Room, Resource: first.Resource, Start: first.Start, End: first.End, CreatedAt: at(0, 10, 0)},
		{ID: id2, Room: second.Room, Resource: second.Resource, Start: second.Start, End: second.End, CreatedAt: at(0, 10, 0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bookings mismatch (-want +got):\n%s", diff)
	}
}
