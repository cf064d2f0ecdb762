package usecase

import (
	"context"
	"sync"
	"time"

	"buchungssystem/internal/domain/booking"
	"buchungssystem/internal/domain/user"
	"buchungssystem/internal/infra"
	"buchungssystem/internal/pkg/clock"
	"buchungssystem/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStoreFailure = errs.New("booking store operation failed")

// BookingStore is the persistence port. FirstOnDay and FirstOverlapping
// return (nil, nil) when nothing matches.
type BookingStore interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]booking.Booking, error)
	FirstOnDay(ctx context.Context, res booking.Resource, dayStart, dayEnd time.Time) (*booking.Booking, error)
	FirstOverlapping(ctx context.Context, res booking.Resource, start, end time.Time) (*booking.Booking, error)
}

type BookingUseCase interface {
	Create(ctx context.Context, p booking.Proposal, role user.Role) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID, role user.Role) error
	List(ctx context.Context) ([]booking.Booking, error)
}

type bookingUseCaseImpl struct {
	store BookingStore
	clock clock.Clock
	rules booking.Rules

	// slotLocks serializes check-then-insert per resource so two concurrent
	// user requests cannot both pass the conflict checks. The resource set
	// is closed, so the map is prebuilt and never written after construction.
	slotLocks map[booking.Resource]*sync.Mutex
}

func NewBookingUseCase(store BookingStore, clk clock.Clock, rules booking.Rules) BookingUseCase {
	locks := make(map[booking.Resource]*sync.Mutex, len(booking.Resources()))
	for _, res := range booking.Resources() {
		locks[res] = &sync.Mutex{}
	}
	return &bookingUseCaseImpl{
		store:     store,
		clock:     clk,
		rules:     rules,
		slotLocks: locks,
	}
}

// Create validates the proposal against a single clock reading, then runs
// the user-only conflict checks and the insert under the per-resource lock.
// A rejected proposal never touches the store.
func (u *bookingUseCaseImpl) Create(ctx context.Context, p booking.Proposal, role user.Role) (uuid.UUID, error) {
	if !p.Room.IsValid() || !p.Resource.IsValid() {
		return uuid.Nil, booking.ErrInvalidInput
	}

	now := u.clock.Now()
	if err := booking.Validate(p, role, now, u.rules); err != nil {
		return uuid.Nil, err
	}

	// Admins may double-book on purpose, so they skip both conflict checks
	// and do not contend for the slot lock.
	if role == user.RoleAdmin {
		return u.insert(ctx, p, now)
	}

	mu := u.slotLocks[p.Resource]
	mu.Lock()
	defer mu.Unlock()

	if err := u.checkConflicts(ctx, p); err != nil {
		return uuid.Nil, err
	}
	return u.insert(ctx, p, now)
}

func (u *bookingUseCaseImpl) checkConflicts(ctx context.Context, p booking.Proposal) error {
	// One booking per resource per day, keyed on resource alone: rooms
	// sharing a resource kind share one pool.
	dayStart := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, u.rules.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	sameDay, err := u.store.FirstOnDay(ctx, p.Resource, dayStart, dayEnd)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if sameDay != nil {
		return &booking.Rejection{
			Code:    booking.CodeDuplicateDay,
			Message: `Pro Tag ist nur eine Buchung für "` + p.Resource.String() + `" erlaubt.`,
		}
	}

	overlap, err := u.store.FirstOverlapping(ctx, p.Resource, p.Start, p.End)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if overlap != nil {
		return booking.ErrSlotTaken
	}
	return nil
}

func (u *bookingUseCaseImpl) insert(ctx context.Context, p booking.Proposal, now time.Time) (uuid.UUID, error) {
	id, err := u.store.Create(ctx, &booking.Booking{
		Room:      p.Room,
		Resource:  p.Resource,
		Start:     p.Start,
		End:       p.End,
		CreatedAt: now,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}
	return id, nil
}

func (u *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, role user.Role) error {
	if !role.IsAdmin() {
		return &booking.Rejection{Code: booking.CodeForbidden, Message: "Nur Admins dürfen löschen"}
	}

	if err := u.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.ErrNotFound
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (u *bookingUseCaseImpl) List(ctx context.Context) ([]booking.Booking, error) {
	bookings, err := u.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return bookings, nil
}
