package repository

import (
	"context"
	"errors"
	"time"

	"buchungssystem/internal/domain/booking"
	"buchungssystem/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository persists bookings in Postgres. Timestamps are stored as
// timestamptz and handed back converted into the booking zone so the rest of
// the system only ever sees civil times in that zone.
type BookingRepository struct {
	pool *pgxpool.Pool
	loc  *time.Location
}

func NewBookingRepository(pool *pgxpool.Pool, loc *time.Location) *BookingRepository {
	return &BookingRepository{
		pool: pool,
		loc:  loc,
	}
}

const insertBookingSQL = `
INSERT INTO bookings (id, room, resource, start_time, end_time, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	id := uuid.New()

	_, err := r.pool.Exec(ctx, insertBookingSQL,
		id, b.Room.String(), b.Resource.String(), b.Start, b.End, b.CreatedAt)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

const listBookingsSQL = `
SELECT id, room, resource, start_time, end_time, created_at
FROM bookings
ORDER BY start_time`

func (r *BookingRepository) List(ctx context.Context) ([]booking.Booking, error) {
	rows, err := r.pool.Query(ctx, listBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read bookings", err)
	}
	return bookings, nil
}

const firstOnDaySQL = `
SELECT id, room, resource, start_time, end_time, created_at
FROM bookings
WHERE resource = $1 AND start_time >= $2 AND start_time < $3
ORDER BY start_time
LIMIT 1`

func (r *BookingRepository) FirstOnDay(ctx context.Context, res booking.Resource, dayStart, dayEnd time.Time) (*booking.Booking, error) {
	return r.first(ctx, firstOnDaySQL, res.String(), dayStart, dayEnd)
}

// Half-open interval overlap: existing.start < end AND existing.end > start.
const firstOverlappingSQL = `
SELECT id, room, resource, start_time, end_time, created_at
FROM bookings
WHERE resource = $1 AND start_time < $3 AND end_time > $2
ORDER BY start_time
LIMIT 1`

func (r *BookingRepository) FirstOverlapping(ctx context.Context, res booking.Resource, start, end time.Time) (*booking.Booking, error) {
	return r.first(ctx, firstOverlappingSQL, res.String(), start, end)
}

func (r *BookingRepository) first(ctx context.Context, sql string, args ...any) (*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query bookings", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query bookings", err)
		}
		return nil, nil
	}

	b, err := r.scanBooking(rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
	}
	return &b, nil
}

func (r *BookingRepository) scanBooking(row pgx.Row) (booking.Booking, error) {
	var (
		b        booking.Booking
		room     string
		resource string
	)
	if err := row.Scan(&b.ID, &room, &resource, &b.Start, &b.End, &b.CreatedAt); err != nil {
		return booking.Booking{}, err
	}
	b.Room = booking.Room(room)
	b.Resource = booking.Resource(resource)
	b.Start = b.Start.In(r.loc)
	b.End = b.End.In(r.loc)
	b.CreatedAt = b.CreatedAt.In(r.loc)
	return b, nil
}
