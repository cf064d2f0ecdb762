package components

import (
	"buchungssystem/internal/infra/repository"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewBookingRepository,
			fx.As(new(usecase.BookingStore)),
		),
	),
)

func NewBookingRepository(pool *pgxpool.Pool, cfg config.Config) *repository.BookingRepository {
	return repository.NewBookingRepository(pool, cfg.Booking.Location())
}
