package components

import (
	"buchungssystem/internal/domain/booking"
	"buchungssystem/internal/pkg/clock"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/pkg/jwt"
	"buchungssystem/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewClock,
		NewRules,
		NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewRuleQueries,
		usecase.NewTokenValidator,
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClock(cfg.Booking.Location())
}

// NewRules builds the immutable rule table from configuration once, at
// process start.
func NewRules(cfg config.Config) (booking.Rules, error) {
	minTime, err := config.ParseTimeOfDay(cfg.Booking.MinTime)
	if err != nil {
		return booking.Rules{}, err
	}
	maxTime, err := config.ParseTimeOfDay(cfg.Booking.MaxTime)
	if err != nil {
		return booking.Rules{}, err
	}

	return booking.Rules{
		MaxDaysAhead:           cfg.Booking.MaxDaysAhead,
		MinTimeMinutes:         minTime,
		MaxTimeMinutes:         maxTime,
		StepMinutes:            cfg.Booking.StepMinutes,
		DefaultDurationMinutes: cfg.Booking.DefaultDurationMinutes,
		Location:               cfg.Booking.Location(),
		Resources:              booking.DefaultResourceRules(),
	}, nil
}

func NewAuthUseCase(cfg config.Config, sessions *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Session, sessions)
}
