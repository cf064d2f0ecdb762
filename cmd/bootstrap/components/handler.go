package components

import (
	"buchungssystem/internal/handler"
	"buchungssystem/internal/handler/api"
	"buchungssystem/internal/handler/middleware"
	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBookingHandler(bookingUseCase usecase.BookingUseCase, ruleQueries usecase.RuleQueries, cfg config.Config) *api.BookingHandler {
	return api.NewBookingHandler(bookingUseCase, ruleQueries, cfg.Booking.Location())
}
