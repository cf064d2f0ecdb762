package bootstrap

import (
	"time"

	"buchungssystem/internal/pkg/config"
	"buchungssystem/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		panic("invalid SESSION_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.Session.Secret, duration)
}
