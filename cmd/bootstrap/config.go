package bootstrap

import (
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewClock,
	),
)

// NewClock evaluates calendar days in the configured zone.
func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.App.Location())
}
