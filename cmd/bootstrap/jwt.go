package bootstrap

import (
	"pontomais/internal/pkg/config"
	"pontomais/internal/pkg/jwt"
	"pontomais/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		func(s *jwt.Service) commands.TokenIssuer { return s },
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT)
}
