package bootstrap

import (
	"pontomais/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
