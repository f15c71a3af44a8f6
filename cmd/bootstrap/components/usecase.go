package components

import (
	"context"
	"log/slog"

	"pontomais/internal/domain/booking"
	"pontomais/internal/infra/payment"
	"pontomais/internal/pkg/clock"
	"pontomais/internal/pkg/config"
	"pontomais/internal/usecase"
	"pontomais/internal/usecase/commands"
	"pontomais/internal/usecase/queries"
	"pontomais/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedAdmin),
)

var usecaseBaseOption = fx.Provide(
	func(clk clock.Clock) *booking.Factory {
		return booking.NewFactory(clk, booking.NewRandomCodeGenerator())
	},
	func(cfg config.Config, logger *slog.Logger) shared.PaymentGateway {
		return payment.NewSimulatedGateway(cfg.Payment.Delay, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPartnerCommands,
		commands.NewPointCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.UserCommands {
			return commands.NewUserCommands(uow, clk, cfg.App.AdminEmail)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewPartnerQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func seedAdmin(lc fx.Lifecycle, auth commands.AuthCommands, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return auth.SeedAdmin(ctx, cfg.App.AdminEmail, cfg.App.AdminPassword)
		},
	})
}
