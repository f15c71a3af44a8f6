package components

import (
	"pontomais/internal/handler"
	"pontomais/internal/handler/api"
	"pontomais/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPointHandler,
		api.NewBookingHandler,
		api.NewPartnerHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(middleware.RegisterValidators),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	point *api.PointHandler,
	booking *api.BookingHandler,
	partner *api.PartnerHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Point:   point,
		Booking: booking,
		Partner: partner,
		Admin:   admin,
	}
}
