package components

import (
	"quality-detailing/internal/handler"
	"quality-detailing/internal/handler/api"
	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewCustomerHandler,
		api.NewCatalogHandler,
		NewAdminMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminMiddleware(cfg config.Config) *middleware.AdminMiddleware {
	return middleware.NewAdminMiddleware(cfg.Admin)
}
