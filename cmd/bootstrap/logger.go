package bootstrap

import (
	"log/slog"

	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the slog logger the request middleware uses, so fx
// consumers and per-request logs share one configuration.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
