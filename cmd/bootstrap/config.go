package bootstrap

import (
	"quality-detailing/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads configuration from the environment once at startup.
// The admin secret is required, so a missing ADMIN_SECRET fails boot here.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
