package bootstrap

import (
	"quality-detailing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	PricingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
