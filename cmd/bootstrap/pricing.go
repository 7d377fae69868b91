package bootstrap

import (
	"context"
	"log/slog"

	"quality-detailing/internal/domain/catalog"
	"quality-detailing/internal/domain/pricing"
	"quality-detailing/internal/usecase/queries"

	"go.uber.org/fx"
)

// Price resolution itself happens in the client SDK; the server's only
// pricing concern is refusing to boot with a stale override table.
var PricingModule = fx.Module("pricing",
	fx.Provide(
		pricing.DefaultOverrides,
	),
	fx.Invoke(
		ValidateOverrides,
	),
)

// ValidateOverrides fails startup when the override table names a service
// and tier combination that no longer exists in the catalog. A stale key
// would otherwise misprice silently at request time.
func ValidateOverrides(overrides pricing.OverrideTable, catalogQueries queries.CatalogQueries) error {
	ctx := context.Background()

	services, err := catalogQueries.ListServices(ctx)
	if err != nil {
		return err
	}

	var packages []catalog.Package
	for _, service := range services {
		views, err := catalogQueries.ListPackages(ctx, service.ID)
		if err != nil {
			return err
		}
		for _, v := range views {
			packages = append(packages, catalog.Package{
				ID:          v.ID,
				ServiceID:   v.ServiceID,
				ServiceSlug: v.ServiceSlug,
				ServiceName: v.ServiceName,
				Name:        v.Name,
			})
		}
	}

	if err := overrides.Validate(packages); err != nil {
		return err
	}

	slog.Info("pricing overrides validated", "packages", len(packages))
	return nil
}
