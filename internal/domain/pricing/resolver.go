package pricing

import (
	"quality-detailing/internal/domain/catalog"
)

// Resolver maps a (package, vehicle size) pair to a definitive price.
// Resolution order: override table, then the package's per-size price with a
// base-price fallback, then the flat base price. When nothing resolves the
// caller must block the add-to-cart action rather than submit a nil price.
type Resolver struct {
	overrides OverrideTable
}

func NewResolver(overrides OverrideTable) *Resolver {
	if overrides == nil {
		overrides = OverrideTable{}
	}
	return &Resolver{overrides: overrides}
}

// Resolve returns the price in cents for the selected size and whether any
// price path resolved at all.
func (r *Resolver) Resolve(pkg *catalog.Package, size VehicleSize) (int64, bool) {
	if !size.IsValid() {
		size = DefaultSize
	}

	key := OverrideKey{ServiceSlug: pkg.ServiceSlug, TierID: TierID(pkg.Name)}
	if ov, ok := r.overrides[key]; ok {
		if ov.PerFootCents != nil {
			return *ov.PerFootCents, true
		}
		if ov.Sizes != nil {
			if p := ov.Sizes.For(size); p != nil {
				return *p, true
			}
		}
		// Overridden tier with no price for this size falls through to the
		// catalog-derived paths.
	}

	if p := sizePrice(pkg, size); p != nil {
		return *p, true
	}
	if pkg.HasTieredPricing() && pkg.PriceCents != nil {
		return *pkg.PriceCents, true
	}
	if pkg.PriceCents != nil {
		return *pkg.PriceCents, true
	}
	if pkg.PricePerFootCents != nil {
		return *pkg.PricePerFootCents, true
	}
	return 0, false
}

// DisplayName decorates the package name with the chosen size label when the
// package carries tiered pricing.
func (r *Resolver) DisplayName(pkg *catalog.Package, size VehicleSize) string {
	key := OverrideKey{ServiceSlug: pkg.ServiceSlug, TierID: TierID(pkg.Name)}
	ov, overridden := r.overrides[key]
	perFoot := overridden && ov.PerFootCents != nil
	tiered := pkg.HasTieredPricing() || (overridden && ov.Sizes != nil)
	if !tiered || perFoot {
		return pkg.Name
	}
	return pkg.Name + " (" + size.Label() + ")"
}

func sizePrice(pkg *catalog.Package, size VehicleSize) *int64 {
	switch size {
	case SizeSmall:
		return pkg.PriceSmallCents
	case SizeMedium:
		return pkg.PriceMediumCents
	case SizeLarge:
		return pkg.PriceLargeCents
	default:
		return nil
	}
}
