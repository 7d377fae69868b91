package pricing

import (
	"fmt"
	"strings"

	"quality-detailing/internal/domain/catalog"
)

// The override table replaces the catalog-derived price for specific service
// tiers. Keys are stable (service slug, tier id) pairs rather than display
// names, so renaming a package in the catalog surfaces as a validation error
// at load time instead of a silently broken lookup.

type OverrideKey struct {
	ServiceSlug string
	TierID      string
}

// SizePrices holds per-size cents; a nil entry falls through to the next
// resolution step for that size.
type SizePrices struct {
	SmallCents  *int64
	MediumCents *int64
	LargeCents  *int64
}

func (p SizePrices) For(size VehicleSize) *int64 {
	switch size {
	case SizeSmall:
		return p.SmallCents
	case SizeMedium:
		return p.MediumCents
	case SizeLarge:
		return p.LargeCents
	default:
		return nil
	}
}

// Override prices one tier. Either Sizes or PerFootCents is set; a per-foot
// rate is a flat per-unit price that ignores vehicle size entirely (fleet
// tiers are priced by vehicle length, not category).
type Override struct {
	Sizes        *SizePrices
	PerFootCents *int64
}

type OverrideTable map[OverrideKey]Override

// TierID derives the stable tier identifier from a package name.
func TierID(packageName string) string {
	id := strings.ToLower(strings.TrimSpace(packageName))
	id = strings.ReplaceAll(id, "&", "and")
	fields := strings.FieldsFunc(id, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	return strings.Join(fields, "-")
}

// Validate checks every override key against the catalog: the service slug
// must exist and the tier id must match a package of that service. Run at
// startup so a catalog rename cannot silently break the lookup.
func (t OverrideTable) Validate(packages []catalog.Package) error {
	known := make(map[OverrideKey]bool, len(packages))
	for _, p := range packages {
		known[OverrideKey{ServiceSlug: p.ServiceSlug, TierID: TierID(p.Name)}] = true
	}
	for key, ov := range t {
		if !known[key] {
			return fmt.Errorf("pricing override %s/%s matches no catalog package", key.ServiceSlug, key.TierID)
		}
		if ov.Sizes == nil && ov.PerFootCents == nil {
			return fmt.Errorf("pricing override %s/%s has no prices", key.ServiceSlug, key.TierID)
		}
	}
	return nil
}

func cents(v int64) *int64 { return &v }

// DefaultOverrides is the business's hand-maintained price sheet for tiers
// whose pricing diverges from the catalog.
func DefaultOverrides() OverrideTable {
	return OverrideTable{
		{ServiceSlug: "interior-detailing", TierID: "level-1"}: {
			Sizes: &SizePrices{SmallCents: cents(12900), MediumCents: cents(14900), LargeCents: cents(16900)},
		},
		{ServiceSlug: "interior-detailing", TierID: "level-2"}: {
			Sizes: &SizePrices{SmallCents: cents(17900), MediumCents: cents(19900), LargeCents: cents(21900)},
		},
		{ServiceSlug: "interior-detailing", TierID: "level-3"}: {
			Sizes: &SizePrices{SmallCents: cents(22900), MediumCents: cents(24900), LargeCents: cents(26900)},
		},
		{ServiceSlug: "exterior-detailing", TierID: "level-1"}: {
			Sizes: &SizePrices{SmallCents: cents(9900), MediumCents: cents(11900), LargeCents: cents(13900)},
		},
		{ServiceSlug: "exterior-detailing", TierID: "level-2"}: {
			Sizes: &SizePrices{SmallCents: cents(14900), MediumCents: cents(16900), LargeCents: cents(18900)},
		},
		{ServiceSlug: "ceramic-coating", TierID: "full-ceramic"}: {
			Sizes: &SizePrices{SmallCents: cents(49900), MediumCents: cents(54900), LargeCents: cents(59900)},
		},
		{ServiceSlug: "maintenance-detailing", TierID: "quick-maintenance"}: {
			Sizes: &SizePrices{SmallCents: cents(7900), MediumCents: cents(8900), LargeCents: cents(9900)},
		},
		{ServiceSlug: "fleet-detailing", TierID: "per-vehicle"}: {
			PerFootCents: cents(1200),
		},
	}
}
