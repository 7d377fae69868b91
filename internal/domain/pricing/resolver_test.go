//go:build unit

package pricing_test

import (
	"testing"

	"quality-detailing/internal/domain/catalog"
	"quality-detailing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cents(v int64) *int64 { return &v }

func TestTierID(t *testing.T) {
	cases := map[string]string{
		"Level 1":            "level-1",
		"  Level 2  ":        "level-2",
		"Full Ceramic":       "full-ceramic",
		"Wash & Wax":         "wash-and-wax",
		"Quick Maintenance!": "quick-maintenance",
		"Per Vehicle":        "per-vehicle",
	}
	for name, want := range cases {
		assert.Equal(t, want, pricing.TierID(name), "input %q", name)
	}
}

func TestResolve(t *testing.T) {
	overrides := pricing.OverrideTable{
		{ServiceSlug: "interior-detailing", TierID: "level-1"}: {
			Sizes: &pricing.SizePrices{SmallCents: cents(12900), MediumCents: cents(14900)},
		},
		{ServiceSlug: "fleet-detailing", TierID: "per-vehicle"}: {
			PerFootCents: cents(1200),
		},
	}
	resolver := pricing.NewResolver(overrides)

	t.Run("override size price wins over catalog", func(t *testing.T) {
		pkg := &catalog.Package{
			ServiceSlug:     "interior-detailing",
			Name:            "Level 1",
			PriceCents:      cents(9999),
			PriceSmallCents: cents(11111),
		}
		price, ok := resolver.Resolve(pkg, pricing.SizeSmall)
		require.True(t, ok)
		assert.Equal(t, int64(12900), price)
	})

	t.Run("override per-foot rate ignores size", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "fleet-detailing", Name: "Per Vehicle"}
		for _, size := range []pricing.VehicleSize{pricing.SizeSmall, pricing.SizeMedium, pricing.SizeLarge} {
			price, ok := resolver.Resolve(pkg, size)
			require.True(t, ok)
			assert.Equal(t, int64(1200), price)
		}
	})

	t.Run("override missing a size falls through to catalog", func(t *testing.T) {
		pkg := &catalog.Package{
			ServiceSlug:     "interior-detailing",
			Name:            "Level 1",
			PriceLargeCents: cents(16000),
		}
		price, ok := resolver.Resolve(pkg, pricing.SizeLarge)
		require.True(t, ok)
		assert.Equal(t, int64(16000), price)
	})

	t.Run("catalog per-size price", func(t *testing.T) {
		pkg := &catalog.Package{
			ServiceSlug:      "exterior-detailing",
			Name:             "Level 1",
			PriceMediumCents: cents(11900),
		}
		price, ok := resolver.Resolve(pkg, pricing.SizeMedium)
		require.True(t, ok)
		assert.Equal(t, int64(11900), price)
	})

	t.Run("flat base price", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "full-detailing", Name: "Showroom", PriceCents: cents(29900)}
		price, ok := resolver.Resolve(pkg, pricing.SizeLarge)
		require.True(t, ok)
		assert.Equal(t, int64(29900), price)
	})

	t.Run("catalog per-foot rate is the last resort", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "fleet-detailing", Name: "Box Truck", PricePerFootCents: cents(1500)}
		price, ok := resolver.Resolve(pkg, pricing.SizeSmall)
		require.True(t, ok)
		assert.Equal(t, int64(1500), price)
	})

	t.Run("no price path resolves", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "full-detailing", Name: "Unpriced"}
		price, ok := resolver.Resolve(pkg, pricing.SizeSmall)
		assert.False(t, ok)
		assert.Zero(t, price)
	})

	t.Run("invalid size falls back to the default size", func(t *testing.T) {
		pkg := &catalog.Package{
			ServiceSlug:     "interior-detailing",
			Name:            "Level 1",
			PriceSmallCents: cents(11111),
		}
		price, ok := resolver.Resolve(pkg, pricing.VehicleSize("boat"))
		require.True(t, ok)
		assert.Equal(t, int64(12900), price)
	})
}

func TestDisplayName(t *testing.T) {
	resolver := pricing.NewResolver(pricing.DefaultOverrides())

	t.Run("tiered package carries the size label", func(t *testing.T) {
		pkg := &catalog.Package{
			ServiceSlug:     "interior-detailing",
			Name:            "Level 1",
			PriceSmallCents: cents(12900),
		}
		assert.Equal(t, "Level 1 (Small Coupe/Sedans)", resolver.DisplayName(pkg, pricing.SizeSmall))
		assert.Equal(t, "Level 1 (Medium SUV/Truck (4-5 Seater))", resolver.DisplayName(pkg, pricing.SizeMedium))
	})

	t.Run("flat priced package keeps its plain name", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "full-detailing", Name: "Showroom", PriceCents: cents(29900)}
		assert.Equal(t, "Showroom", resolver.DisplayName(pkg, pricing.SizeLarge))
	})

	t.Run("per-foot package keeps its plain name", func(t *testing.T) {
		pkg := &catalog.Package{ServiceSlug: "fleet-detailing", Name: "Per Vehicle"}
		assert.Equal(t, "Per Vehicle", resolver.DisplayName(pkg, pricing.SizeLarge))
	})
}

func TestOverrideTableValidate(t *testing.T) {
	packages := []catalog.Package{
		{ServiceSlug: "interior-detailing", Name: "Level 1"},
		{ServiceSlug: "fleet-detailing", Name: "Per Vehicle"},
	}

	t.Run("valid table", func(t *testing.T) {
		table := pricing.OverrideTable{
			{ServiceSlug: "interior-detailing", TierID: "level-1"}: {
				Sizes: &pricing.SizePrices{SmallCents: cents(100)},
			},
		}
		require.NoError(t, table.Validate(packages))
	})

	t.Run("stale key fails", func(t *testing.T) {
		table := pricing.OverrideTable{
			{ServiceSlug: "interior-detailing", TierID: "level-99"}: {
				Sizes: &pricing.SizePrices{SmallCents: cents(100)},
			},
		}
		err := table.Validate(packages)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "level-99")
	})

	t.Run("override without prices fails", func(t *testing.T) {
		table := pricing.OverrideTable{
			{ServiceSlug: "fleet-detailing", TierID: "per-vehicle"}: {},
		}
		require.Error(t, table.Validate(packages))
	})

	t.Run("default table matches the seeded catalog names", func(t *testing.T) {
		seeded := []catalog.Package{
			{ServiceSlug: "interior-detailing", Name: "Level 1"},
			{ServiceSlug: "interior-detailing", Name: "Level 2"},
			{ServiceSlug: "interior-detailing", Name: "Level 3"},
			{ServiceSlug: "exterior-detailing", Name: "Level 1"},
			{ServiceSlug: "exterior-detailing", Name: "Level 2"},
			{ServiceSlug: "ceramic-coating", Name: "Full Ceramic"},
			{ServiceSlug: "maintenance-detailing", Name: "Quick Maintenance"},
			{ServiceSlug: "fleet-detailing", Name: "Per Vehicle"},
		}
		require.NoError(t, pricing.DefaultOverrides().Validate(seeded))
	})
}
