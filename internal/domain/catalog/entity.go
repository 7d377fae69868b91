package catalog

import (
	"time"

	"github.com/google/uuid"
)

// The catalog is owned by the backend and read-only from this subsystem's
// perspective: services and their packages are seeded data.

type Service struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description *string
	CreatedAt   time.Time
}

// Package is a purchasable tier of a service. All prices are cents; a nil
// price field means that price path does not exist for the package.
type Package struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	ServiceSlug string
	ServiceName string
	Name        string
	Description *string

	PriceCents       *int64
	PriceSmallCents  *int64
	PriceMediumCents *int64
	PriceLargeCents  *int64

	// Strike-through display prices, never used for resolution.
	OriginalSmallCents  *int64
	OriginalMediumCents *int64
	OriginalLargeCents  *int64

	// Fleet variant: flat rate per foot of vehicle, ignoring size.
	PricePerFootCents *int64

	DurationMinutes *int32
	TurnaroundHours *int32
	Details         *string
	DisplayOrder    *int32
	CreatedAt       time.Time
}

// HasTieredPricing reports whether any per-size price exists.
func (p *Package) HasTieredPricing() bool {
	return p.PriceSmallCents != nil || p.PriceMediumCents != nil || p.PriceLargeCents != nil
}
