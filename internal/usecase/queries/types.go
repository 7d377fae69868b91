package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SlotView struct {
	ID        uuid.UUID  `json:"id"`
	SlotStart time.Time  `json:"slot_start"`
	SlotEnd   *time.Time `json:"slot_end,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	PackageID     uuid.UUID `json:"package_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	TotalCents    *int64    `json:"total_cents,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingCustomerInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone,omitempty"`
}

type BookingPackageInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceCents      *int64    `json:"price_cents,omitempty"`
	DurationMinutes *int32    `json:"duration_minutes,omitempty"`
}

type BookingItemInfo struct {
	ID        uuid.UUID           `json:"id"`
	PackageID uuid.UUID           `json:"package_id"`
	Quantity  int32               `json:"quantity"`
	Package   *BookingPackageInfo `json:"package,omitempty"`
}

// BookingDetails is the admin review row: the booking joined with its
// customer, primary package and every booking item.
type BookingDetails struct {
	BookingView
	Customer *BookingCustomerInfo `json:"customer,omitempty"`
	Package  *BookingPackageInfo  `json:"package,omitempty"`
	Items    []BookingItemInfo    `json:"booking_items"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PackageView struct {
	ID                  uuid.UUID `json:"id"`
	ServiceID           uuid.UUID `json:"service_id"`
	ServiceName         string    `json:"service_name,omitempty"`
	ServiceSlug         string    `json:"service_slug,omitempty"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	PriceCents          *int64    `json:"price_cents,omitempty"`
	PriceSmallCents     *int64    `json:"price_small_cents,omitempty"`
	PriceMediumCents    *int64    `json:"price_medium_cents,omitempty"`
	PriceLargeCents     *int64    `json:"price_large_cents,omitempty"`
	OriginalSmallCents  *int64    `json:"price_original_small_cents,omitempty"`
	OriginalMediumCents *int64    `json:"price_original_medium_cents,omitempty"`
	OriginalLargeCents  *int64    `json:"price_original_large_cents,omitempty"`
	PricePerFootCents   *int64    `json:"price_per_foot_cents,omitempty"`
	DurationMinutes     *int32    `json:"duration_minutes,omitempty"`
	TurnaroundHours     *int32    `json:"turnaround_hours,omitempty"`
	Details             *string   `json:"details,omitempty"`
	DisplayOrder        *int32    `json:"display_order,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
