package commands

import (
	"context"
	"time"

	"quality-detailing/internal/domain/booking"
	"quality-detailing/internal/domain/customer"
	"quality-detailing/internal/domain/slot"

	"github.com/google/uuid"
)

// Write-side ports. Snapshots keep the write side off the read-side query
// types.

type SlotRepository interface {
	Create(ctx context.Context, s *slot.Slot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) error
}

type BookingRepository interface {
	// Create persists the booking row and one booking item per package in a
	// single transaction.
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// Update rewrites the full record; there is no partial update.
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingSnapshot struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	PackageID     uuid.UUID
	PackageIDs    []uuid.UUID
	ScheduledDate time.Time
	Status        string
	Notes         *string
	TotalCents    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
