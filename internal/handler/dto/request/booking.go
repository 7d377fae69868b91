package request

import (
	"time"

	"quality-detailing/internal/domain/booking"
	"quality-detailing/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	PackageID     uuid.UUID `json:"package_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	TotalCents    *int64    `json:"total_cents,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		CustomerID:    r.CustomerID,
		PackageIDs:    []uuid.UUID{r.PackageID},
		ScheduledDate: r.ScheduledDate,
		TotalCents:    r.TotalCents,
		Notes:         r.Notes,
	}
}

// CreateMultiBookingRequest books several packages in one visit. The first
// package becomes the booking's primary package; every package gets its own
// booking item row.
type CreateMultiBookingRequest struct {
	CustomerID    uuid.UUID   `json:"customer_id" binding:"required"`
	PackageIDs    []uuid.UUID `json:"package_ids" binding:"required,min=1"`
	ScheduledDate time.Time   `json:"scheduled_date" binding:"required"`
	TotalCents    *int64      `json:"total_cents,omitempty"`
	Notes         *string     `json:"notes,omitempty"`
}

func (r CreateMultiBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		CustomerID:    r.CustomerID,
		PackageIDs:    r.PackageIDs,
		ScheduledDate: r.ScheduledDate,
		TotalCents:    r.TotalCents,
		Notes:         r.Notes,
	}
}

// UpdateBookingRequest resends the full record; there is no partial update.
type UpdateBookingRequest struct {
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	PackageID     uuid.UUID `json:"package_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Status        string    `json:"status" binding:"required,oneof=pending confirmed cancelled"`
	Notes         *string   `json:"notes,omitempty"`
}

func (r UpdateBookingRequest) ToParams() commands.UpdateBookingParams {
	return commands.UpdateBookingParams{
		CustomerID:    r.CustomerID,
		PackageID:     r.PackageID,
		ScheduledDate: r.ScheduledDate,
		Status:        booking.Status(r.Status),
		Notes:         r.Notes,
	}
}
