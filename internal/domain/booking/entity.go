package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoPackages      = errors.New("at least one package is required")
	ErrZeroScheduled   = errors.New("scheduled date is required")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrTerminalStatus  = errors.New("no transition out of a terminal status")
	ErrNegativeTotal   = errors.New("booking total cannot be negative")
	ErrMissingCustomer = errors.New("customer reference is required")
)

// Booking groups one customer, one or more packages and a scheduled moment.
// A multi-package booking is still a single record: the first package id is
// the primary reference and the full list hangs off booking items.
type Booking struct {
	id            uuid.UUID
	customerID    uuid.UUID
	packageIDs    []uuid.UUID
	scheduledDate time.Time
	status        Status
	notes         *string
	totalCents    *int64
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(customerID uuid.UUID, packageIDs []uuid.UUID, scheduledDate time.Time, totalCents *int64, notes *string) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if len(packageIDs) == 0 {
		return nil, ErrNoPackages
	}
	if scheduledDate.IsZero() {
		return nil, ErrZeroScheduled
	}
	if totalCents != nil && *totalCents < 0 {
		return nil, ErrNegativeTotal
	}
	return &Booking{
		id:            uuid.New(),
		customerID:    customerID,
		packageIDs:    packageIDs,
		scheduledDate: scheduledDate,
		status:        StatusPending,
		notes:         notes,
		totalCents:    totalCents,
	}, nil
}

func Reconstruct(
	id, customerID uuid.UUID,
	packageIDs []uuid.UUID,
	scheduledDate time.Time,
	status Status,
	notes *string,
	totalCents *int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		packageIDs:    packageIDs,
		scheduledDate: scheduledDate,
		status:        status,
		notes:         notes,
		totalCents:    totalCents,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Transition validates and applies a status change. Storage has no partial
// update for bookings, so the caller re-sends the full record; Transition
// only guards the status field.
func (b *Booking) Transition(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransition(target) {
		return ErrTerminalStatus
	}
	b.status = target
	return nil
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) CustomerID() uuid.UUID       { return b.customerID }
func (b *Booking) PackageIDs() []uuid.UUID     { return b.packageIDs }
func (b *Booking) PrimaryPackageID() uuid.UUID { return b.packageIDs[0] }
func (b *Booking) ScheduledDate() time.Time    { return b.scheduledDate }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Notes() *string           { return b.notes }
func (b *Booking) TotalCents() *int64       { return b.totalCents }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) IsMultiPackage() bool {
	return len(b.packageIDs) > 1
}
