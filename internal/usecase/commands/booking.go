package commands

import (
	"context"
	"time"

	"quality-detailing/internal/domain/booking"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	CustomerID    uuid.UUID
	PackageIDs    []uuid.UUID
	ScheduledDate time.Time
	TotalCents    *int64
	Notes         *string
}

// UpdateBookingParams carries the full record: the storage layer has no
// partial update for bookings, so the admin surface reads before it writes.
type UpdateBookingParams struct {
	CustomerID    uuid.UUID
	PackageID     uuid.UUID
	ScheduledDate time.Time
	Status        booking.Status
	Notes         *string
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	repo BookingRepository
}

func NewBookingCommands(repo BookingRepository) BookingCommands {
	return &bookingCommandsImpl{repo: repo}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	entity, err := booking.NewBooking(params.CustomerID, params.PackageIDs, params.ScheduledDate, params.TotalCents, params.Notes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrPackageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bookingToView(entity), nil
}

func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, params UpdateBookingParams) (*queries.BookingView, error) {
	snap, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	packageIDs := snap.PackageIDs
	if len(packageIDs) == 0 {
		packageIDs = []uuid.UUID{params.PackageID}
	}
	entity := booking.Reconstruct(
		snap.ID,
		params.CustomerID,
		packageIDs,
		params.ScheduledDate,
		booking.Status(snap.Status),
		params.Notes,
		snap.TotalCents,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
	if err := entity.Transition(params.Status); err != nil {
		switch err {
		case booking.ErrInvalidStatus:
			return nil, errs.Mark(err, errs.ErrInvalidStatus)
		default:
			return nil, errs.Mark(err, errs.ErrTerminalStatus)
		}
	}

	if err := c.repo.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bookingToView(entity), nil
}

// Delete removes a booking in any status; its items go with it.
func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:            b.ID(),
		CustomerID:    b.CustomerID(),
		PackageID:     b.PrimaryPackageID(),
		ScheduledDate: b.ScheduledDate(),
		Status:        b.Status().String(),
		Notes:         b.Notes(),
		TotalCents:    b.TotalCents(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}
