package queries

import (
	"context"

	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultDetailsLimit = 100

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListWithDetails backs the admin review surface and doubles as the
	// login probe target.
	ListWithDetails(ctx context.Context, limit int) ([]*BookingDetails, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindWithDetails(ctx context.Context, limit int32) ([]*BookingDetails, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListWithDetails(ctx context.Context, limit int) ([]*BookingDetails, error) {
	if limit <= 0 {
		limit = defaultDetailsLimit
	}
	rows, err := q.store.FindWithDetails(ctx, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rows, nil
}
