package queries

import (
	"context"
	"time"

	"quality-detailing/internal/pkg/clock"
)

const (
	// Default listing windows when the caller passes no bounds.
	CustomerWindowDays = 30
	AdminWindowDays    = 60
)

type SlotQueries interface {
	// List returns slots ordered by start within [from, to]. Zero bounds
	// default to a forward window from now: windowDays wide.
	List(ctx context.Context, from, to time.Time, windowDays int) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindInWindow(ctx context.Context, from, to time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
	clock clock.Clock
}

func NewSlotQueries(store SlotReadStore, clock clock.Clock) SlotQueries {
	return &slotQueriesImpl{store: store, clock: clock}
}

func (q *slotQueriesImpl) List(ctx context.Context, from, to time.Time, windowDays int) ([]*SlotView, error) {
	if windowDays <= 0 {
		windowDays = CustomerWindowDays
	}
	now := q.clock.Now()
	if from.IsZero() {
		from = now
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, windowDays)
	}
	return q.store.FindInWindow(ctx, from, to)
}
