package commands

import (
	"context"
	"time"

	"quality-detailing/internal/domain/slot"
	"quality-detailing/internal/infra"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotCommands interface {
	Create(ctx context.Context, start time.Time, end *time.Time) (*queries.SlotView, error)
	// CreateRange expands a day range into one slot per calendar day.
	// Creation is sequential and fail-fast: a failure on day N leaves the
	// slots of days 1..N-1 in place, and the returned error names the day.
	CreateRange(ctx context.Context, params CreateSlotRangeParams) ([]*queries.SlotView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateSlotRangeParams struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime slot.TimeOfDay
	EndTime   *slot.TimeOfDay
}

type slotCommandsImpl struct {
	repo SlotRepository
}

func NewSlotCommands(repo SlotRepository) SlotCommands {
	return &slotCommandsImpl{repo: repo}
}

func (c *slotCommandsImpl) Create(ctx context.Context, start time.Time, end *time.Time) (*queries.SlotView, error) {
	s, err := slot.NewSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSlotRange)
	}
	if err := c.repo.Create(ctx, s); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return slotToView(s), nil
}

func (c *slotCommandsImpl) CreateRange(ctx context.Context, params CreateSlotRangeParams) ([]*queries.SlotView, error) {
	days, err := slot.RangeDays(params.StartDate, params.EndDate)
	if err != nil {
		switch err {
		case slot.ErrRangeReversed:
			return nil, errs.Mark(err, errs.ErrInvalidRangeDates)
		default:
			return nil, errs.Mark(err, errs.ErrRangeTooLarge)
		}
	}

	created := make([]*queries.SlotView, 0, len(days))
	for _, day := range days {
		s, err := slot.NewDaySlot(day, params.StartTime, params.EndTime)
		if err != nil {
			return created, errs.Mark(err, errs.ErrInvalidSlotRange)
		}
		if err := c.repo.Create(ctx, s); err != nil {
			// No rollback of earlier days; the admin view reconciles by
			// re-fetching the slot list.
			err = errs.Wrap(err, "failed to create slot for "+day.Format("2006-01-02"))
			return created, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		created = append(created, slotToView(s))
	}
	return created, nil
}

func (c *slotCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrSlotNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func slotToView(s *slot.Slot) *queries.SlotView {
	return &queries.SlotView{
		ID:        s.ID(),
		SlotStart: s.Start(),
		SlotEnd:   s.End(),
		CreatedAt: s.CreatedAt(),
	}
}
