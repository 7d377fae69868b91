package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEndNotAfterStart = errors.New("slot end must be after slot start")
	ErrZeroStart        = errors.New("slot start is required")
)

// Slot is an admin-published bookable time window. A nil end means a
// point-in-time slot. Slots are never mutated after creation.
type Slot struct {
	id        uuid.UUID
	start     time.Time
	end       *time.Time
	createdAt time.Time
}

func NewSlot(start time.Time, end *time.Time) (*Slot, error) {
	if start.IsZero() {
		return nil, ErrZeroStart
	}
	if end != nil && !end.After(start) {
		return nil, ErrEndNotAfterStart
	}
	return &Slot{
		id:    uuid.New(),
		start: start,
		end:   end,
	}, nil
}

func Reconstruct(id uuid.UUID, start time.Time, end *time.Time, createdAt time.Time) *Slot {
	return &Slot{
		id:        id,
		start:     start,
		end:       end,
		createdAt: createdAt,
	}
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) Start() time.Time     { return s.start }
func (s *Slot) End() *time.Time      { return s.end }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }

func (s *Slot) IsOpenEnded() bool {
	return s.end == nil
}
