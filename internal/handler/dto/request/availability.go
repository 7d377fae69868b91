package request

import (
	"time"

	"quality-detailing/internal/domain/slot"
	"quality-detailing/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

type CreateSlotRequest struct {
	SlotStart time.Time  `json:"slot_start" binding:"required"`
	SlotEnd   *time.Time `json:"slot_end,omitempty"`
}

// CreateSlotRangeRequest expands into one slot per day. Dates are calendar
// days ("2006-01-02"), times are wall clock ("15:04"); end_time omitted
// means every generated slot is open ended.
type CreateSlotRangeRequest struct {
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date" binding:"required"`
	StartTime string  `json:"start_time" binding:"required"`
	EndTime   *string `json:"end_time,omitempty"`
}

func (r CreateSlotRangeRequest) ToParams() (commands.CreateSlotRangeParams, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateSlotRangeParams{}, err
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateSlotRangeParams{}, err
	}
	startTime, err := slot.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateSlotRangeParams{}, err
	}
	var endTime *slot.TimeOfDay
	if r.EndTime != nil {
		parsed, err := slot.ParseTimeOfDay(*r.EndTime)
		if err != nil {
			return commands.CreateSlotRangeParams{}, err
		}
		endTime = &parsed
	}
	return commands.CreateSlotRangeParams{
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
