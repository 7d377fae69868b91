package response

import (
	"time"

	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID        uuid.UUID  `json:"id"`
	SlotStart time.Time  `json:"slot_start"`
	SlotEnd   *time.Time `json:"slot_end,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	var resp SlotResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSlotViews(rms []*queries.SlotView) []*SlotResponse {
	result := make([]*SlotResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromSlotView(rm)
	}
	return result
}
