package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "quality-detailing/internal/handler/dto/request"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/commands"
	"quality-detailing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewAvailabilityHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary List available slots
// @Description List open slots ordered by start time. Admins see a wider default window.
// @Tags availability
// @Produce json
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	windowDays := queries.CustomerWindowDays
	if middleware.IsAdmin(c) {
		windowDays = queries.AdminWindowDays
	}

	slots, err := h.slotQueries.List(c.Request.Context(), from, to, windowDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

// @Summary Create slot
// @Description Create a single availability slot
// @Tags availability
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability [post]
func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	slot, err := h.slotCommands.Create(c.Request.Context(), req.SlotStart, req.SlotEnd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSlotRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot end must be after slot start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(slot))
}

// @Summary Create slot range
// @Description Create one slot per day over a date range (31 days max)
// @Tags availability
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param request body reqdto.CreateSlotRangeRequest true "Range request"
// @Success 201 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /availability/range [post]
func (h *AvailabilityHandler) CreateSlotRange(c *gin.Context) {
	var req reqdto.CreateSlotRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	slots, err := h.slotCommands.CreateRange(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRangeTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date range exceeds 31 days",
			})
		case errors.Is(err, errs.ErrInvalidRangeDates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End date must not be before start date",
			})
		case errors.Is(err, errs.ErrInvalidSlotRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot end must be after slot start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotViews(slots))
}

// @Summary Delete slot
// @Description Delete an availability slot by ID
// @Tags availability
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/{id} [delete]
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.slotCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " format, expected RFC3339",
		})
		return time.Time{}, false
	}
	return t, true
}
