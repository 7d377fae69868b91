package api

import (
	"errors"
	"net/http"

	reqdto "quality-detailing/internal/handler/dto/request"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerCommands commands.CustomerCommands
}

func NewCustomerHandler(customerCommands commands.CustomerCommands) *CustomerHandler {
	return &CustomerHandler{
		customerCommands: customerCommands,
	}
}

// @Summary Create customer
// @Description Create a customer record for a booking submission
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customer, err := h.customerCommands.Create(c.Request.Context(), req.Name, req.Email, req.GetPhone())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCustomerView(customer))
}
