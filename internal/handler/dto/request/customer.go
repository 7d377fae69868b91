package request

import "strings"

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone,omitempty"`
}

func (r CreateCustomerRequest) GetPhone() *string {
	if r.Phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
