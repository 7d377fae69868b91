package response

import (
	"time"

	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	PackageID     uuid.UUID `json:"package_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
	Notes         *string   `json:"notes,omitempty"`
	TotalCents    *int64    `json:"total_cents,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingCustomerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone *string   `json:"phone,omitempty"`
}

type BookingPackageResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PriceCents      *int64    `json:"price_cents,omitempty"`
	DurationMinutes *int32    `json:"duration_minutes,omitempty"`
}

type BookingItemResponse struct {
	ID        uuid.UUID               `json:"id"`
	PackageID uuid.UUID               `json:"package_id"`
	Quantity  int32                   `json:"quantity"`
	Package   *BookingPackageResponse `json:"package,omitempty"`
}

type BookingDetailsResponse struct {
	BookingResponse
	Customer *BookingCustomerResponse `json:"customer,omitempty"`
	Package  *BookingPackageResponse  `json:"package,omitempty"`
	Items    []BookingItemResponse    `json:"booking_items"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingDetails(rm *queries.BookingDetails) *BookingDetailsResponse {
	resp := BookingDetailsResponse{Items: make([]BookingItemResponse, 0, len(rm.Items))}
	_ = copier.Copy(&resp.BookingResponse, &rm.BookingView)
	if rm.Customer != nil {
		resp.Customer = &BookingCustomerResponse{}
		_ = copier.Copy(resp.Customer, rm.Customer)
	}
	if rm.Package != nil {
		resp.Package = &BookingPackageResponse{}
		_ = copier.Copy(resp.Package, rm.Package)
	}
	for _, item := range rm.Items {
		var ir BookingItemResponse
		_ = copier.Copy(&ir, &item)
		resp.Items = append(resp.Items, ir)
	}
	return &resp
}

func FromBookingDetailsList(rms []*queries.BookingDetails) []*BookingDetailsResponse {
	result := make([]*BookingDetailsResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingDetails(rm)
	}
	return result
}
