package response

import (
	"time"

	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PackageResponse struct {
	ID                  uuid.UUID `json:"id"`
	ServiceID           uuid.UUID `json:"service_id"`
	ServiceName         string    `json:"service_name,omitempty"`
	ServiceSlug         string    `json:"service_slug,omitempty"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	PriceCents          *int64    `json:"price_cents,omitempty"`
	PriceSmallCents     *int64    `json:"price_small_cents,omitempty"`
	PriceMediumCents    *int64    `json:"price_medium_cents,omitempty"`
	PriceLargeCents     *int64    `json:"price_large_cents,omitempty"`
	OriginalSmallCents  *int64    `json:"price_original_small_cents,omitempty"`
	OriginalMediumCents *int64    `json:"price_original_medium_cents,omitempty"`
	OriginalLargeCents  *int64    `json:"price_original_large_cents,omitempty"`
	PricePerFootCents   *int64    `json:"price_per_foot_cents,omitempty"`
	DurationMinutes     *int32    `json:"duration_minutes,omitempty"`
	TurnaroundHours     *int32    `json:"turnaround_hours,omitempty"`
	Details             *string   `json:"details,omitempty"`
	DisplayOrder        *int32    `json:"display_order,omitempty"`
}

func FromServiceView(rm *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromServiceViews(rms []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromServiceView(rm)
	}
	return result
}

func FromPackageView(rm *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPackageViews(rms []*queries.PackageView) []*PackageResponse {
	result := make([]*PackageResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromPackageView(rm)
	}
	return result
}
