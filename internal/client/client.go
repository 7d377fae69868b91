package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"quality-detailing/internal/client/adminauth"
	"quality-detailing/internal/domain/pricing"
	reqdto "quality-detailing/internal/handler/dto/request"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidAdminSecret = errs.New("invalid admin secret")

// Client talks to the booking API. Admin endpoints attach the secret from
// the auth context when one has been set.
type Client struct {
	baseURL  string
	httpc    *http.Client
	auth     *adminauth.Context
	resolver *pricing.Resolver
}

func New(baseURL string, auth *adminauth.Context) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: 30 * time.Second},
		auth:     auth,
		resolver: pricing.NewResolver(pricing.DefaultOverrides()),
	}
}

// AdminLogin verifies the secret by probing the admin booking list and
// stores it in the auth context on success.
func (c *Client) AdminLogin(ctx context.Context, secret string) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/bookings/with-details?limit=1", nil)
	if err != nil {
		return err
	}
	req.Header.Set(middleware.AdminHeader, secret)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errs.Wrap(err, "admin login probe failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidAdminSecret
	}
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	c.auth.Set(secret)
	return nil
}

func (c *Client) AdminLogout() {
	c.auth.Clear()
}

func (c *Client) ListSlots(ctx context.Context, from, to time.Time) ([]*resdto.SlotResponse, error) {
	query := url.Values{}
	if !from.IsZero() {
		query.Set("from", from.Format(time.RFC3339))
	}
	if !to.IsZero() {
		query.Set("to", to.Format(time.RFC3339))
	}
	path := "/api/availability"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var result []*resdto.SlotResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) CreateSlot(ctx context.Context, req reqdto.CreateSlotRequest) (*resdto.SlotResponse, error) {
	var result resdto.SlotResponse
	if err := c.do(ctx, http.MethodPost, "/api/availability", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateSlotRange(ctx context.Context, req reqdto.CreateSlotRangeRequest) ([]*resdto.SlotResponse, error) {
	var result []*resdto.SlotResponse
	if err := c.do(ctx, http.MethodPost, "/api/availability/range", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/availability/"+id.String(), nil, nil, http.StatusNoContent)
}

func (c *Client) CreateCustomer(ctx context.Context, req reqdto.CreateCustomerRequest) (*resdto.CustomerResponse, error) {
	var result resdto.CustomerResponse
	if err := c.do(ctx, http.MethodPost, "/api/customers", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*resdto.BookingResponse, error) {
	var result resdto.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateMultiBooking(ctx context.Context, req reqdto.CreateMultiBookingRequest) (*resdto.BookingResponse, error) {
	var result resdto.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings/multi", req, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest) (*resdto.BookingResponse, error) {
	var result resdto.BookingResponse
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+id.String(), req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+id.String(), nil, nil, http.StatusNoContent)
}

func (c *Client) ListBookingsWithDetails(ctx context.Context, limit int) ([]*resdto.BookingDetailsResponse, error) {
	path := "/api/bookings/with-details"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var result []*resdto.BookingDetailsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListServices(ctx context.Context) ([]*resdto.ServiceResponse, error) {
	var result []*resdto.ServiceResponse
	if err := c.do(ctx, http.MethodGet, "/api/services", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ListServicePackages(ctx context.Context, slug string) ([]*resdto.PackageResponse, error) {
	var result []*resdto.PackageResponse
	if err := c.do(ctx, http.MethodGet, "/api/services/"+slug+"/packages", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetPackage(ctx context.Context, id uuid.UUID) (*resdto.PackageResponse, error) {
	var result resdto.PackageResponse
	if err := c.do(ctx, http.MethodGet, "/api/packages/"+id.String(), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret, ok := c.auth.Secret(); ok {
		req.Header.Set(middleware.AdminHeader, secret)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any, wantStatus int) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errs.Wrap(err, fmt.Sprintf("%s %s failed", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		// A 401 on an authenticated call means the cached secret went
		// stale; forget it so the caller can prompt for a fresh login.
		if resp.StatusCode == http.StatusUnauthorized && c.auth.IsAuthenticated() {
			c.auth.Clear()
			return ErrInvalidAdminSecret
		}
		return decodeError(resp)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errs.Wrap(err, "failed to decode response body")
	}
	return nil
}
