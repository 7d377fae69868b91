package client

import (
	"context"
	"log/slog"
	"time"

	"quality-detailing/internal/client/cart"
	"quality-detailing/internal/domain/customer"
	reqdto "quality-detailing/internal/handler/dto/request"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyCart = errs.New("cart is empty")

type SubmitBookingInput struct {
	Name          string
	Email         string
	Phone         *string
	ScheduledDate time.Time
	Notes         *string
}

// SubmitBooking runs the full checkout: create a fresh customer, then book
// every cart item in a single booking. One item goes through the single
// endpoint, several through the multi endpoint. The cart is cleared only
// after the booking succeeds.
func (c *Client) SubmitBooking(ctx context.Context, crt *cart.Cart, in SubmitBookingInput) (*resdto.BookingResponse, error) {
	items := crt.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Validate contact details with the same rules the server applies, so a
	// blank name or email fails here with a field-level error instead of a
	// generic 400 from the wire.
	if _, err := customer.NewCustomer(in.Name, in.Email, in.Phone); err != nil {
		return nil, err
	}

	created, err := c.CreateCustomer(ctx, reqdto.CreateCustomerRequest{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
	if err != nil {
		return nil, err
	}

	total := crt.TotalCents()

	var booking *resdto.BookingResponse
	if len(items) == 1 {
		booking, err = c.CreateBooking(ctx, reqdto.CreateBookingRequest{
			CustomerID:    created.ID,
			PackageID:     items[0].PackageID,
			ScheduledDate: in.ScheduledDate,
			TotalCents:    &total,
			Notes:         in.Notes,
		})
	} else {
		packageIDs := make([]uuid.UUID, len(items))
		for i, item := range items {
			packageIDs[i] = item.PackageID
		}
		booking, err = c.CreateMultiBooking(ctx, reqdto.CreateMultiBookingRequest{
			CustomerID:    created.ID,
			PackageIDs:    packageIDs,
			ScheduledDate: in.ScheduledDate,
			TotalCents:    &total,
			Notes:         in.Notes,
		})
	}
	if err != nil {
		return nil, err
	}

	if err := crt.Clear(); err != nil {
		// The booking exists; a stale cart is recoverable on next load.
		slog.Warn("failed to clear cart after booking", "booking_id", booking.ID, "error", err)
	}
	return booking, nil
}
