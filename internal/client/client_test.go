//go:build unit

package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quality-detailing/internal/client"
	"quality-detailing/internal/client/adminauth"
	"quality-detailing/internal/client/cart"
	"quality-detailing/internal/domain/customer"
	"quality-detailing/internal/domain/pricing"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-admin-secret"

// fakeAPI is a minimal stand-in for the booking server, recording what the
// client sent.
type fakeAPI struct {
	createdCustomers []map[string]any
	singleBookings   []map[string]any
	multiBookings    []map[string]any
	deletedBookings  []string
	revoked          bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/bookings/with-details", func(w http.ResponseWriter, r *http.Request) {
		if f.revoked || r.Header.Get(middleware.AdminHeader) != testSecret {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid admin secret"})
			return
		}
		_ = json.NewEncoder(w).Encode([]queries.BookingDetails{})
	})

	mux.HandleFunc("POST /api/customers", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.createdCustomers = append(f.createdCustomers, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(queries.CustomerView{ID: uuid.New(), Name: body["name"].(string)})
	})

	mux.HandleFunc("POST /api/bookings", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.singleBookings = append(f.singleBookings, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(queries.BookingView{ID: uuid.New(), Status: "pending"})
	})

	mux.HandleFunc("POST /api/bookings/multi", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.multiBookings = append(f.multiBookings, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(queries.BookingView{ID: uuid.New(), Status: "pending"})
	})

	mux.HandleFunc("DELETE /api/bookings/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.AdminHeader) != testSecret {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Admin secret required"})
			return
		}
		f.deletedBookings = append(f.deletedBookings, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func newTestClient(t *testing.T) (*client.Client, *fakeAPI, *adminauth.Context) {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	auth := adminauth.New()
	return client.New(server.URL, auth), api, auth
}

func TestAdminLogin(t *testing.T) {
	t.Run("valid secret is stored", func(t *testing.T) {
		c, _, auth := newTestClient(t)

		require.NoError(t, c.AdminLogin(context.Background(), testSecret))
		assert.True(t, auth.IsAuthenticated())
	})

	t.Run("invalid secret is rejected and never stored", func(t *testing.T) {
		c, _, auth := newTestClient(t)

		err := c.AdminLogin(context.Background(), "wrong-secret")
		require.ErrorIs(t, err, client.ErrInvalidAdminSecret)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("stale secret is forgotten after a 401", func(t *testing.T) {
		c, api, auth := newTestClient(t)

		require.NoError(t, c.AdminLogin(context.Background(), testSecret))
		api.revoked = true

		_, err := c.ListBookingsWithDetails(context.Background(), 1)
		require.ErrorIs(t, err, client.ErrInvalidAdminSecret)
		assert.False(t, auth.IsAuthenticated())
	})

	t.Run("logout forgets the secret", func(t *testing.T) {
		c, _, auth := newTestClient(t)

		require.NoError(t, c.AdminLogin(context.Background(), testSecret))
		c.AdminLogout()
		assert.False(t, auth.IsAuthenticated())
	})
}

func TestSubmitBooking(t *testing.T) {
	scheduled := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	newCart := func(t *testing.T, items ...cart.Item) *cart.Cart {
		t.Helper()
		c, err := cart.New(cart.NewMemoryStore())
		require.NoError(t, err)
		for _, item := range items {
			require.NoError(t, c.Add(item))
		}
		return c
	}

	t.Run("single item uses the single endpoint and clears the cart", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t, cart.Item{PackageID: uuid.New(), Name: "Full Ceramic", PriceCents: 49900, Size: pricing.SizeMedium})

		booking, err := c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "Dana Smith",
			Email:         "dana@example.com",
			ScheduledDate: scheduled,
		})
		require.NoError(t, err)
		require.NotNil(t, booking)

		require.Len(t, api.createdCustomers, 1)
		require.Len(t, api.singleBookings, 1)
		assert.Empty(t, api.multiBookings)
		assert.Equal(t, float64(49900), api.singleBookings[0]["total_cents"])
		assert.Equal(t, 0, crt.Count())
	})

	t.Run("several items use the multi endpoint with the summed total", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t,
			cart.Item{PackageID: uuid.New(), Name: "Full Ceramic", PriceCents: 49900, Size: pricing.SizeMedium},
			cart.Item{PackageID: uuid.New(), Name: "Level 1", PriceCents: 12900, Size: pricing.SizeSmall},
		)

		_, err := c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "Dana Smith",
			Email:         "dana@example.com",
			ScheduledDate: scheduled,
		})
		require.NoError(t, err)

		require.Len(t, api.multiBookings, 1)
		assert.Empty(t, api.singleBookings)
		assert.Equal(t, float64(62800), api.multiBookings[0]["total_cents"])
		assert.Len(t, api.multiBookings[0]["package_ids"], 2)
		assert.Equal(t, 0, crt.Count())
	})

	t.Run("empty cart is rejected before any request", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t)

		_, err := c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "Dana Smith",
			Email:         "dana@example.com",
			ScheduledDate: scheduled,
		})
		require.ErrorIs(t, err, client.ErrEmptyCart)
		assert.Empty(t, api.createdCustomers)
	})

	t.Run("blank name is rejected before any request", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t, cart.Item{PackageID: uuid.New(), Name: "Full Ceramic", PriceCents: 49900, Size: pricing.SizeMedium})

		_, err := c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "   ",
			Email:         "dana@example.com",
			ScheduledDate: scheduled,
		})
		require.ErrorIs(t, err, customer.ErrEmptyName)
		assert.Empty(t, api.createdCustomers)
		assert.Empty(t, api.singleBookings)
		assert.Equal(t, 1, crt.Count(), "cart survives a failed submission")
	})

	t.Run("invalid email is rejected before any request", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t, cart.Item{PackageID: uuid.New(), Name: "Full Ceramic", PriceCents: 49900, Size: pricing.SizeMedium})

		_, err := c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "Dana Smith",
			Email:         "not-an-email",
			ScheduledDate: scheduled,
		})
		require.ErrorIs(t, err, customer.ErrInvalidEmail)
		assert.Empty(t, api.createdCustomers)
	})
}

func TestAddToCart(t *testing.T) {
	cents := func(v int64) *int64 { return &v }

	newCart := func(t *testing.T) *cart.Cart {
		t.Helper()
		c, err := cart.New(cart.NewMemoryStore())
		require.NoError(t, err)
		return c
	}

	t.Run("tiered package lands with the resolved size price", func(t *testing.T) {
		c, _, _ := newTestClient(t)
		crt := newCart(t)
		pkg := &resdto.PackageResponse{
			ID:               uuid.New(),
			ServiceSlug:      "interior-detailing",
			Name:             "Level 1",
			PriceSmallCents:  cents(12900),
			PriceMediumCents: cents(14900),
			PriceLargeCents:  cents(16900),
		}

		require.NoError(t, c.AddToCart(crt, pkg, pricing.SizeLarge))

		items := crt.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(16900), items[0].PriceCents)
		assert.Equal(t, "Level 1 ("+pricing.SizeLarge.Label()+")", items[0].Name)
		assert.Equal(t, pricing.SizeLarge, items[0].Size)
	})

	t.Run("flat-priced package keeps its plain name", func(t *testing.T) {
		c, _, _ := newTestClient(t)
		crt := newCart(t)
		pkg := &resdto.PackageResponse{
			ID:          uuid.New(),
			ServiceSlug: "paint-correction",
			Name:        "Single Stage",
			PriceCents:  cents(29900),
		}

		require.NoError(t, c.AddToCart(crt, pkg, pricing.SizeMedium))

		items := crt.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(29900), items[0].PriceCents)
		assert.Equal(t, "Single Stage", items[0].Name)
	})

	t.Run("unpriced package never reaches the cart or checkout", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		crt := newCart(t)
		pkg := &resdto.PackageResponse{
			ID:          uuid.New(),
			ServiceSlug: "ceramic-coating",
			Name:        "Consultation",
		}

		err := c.AddToCart(crt, pkg, pricing.SizeMedium)
		require.ErrorIs(t, err, client.ErrPackageUnpriced)
		assert.Equal(t, 0, crt.Count())

		_, err = c.SubmitBooking(context.Background(), crt, client.SubmitBookingInput{
			Name:          "Dana Smith",
			Email:         "dana@example.com",
			ScheduledDate: time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC),
		})
		require.ErrorIs(t, err, client.ErrEmptyCart)
		assert.Empty(t, api.createdCustomers)
		assert.Empty(t, api.singleBookings)
	})
}

func TestDeleteBooking(t *testing.T) {
	t.Run("admin removes a booking", func(t *testing.T) {
		c, api, _ := newTestClient(t)
		require.NoError(t, c.AdminLogin(context.Background(), testSecret))

		id := uuid.New()
		require.NoError(t, c.DeleteBooking(context.Background(), id))
		assert.Equal(t, []string{id.String()}, api.deletedBookings)
	})

	t.Run("requires a login", func(t *testing.T) {
		c, api, _ := newTestClient(t)

		err := c.DeleteBooking(context.Background(), uuid.New())
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Empty(t, api.deletedBookings)
	})
}

func TestDecodeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Package not found"})
	}))
	t.Cleanup(server.Close)

	c := client.New(server.URL, adminauth.New())
	_, err := c.GetPackage(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Package not found", apiErr.Message)
}
