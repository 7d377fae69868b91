//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"quality-detailing/internal/handler/api"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/handler/middleware"
	"quality-detailing/internal/pkg/config"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/commands"
	"quality-detailing/internal/usecase/queries"
	"quality-detailing/tests/common/httptest"
	commandsmock "quality-detailing/tests/mock/commands"
	queriesmock "quality-detailing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	cfg := config.NewTestConfig()
	admin := middleware.NewAdminMiddleware(cfg.Admin)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.POST("/bookings/multi", s.handler.CreateMultiBooking)
	s.router.GET("/bookings/with-details", admin.RequireAdmin(), s.handler.ListWithDetails)
	s.router.GET("/bookings/:id", admin.RequireAdmin(), s.handler.GetBooking)
	s.router.PUT("/bookings/:id", admin.RequireAdmin(), s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", admin.RequireAdmin(), s.handler.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingView(status string) *queries.BookingView {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		PackageID:     uuid.New(),
		ScheduledDate: now.AddDate(0, 0, 7),
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	view := s.bookingView("pending")
	body := map[string]any{
		"customer_id":    view.CustomerID.String(),
		"package_id":     view.PackageID.String(),
		"scheduled_date": view.ScheduledDate.Format(time.RFC3339),
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Require().Len(params.PackageIDs, 1)
				s.Equal(view.PackageID, params.PackageIDs[0])
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("pending", got.Status)
	})

	s.Run("unknown package or customer", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPackageNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer or package not found")
	})

	s.Run("domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("missing required field", func() {
		bad := map[string]any{"customer_id": view.CustomerID.String()}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestCreateMultiBooking() {
	url := "/bookings/multi"
	view := s.bookingView("pending")
	packageIDs := []string{view.PackageID.String(), uuid.New().String()}
	body := map[string]any{
		"customer_id":    view.CustomerID.String(),
		"package_ids":    packageIDs,
		"scheduled_date": view.ScheduledDate.Format(time.RFC3339),
	}

	s.Run("success passes every package through", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Require().Len(params.PackageIDs, 2)
				s.Equal(view.PackageID, params.PackageIDs[0])
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("empty package list", func() {
		bad := map[string]any{
			"customer_id":    view.CustomerID.String(),
			"package_ids":    []string{},
			"scheduled_date": view.ScheduledDate.Format(time.RFC3339),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := s.bookingView("confirmed")

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, testAdminSecret)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("missing booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("requires admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	view := s.bookingView("confirmed")
	body := map[string]any{
		"customer_id":    view.CustomerID.String(),
		"package_id":     view.PackageID.String(),
		"scheduled_date": view.ScheduledDate.Format(time.RFC3339),
		"status":         "confirmed",
	}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/"+view.ID.String(), body, testAdminSecret)

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("confirmed", got.Status)
	})

	s.Run("terminal booking", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, errs.ErrTerminalStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/"+view.ID.String(), body, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking status is terminal")
	})

	s.Run("status outside the allowed set", func() {
		bad := map[string]any{
			"customer_id":    view.CustomerID.String(),
			"package_id":     view.PackageID.String(),
			"scheduled_date": view.ScheduledDate.Format(time.RFC3339),
			"status":         "archived",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/"+view.ID.String(), bad, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("requires admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/bookings/"+view.ID.String(), body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, testAdminSecret)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("missing booking", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("requires admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestListWithDetails() {
	url := "/bookings/with-details"
	view := s.bookingView("pending")
	details := []*queries.BookingDetails{
		{
			BookingView: *view,
			Customer:    &queries.BookingCustomerInfo{ID: view.CustomerID, Name: "Dana Smith", Email: "dana@example.com"},
			Package:     &queries.BookingPackageInfo{ID: view.PackageID, Name: "Full Ceramic"},
			Items: []queries.BookingItemInfo{
				{ID: uuid.New(), PackageID: view.PackageID, Quantity: 1},
			},
		},
	}

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListWithDetails(gomock.Any(), 0).Return(details, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testAdminSecret)

		var got []resdto.BookingDetailsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got, 1)
		s.Equal("Dana Smith", got[0].Customer.Name)
		s.Len(got[0].Items, 1)
	})

	s.Run("explicit limit", func() {
		s.mockQueries.EXPECT().ListWithDetails(gomock.Any(), 5).Return(details, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, testAdminSecret)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("negative limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-1", nil, testAdminSecret)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("requires admin", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
