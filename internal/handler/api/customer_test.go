//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"quality-detailing/internal/handler/api"
	resdto "quality-detailing/internal/handler/dto/response"
	"quality-detailing/internal/pkg/errs"
	"quality-detailing/internal/usecase/queries"
	"quality-detailing/tests/common/httptest"
	commandsmock "quality-detailing/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomerCommands
	handler      *api.CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomerCommands(s.mockCtrl)
	s.handler = api.NewCustomerHandler(s.mockCommands)

	s.router.POST("/customers", s.handler.CreateCustomer)
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer() {
	url := "/customers"
	view := &queries.CustomerView{ID: uuid.New(), Name: "Dana Smith", Email: "dana@example.com"}
	body := map[string]any{"name": "Dana Smith", "email": "dana@example.com"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "Dana Smith", "dana@example.com", gomock.Nil()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var got resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("blank phone is dropped", func() {
		withPhone := map[string]any{"name": "Dana Smith", "email": "dana@example.com", "phone": "   "}
		s.mockCommands.EXPECT().Create(gomock.Any(), "Dana Smith", "dana@example.com", gomock.Nil()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, withPhone, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("malformed email rejected by binding", func() {
		bad := map[string]any{"name": "Dana Smith", "email": "not-an-email"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("domain validation failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "Dana Smith", "dana@example.com", gomock.Nil()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}
