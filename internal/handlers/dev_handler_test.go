package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestDevHandler(t *testing.T) {
	suite.Run(t, new(DevHandlerSuite))
}

type DevHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	demoDataService *service_mocks.MockDemoDataServiceInterface
	handler         *DevHandler
	e               *echo.Echo
	userID          uuid.UUID
}

func (s *DevHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.demoDataService = service_mocks.NewMockDemoDataServiceInterface(s.ctrl)
	s.handler = NewDevHandler(s.demoDataService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *DevHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DevHandlerSuite) seedRequest(body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/dev/seed", bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *DevHandlerSuite) TestSeedDemoData() {
	s.Run("seeds with defaults", func() {
		s.demoDataService.EXPECT().
			SeedDemoData(s.userID, 100, "month").
			Return(&dto.DemoDataResult{
				TransactionsCreated: 100,
				CategoriesCreated:   8,
				GoalsCreated:        3,
			}, nil).
			Times(1)

		rec, c := s.seedRequest(map[string]interface{}{})

		err := s.handler.SeedDemoData(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal(float64(100), response["transactions_created"])
		s.Equal(float64(8), response["categories_created"])
		s.Equal(float64(3), response["goals_created"])
	})

	s.Run("honors explicit count and period", func() {
		s.demoDataService.EXPECT().
			SeedDemoData(s.userID, 50, "week").
			Return(&dto.DemoDataResult{TransactionsCreated: 50}, nil).
			Times(1)

		rec, c := s.seedRequest(map[string]interface{}{
			"transactionCount": 50,
			"period":           "week",
		})

		err := s.handler.SeedDemoData(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejects unknown period", func() {
		// No mock expectation - validation should fail before service is called
		_, c := s.seedRequest(map[string]interface{}{
			"period": "decade",
		})

		err := s.handler.SeedDemoData(c)
		s.Error(err)
	})

	s.Run("unauthenticated request", func() {
		req := httptest.NewRequest(http.MethodPost, "/dev/seed", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.SeedDemoData(c)
		s.Require().Error(err)
		httpErr, ok := err.(*echo.HTTPError)
		s.Require().True(ok)
		s.Equal(http.StatusUnauthorized, httpErr.Code)
	})
}
