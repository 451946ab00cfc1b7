package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestSummaryHandler(t *testing.T) {
	suite.Run(t, new(SummaryHandlerSuite))
}

type SummaryHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	summaryService *service_mocks.MockSummaryServiceInterface
	handler        *SummaryHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func (s *SummaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.summaryService = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.handler = NewSummaryHandler(s.summaryService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *SummaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SummaryHandlerSuite) newContext(req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *SummaryHandlerSuite) TestGetSummary() {
	s.Run("returns dashboard summary", func() {
		summary := &dto.SummaryResponse{
			TotalIncome:   "3000",
			TotalExpenses: "700",
			NetIncome:     "2300",
			CategoryBreakdown: map[string]string{
				"Food": "500",
				"Rent": "200",
			},
			SavingsProgress: dto.SavingsProgressResponse{
				CurrentAmount: "250",
				TargetAmount:  "1000",
				Percentage:    25,
			},
		}

		s.summaryService.EXPECT().
			GetSummary(gomock.Any(), s.userID).
			Return(summary, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/summary", nil)
		rec, c := s.newContext(req)

		err := s.handler.GetSummary(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.SummaryResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("3000", response.TotalIncome)
		s.Equal("500", response.CategoryBreakdown["Food"])
		s.Equal(int64(25), response.SavingsProgress.Percentage)
	})

	s.Run("unauthenticated request", func() {
		req := httptest.NewRequest(http.MethodGet, "/summary", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.GetSummary(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *SummaryHandlerSuite) TestGetReport() {
	s.Run("passes period and date through", func() {
		report := &dto.ReportResponse{
			Period:        "week",
			IntervalStart: "2024-03-11T00:00:00Z",
			IntervalEnd:   "2024-03-17T23:59:59Z",
			SummaryResponse: dto.SummaryResponse{
				TotalIncome:   "1000",
				TotalExpenses: "400",
				NetIncome:     "600",
			},
		}

		s.summaryService.EXPECT().
			GetReport(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, query *dto.ReportQuery) (*dto.ReportResponse, error) {
				s.Equal("week", query.Period)
				s.Equal("2024-03-15", query.Date)
				return report, nil
			}).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/reports?period=week&date=2024-03-15", nil)
		rec, c := s.newContext(req)

		err := s.handler.GetReport(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.ReportResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &response)
		s.Equal("week", response.Period)
		s.Equal("600", response.NetIncome)
	})

	s.Run("invalid reference date", func() {
		s.summaryService.EXPECT().
			GetReport(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, services.ErrInvalidDate).
			Times(1)

		req := httptest.NewRequest(http.MethodGet, "/reports?period=month&date=not-a-date", nil)
		rec, c := s.newContext(req)

		err := s.handler.GetReport(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)

		var errorResp ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &errorResp)
		s.Equal("REPORT_002", errorResp.Error.Code)
	})

	s.Run("unauthenticated request", func() {
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		err := s.handler.GetReport(c)
		s.NoError(err)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
