//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pontomais/internal/domain/catalog"
	"pontomais/internal/domain/point"
	"pontomais/internal/handler/api"
	reqdto "pontomais/internal/handler/dto/request"
	"pontomais/internal/handler/middleware"
	"pontomais/internal/usecase/queries"
	"pontomais/tests/common/httptest"
	queriesmock "pontomais/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PointHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCatalog      *queriesmock.MockCatalogQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *PointHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *PointHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewPointHandler(s.mockCatalog, s.mockAvailability)

	s.router.GET("/points", h.List)
	s.router.GET("/points/filters", h.Filters)
	s.router.GET("/points/:id", h.Get)
	s.router.GET("/points/:id/calendar", h.Calendar)
	s.router.POST("/points/:id/availability", h.Availability)
}

func (s *PointHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPointHandlerSuite(t *testing.T) {
	suite.Run(t, new(PointHandlerTestSuite))
}

func (s *PointHandlerTestSuite) TestList() {
	s.Run("categories accept repeated and comma separated values", func() {
		want := catalog.Filter{State: "SP", Categories: []string{"Quiosque", "Comércio", "Escritório"}}
		s.mockCatalog.EXPECT().List(gomock.Any(), want).
			Return([]*queries.PointView{{ID: uuid.New(), Title: "Quiosque Shopping Paulista"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/points?state=SP&category=Quiosque&category=Com%C3%A9rcio,Escrit%C3%B3rio", nil, "")

		var res []queries.PointView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("no filters", func() {
		s.mockCatalog.EXPECT().List(gomock.Any(), catalog.Filter{Categories: []string{}}).
			Return([]*queries.PointView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *PointHandlerTestSuite) TestFilters() {
	opts := &queries.FilterOptionsView{States: []string{"PR", "SP"}, Cities: []string{"São Paulo"}}
	s.mockCatalog.EXPECT().Filters(gomock.Any(), "SP", "").Return(opts, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/filters?state=SP", nil, "")

	var res queries.FilterOptionsView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal([]string{"São Paulo"}, res.Cities)
}

func (s *PointHandlerTestSuite) TestGet() {
	s.Run("error: 404 for a hidden point", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().Get(gomock.Any(), id).Return(nil, point.ErrPointHidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Point not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *PointHandlerTestSuite) TestCalendar() {
	id := uuid.New()

	s.Run("query is passed through", func() {
		q := reqdto.CalendarQuery{Month: "2024-03", Period: "Mensal", Selected: "20/03/2024"}
		view := &queries.CalendarView{PointID: id, Year: 2024, Month: 3, Period: "Mensal", CanProceed: true}
		s.mockAvailability.EXPECT().Calendar(gomock.Any(), id, q).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/points/"+id.String()+"/calendar?month=2024-03&period=Mensal&selected=20/03/2024", nil, "")

		var res queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.CanProceed)
	})

	s.Run("error: 400 for a bad month or period", func() {
		for _, qs := range []string{"month=03-2024", "month=2024-13", "period=Semanal"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/points/"+id.String()+"/calendar?"+qs, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})
}

func (s *PointHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	req := reqdto.AvailabilityRequest{Date: "10/03/2024", Period: "Quinzenal"}

	s.Run("a rejected date is still a 200", func() {
		view := &queries.AvailabilityView{
			Available: false,
			Period:    "Quinzenal",
			Error:     &queries.AvailabilityError{Code: "DATE_OCCUPIED", Message: "this date is already taken"},
		}
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, req).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/points/"+id.String()+"/availability", req, "")

		var res queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Available)
		s.Equal("DATE_OCCUPIED", res.Error.Code)
	})

	s.Run("error: 404 for an unknown point", func() {
		s.mockAvailability.EXPECT().Check(gomock.Any(), id, req).Return(nil, queries.ErrPointNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/points/"+id.String()+"/availability", req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Point not found")
	})
}
