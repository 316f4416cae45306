package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/middleware"
	"github.com/KirkDiggler/rpg-gm-api/internal/pkg/logger"
)

type MiddlewareTestSuite struct {
	suite.Suite
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (s *MiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *MiddlewareTestSuite) serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func (s *MiddlewareTestSuite) TestRequestIDIsReused() {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := s.serve(engine, req)

	s.Equal("req-123", rec.Body.String())
	s.Equal("req-123", rec.Header().Get(middleware.RequestIDHeader))

	rec = s.serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	s.NotEmpty(rec.Body.String())
}

func (s *MiddlewareTestSuite) TestOwner() {
	engine := gin.New()
	engine.Use(middleware.Owner("X-Owner-ID"))
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.OwnerID(c))
	})

	s.Run("present", func() {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Owner-ID", "gm-1")
		rec := s.serve(engine, req)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("gm-1", rec.Body.String())
	})

	s.Run("missing", func() {
		rec := s.serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *MiddlewareTestSuite) TestRecovery() {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.GET("/", func(*gin.Context) {
		panic("boom")
	})

	rec := s.serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body middleware.ErrorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.CodeInternal), body.Error.Code)
}

func (s *MiddlewareTestSuite) TestWriteError() {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		middleware.WriteError(c, errors.NotFound("campaign cmp-1 not found").WithMeta("campaign_id", "cmp-1"))
	})

	rec := s.serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":{"code":"NOT_FOUND","message":"campaign cmp-1 not found","meta":{"campaign_id":"cmp-1"}}}`, rec.Body.String())
}
