//go:build integration

package handlers_test

import (
	"net/http"
	"testing"

	"channel-relay/internal/api/handlers"
	"channel-relay/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type HealthHandlerTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	http *testutils.HTTPTestSuite
}

func (suite *HealthHandlerTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.http = testutils.SetupHTTPTest()

	h := handlers.NewHealthHandler("test", handlers.DatabaseCheck(suite.base.DB))
	suite.http.Router.GET("/health", h.Health)
	suite.http.Router.GET("/health/ready", h.Ready)
	suite.http.Router.GET("/health/live", h.Live)
}

func (suite *HealthHandlerTestSuite) TestHealth() {
	rec := suite.http.MakeRequest(http.MethodGet, "/health", nil, nil)

	var got handlers.HealthResponse
	testutils.ParseJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Equal("healthy", got.Status)
	suite.Equal("test", got.Version)
	suite.Equal("healthy", got.Services["database"])
}

func (suite *HealthHandlerTestSuite) TestReady() {
	rec := suite.http.MakeRequest(http.MethodGet, "/health/ready", nil, nil)

	var got map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Equal(true, got["ready"])
}

func (suite *HealthHandlerTestSuite) TestLive() {
	rec := suite.http.MakeRequest(http.MethodGet, "/health/live", nil, nil)

	testutils.AssertStatus(suite.T(), rec, http.StatusOK)
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
