package v1_test

import (
	"net/http"

	"github.com/kakeibo/backend/internal/test"
	v1 "github.com/kakeibo/backend/pkg/controllers/v1"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Months: "http://example.com/v1/months",
		Memo:   "http://example.com/v1/memo",
		Backup: "http://example.com/v1/backup",
		Stats:  "http://example.com/v1/stats",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createMonth()
	_ = suite.mutate(http.MethodPost, baseURL+"/2025-10/categories", map[string]any{"title": "趣味"}, http.StatusCreated)

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// A fresh seed month is created
	stats := suite.stats()
	suite.Assert().Equal(1, stats.Months)
	suite.Assert().Equal(4, stats.Categories)
}

func (suite *TestSuiteStandard) TestCleanupNoConfirmation() {
	suite.createMonth()

	for _, query := range []string{"", "?confirm=yes"} {
		r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1"+query, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	suite.Assert().Equal(2, suite.stats().Months)
}

func (suite *TestSuiteStandard) TestCleanupDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
