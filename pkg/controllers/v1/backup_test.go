package v1_test

import (
	"encoding/json"
	"net/http"

	"github.com/kakeibo/backend/internal/test"
	v1 "github.com/kakeibo/backend/pkg/controllers/v1"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/kakeibo/backend/pkg/models"
)

// stats returns the current statistics.
func (suite *TestSuiteStandard) stats() models.Stats {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) TestStats() {
	suite.createMonth()
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{"memo": "500"}, http.StatusOK)

	suite.Assert().Equal(models.Stats{
		Months:        2,
		Categories:    8,
		FixedExpenses: 8,
		MemoEntries:   1,
	}, suite.stats())
}

func (suite *TestSuiteStandard) TestBackupRoundTrip() {
	suite.createMonth()
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat2", map[string]any{"memo": "1200", "textareaHeight": 180}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(`attachment; filename="kakeibo-backup-2025-10-15.json"`, r.Header().Get("Content-Disposition"))

	backup := r.Body.String()
	suite.Assert().Contains(backup, `"version":"1.0"`)
	suite.Assert().Contains(backup, `"categoryFreeMemos":{"cat2":"1200"}`)

	var parsed models.Backup
	suite.Require().Nil(json.Unmarshal([]byte(backup), &parsed))
	suite.Assert().Len(parsed.Months, 2)

	// Wipe everything, then restore
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal(1, suite.stats().Months)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup", backup)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.Months)
	suite.Assert().Equal(1, response.Data.MemoEntries)

	c, ok := category(suite.getMonth("2025-10"), "cat2")
	suite.Require().True(ok)
	suite.Require().NotNil(c.Memo)
	suite.Assert().Equal("1200", *c.Memo)
	suite.Require().NotNil(c.TextareaHeight)
	suite.Assert().Equal(180, *c.TextareaHeight)
}

func (suite *TestSuiteStandard) TestRestoreBackupErrors() {
	tests := []struct {
		name string
		body string
		err  string
	}{
		{"Empty", "", httputil.ErrRequestBodyEmpty.Error()},
		{"Not JSON", "not json", models.ErrBackupInvalid.Error()},
		{"Version", `{ "version": "2.0", "monthsData": [] }`, models.ErrUnsupportedBackupVersion.Error()},
		{"Duplicate month", `{ "version": "1.0", "monthsData": [{ "monthId": "2025-09" }, { "monthId": "2025-09" }] }`, models.ErrMonthIDNotUnique.Error()},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/backup", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.StatsResponse
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Require().NotNil(response.Error, tt.name)
		suite.Assert().Contains(*response.Error, tt.err, tt.name)
	}

	// Nothing was changed
	suite.Assert().Equal(1, suite.stats().Months)
}

func (suite *TestSuiteStandard) TestBackupDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/backup", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/stats", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
