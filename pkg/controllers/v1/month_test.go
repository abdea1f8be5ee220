package v1_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/kakeibo/backend/internal/test"
	v1 "github.com/kakeibo/backend/pkg/controllers/v1"
	"github.com/kakeibo/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthsSeed() {
	r := test.Request(suite.T(), http.MethodGet, baseURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	m := response.Data[0]
	suite.Assert().Equal("2025-10", m.MonthID.String())
	suite.Assert().Equal("190000", m.Income.String())
	suite.Assert().Len(m.FixedExpenses, 4)
	suite.Assert().Len(m.Categories, 4)

	suite.Assert().Equal("190000", m.Summary.TotalIncome.String())
	suite.Assert().Equal("71583", m.Summary.TotalFixedExpenses.String())
	suite.Assert().Equal("88417", m.Summary.DiscretionarySpending.String())
	suite.Assert().Equal("44254", m.Summary.TotalVariableExpenses.String())
	suite.Assert().Equal("115837", m.Summary.TotalSpentThisMonth.String())
	suite.Assert().Equal("44163", m.Summary.RemainingDiscretionary.String())
	suite.Assert().Equal("74163", m.Summary.TotalSavingsThisMonth.String())

	suite.Assert().Equal("http://example.com/v1/months/2025-10", m.Links.Self)
	suite.Assert().Equal("http://example.com/v1/months/2025-10/report", m.Links.Report)

	c, ok := category(m, "cat2")
	suite.Require().True(ok)
	suite.Assert().Equal("35000", c.Total.String())
	suite.Assert().Nil(c.Memo)
	suite.Assert().Nil(c.TextareaHeight)
}

func (suite *TestSuiteStandard) TestMonthsFilter() {
	suite.createMonth()
	suite.createMonth()
	suite.createMonth()

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"2025-10", "2025-11", "2025-12", "2026-01"}},
		{"2025-*", []string{"2025-10", "2025-11", "2025-12"}},
		{"*-01", []string{"2026-01"}},
		{"2025-11", []string{"2025-11"}},
		{"2030-*", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.filter, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"?month="+tt.filter, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MonthListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]string, 0)
			for _, m := range response.Data {
				ids = append(ids, m.MonthID.String())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateMonth() {
	m := suite.createMonth()

	suite.Assert().Equal("2025-11", m.MonthID.String())
	suite.Assert().Equal("190000", m.Income.String())
	suite.Assert().True(m.ExtraIncome.IsZero())
	suite.Assert().Len(m.FixedExpenses, 4)
	suite.Assert().Empty(m.Memo)

	for _, c := range m.Categories {
		suite.Assert().Empty(c.Items, "items must not be copied to the next month")
		suite.Assert().True(c.Total.IsZero())
	}
}

func (suite *TestSuiteStandard) TestCreateMonthAppliesHistory() {
	_ = suite.mutate(http.MethodPost, baseURL+"/2025-10/categories", v1.CategoryCreate{Title: "趣味"}, http.StatusCreated)
	_ = suite.mutate(http.MethodDelete, baseURL+"/2025-10/categories/cat3", "", http.StatusOK)
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{"title": "サブスク"}, http.StatusOK)

	m := suite.createMonth()

	titles := make([]string, 0)
	for _, c := range m.Categories {
		titles = append(titles, c.Title)
	}
	suite.Assert().Equal([]string{"サブスク", "日用品", "ローン返済", "趣味"}, titles)
}

func (suite *TestSuiteStandard) TestGetMonth() {
	m := suite.getMonth("2025-10")
	suite.Assert().Equal("2025-10", m.MonthID.String())
	suite.Assert().True(strings.HasPrefix(m.Memo, "月初に立てた目標"))
}

func (suite *TestSuiteStandard) TestGetMonthErrors() {
	tests := []struct {
		name   string
		month  string
		status int
	}{
		{"Invalid format", "october", http.StatusBadRequest},
		{"Invalid month", "2025-13", http.StatusBadRequest},
		{"Not found", "2020-01", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/"+tt.month, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetMonthNotFoundMessage() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2020-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal(models.ErrMonthNotFound.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUpdateMonth() {
	response := suite.mutate(http.MethodPatch, baseURL+"/2025-10", map[string]any{
		"income":      "200000",
		"extraIncome": 20000,
		"memo":        "",
	}, http.StatusOK)

	suite.Require().NotNil(response.Data)
	m := *response.Data
	suite.Assert().Equal("200000", m.Income.String())
	suite.Assert().Equal("20000", m.ExtraIncome.String())
	suite.Assert().Equal("30000", m.PreemptiveSavings.String(), "fields not sent must not be changed")
	suite.Assert().Empty(m.Memo)
	suite.Assert().Equal("220000", m.Summary.TotalIncome.String())

	// Changes are persisted
	suite.Assert().Equal("200000", suite.getMonth("2025-10").Income.String())
}

func (suite *TestSuiteStandard) TestUpdateMonthMalformedAmount() {
	response := suite.mutate(http.MethodPatch, baseURL+"/2025-10", map[string]any{
		"preemptiveSavings": "abc",
	}, http.StatusOK)

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.PreemptiveSavings.IsZero())
}

func (suite *TestSuiteStandard) TestRenameMonth() {
	suite.createMonth()

	response := suite.mutate(http.MethodPatch, baseURL+"/2025-11", map[string]any{"monthId": "2026-03"}, http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("2026-03", response.Data.MonthID.String())
	suite.Assert().Equal("http://example.com/v1/months/2026-03", response.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2025-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRenameMonthNotUnique() {
	suite.createMonth()

	response := suite.mutate(http.MethodPatch, baseURL+"/2025-11", map[string]any{"monthId": "2025-10"}, http.StatusBadRequest)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrMonthIDNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestUpdateMonthBrokenBody() {
	r := test.Request(suite.T(), http.MethodPatch, baseURL+"/2025-10", `{ "income": 5`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, baseURL+"/2025-10", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteMonth() {
	suite.createMonth()
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-11/categories/"+suite.getMonth("2025-11").Categories[0].ID, map[string]any{"memo": "500"}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodDelete, baseURL+"/2025-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, baseURL+"/2025-11", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	stats := suite.stats()
	suite.Assert().Equal(1, stats.Months)
	suite.Assert().Equal(0, stats.MemoEntries, "memos of the deleted month must be removed")
}

func (suite *TestSuiteStandard) TestDeleteLastMonth() {
	r := test.Request(suite.T(), http.MethodDelete, baseURL+"/2025-10", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrLastMonth.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodDelete, baseURL+"/2020-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMoveMonth() {
	suite.createMonth()
	suite.createMonth()

	r := test.Request(suite.T(), http.MethodPost, baseURL+"/2025-12/position", v1.MonthPosition{Position: 0})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	ids := make([]string, 0)
	for _, m := range response.Data {
		ids = append(ids, m.MonthID.String())
	}
	suite.Assert().Equal([]string{"2025-12", "2025-10", "2025-11"}, ids)

	// Adding a month still continues after the chronologically latest one
	suite.Assert().Equal("2026-01", suite.createMonth().MonthID.String())
}

func (suite *TestSuiteStandard) TestMoveMonthOutOfRange() {
	r := test.Request(suite.T(), http.MethodPost, baseURL+"/2025-10/position", v1.MonthPosition{Position: 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrMonthIndexOutOfRange.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestMonthSummaryRounding() {
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{"memo": "100÷8"}, http.StatusOK)

	tests := []struct {
		query string
		want  string
	}{
		{"", "12.5"},
		{"?round=false", "12.5"},
		{"?round=true", "13"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, baseURL+"/2025-10/summary"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Data)

			// 12.5 from the memo, 35000 + 3300 + 4370 from items
			want := decimal.RequireFromString(tt.want).Add(decimal.NewFromInt(42670))
			assert.True(t, want.Equal(response.Data.TotalVariableExpenses), "got %s", response.Data.TotalVariableExpenses)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthSummaryInvalidQuery() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2025-10/summary?round=maybe", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMonthReport() {
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{"memo": "100÷8"}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2025-10/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("text/html; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Assert().Equal(
		"attachment; filename*=UTF-8''%E5%AE%B6%E8%A8%88%E7%B0%BF-2025-10.html",
		r.Header().Get("Content-Disposition"),
	)

	body := r.Body.String()
	suite.Assert().Contains(body, "<title>家計簿 - 2025年10月</title>")
	suite.Assert().Contains(body, "<span>¥13</span>", "report totals are rounded")
}

func (suite *TestSuiteStandard) TestMonthReportNotFound() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2020-01/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMonthsDatabaseClosed() {
	suite.CloseDB()

	for _, tt := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, ""},
		{http.MethodPost, ""},
		{http.MethodGet, "/2025-10"},
		{http.MethodDelete, "/2025-10"},
		{http.MethodGet, "/2025-10/report"},
	} {
		r := test.Request(suite.T(), tt.method, baseURL+tt.path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
		suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()), "%s %s", tt.method, tt.path)
	}
}

func (suite *TestSuiteStandard) TestMonthSummaryRoundingFromConfig() {
	suite.T().Setenv("MEMO_ROUND_LIVE", "true")
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{"memo": "100÷8"}, http.StatusOK)

	r := test.Request(suite.T(), http.MethodGet, baseURL+"/2025-10/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("42683", response.Data.TotalVariableExpenses.String())
}
