package v1_test

import (
	"net/http"

	"github.com/kakeibo/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestFixedExpenses() {
	url := baseURL + "/2025-10/fixed-expenses"

	response := suite.mutate(http.MethodPost, url, map[string]any{"name": "保険", "amount": 5000}, http.StatusCreated)
	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.FixedExpenses, 5)

	created := response.Data.FixedExpenses[4]
	suite.Assert().Equal("保険", created.Name)
	suite.Assert().NotEmpty(created.ID)
	suite.Assert().Equal("76583", response.Data.Summary.TotalFixedExpenses.String())

	response = suite.mutate(http.MethodPatch, url+"/"+created.ID, map[string]any{"amount": "6000"}, http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("保険", response.Data.FixedExpenses[4].Name, "name must not change when only the amount is updated")
	suite.Assert().Equal("6000", response.Data.FixedExpenses[4].Amount.String())

	response = suite.mutate(http.MethodDelete, url+"/fe1", "", http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.FixedExpenses, 4)
	suite.Assert().Equal("30583", response.Data.Summary.TotalFixedExpenses.String())
}

func (suite *TestSuiteStandard) TestFixedExpenseMalformedAmount() {
	response := suite.mutate(http.MethodPost, baseURL+"/2025-10/fixed-expenses", map[string]any{"name": "保険", "amount": "五千"}, http.StatusCreated)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.FixedExpenses[4].Amount.IsZero())
}

func (suite *TestSuiteStandard) TestFixedExpenseNotFound() {
	tests := []struct {
		method string
		url    string
		err    error
	}{
		{http.MethodPatch, baseURL + "/2025-10/fixed-expenses/nope", models.ErrFixedExpenseNotFound},
		{http.MethodDelete, baseURL + "/2025-10/fixed-expenses/nope", models.ErrFixedExpenseNotFound},
		{http.MethodPost, baseURL + "/2020-01/fixed-expenses", models.ErrMonthNotFound},
	}

	for _, tt := range tests {
		response := suite.mutate(tt.method, tt.url, map[string]any{"name": "x"}, http.StatusNotFound)
		suite.Require().NotNil(response.Error)
		suite.Assert().Equal(tt.err.Error(), *response.Error)
	}
}
