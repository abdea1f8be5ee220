package v1_test

import (
	"net/http"

	v1 "github.com/kakeibo/backend/pkg/controllers/v1"
	"github.com/kakeibo/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	response := suite.mutate(http.MethodPost, baseURL+"/2025-10/categories", map[string]any{"title": "  趣味  ", "budget": 10000}, http.StatusCreated)
	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Categories, 5)

	c := response.Data.Categories[4]
	suite.Assert().Equal("趣味", c.Title)
	suite.Assert().Equal("10000", c.Budget.String())
	suite.Assert().Empty(c.Items)
	suite.Assert().True(c.Total.IsZero())
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyTitle() {
	response := suite.mutate(http.MethodPost, baseURL+"/2025-10/categories", v1.CategoryCreate{Title: "   "}, http.StatusBadRequest)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal(models.ErrCategoryTitleEmpty.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	response := suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat2", map[string]any{
		"title":          "生活費",
		"budget":         50000,
		"textareaHeight": 200,
	}, http.StatusOK)
	suite.Require().NotNil(response.Data)

	c, ok := category(*response.Data, "cat2")
	suite.Require().True(ok)
	suite.Assert().Equal("生活費", c.Title)
	suite.Assert().Equal("50000", c.Budget.String())
	suite.Require().NotNil(c.TextareaHeight)
	suite.Assert().Equal(200, *c.TextareaHeight)
	suite.Assert().Nil(c.Memo)
	suite.Assert().Equal("35000", c.Total.String())
}

func (suite *TestSuiteStandard) TestCategoryMemo() {
	url := baseURL + "/2025-10/categories/cat2"

	response := suite.mutate(http.MethodPatch, url, map[string]any{"memo": "スーパー １２００\n100×3\n(家族分 3000)"}, http.StatusOK)
	suite.Require().NotNil(response.Data)

	c, _ := category(*response.Data, "cat2")
	suite.Require().NotNil(c.Memo)
	suite.Assert().Equal("1500", c.Total.String(), "the memo replaces the items")
	suite.Assert().Len(c.Items, 2, "items are kept while a memo is set")
	suite.Assert().Equal("10754", response.Data.Summary.TotalVariableExpenses.String())

	// An empty memo switches back to the items
	response = suite.mutate(http.MethodPatch, url, map[string]any{"memo": ""}, http.StatusOK)
	suite.Require().NotNil(response.Data)

	c, _ = category(*response.Data, "cat2")
	suite.Assert().Nil(c.Memo)
	suite.Assert().Equal("35000", c.Total.String())
}

func (suite *TestSuiteStandard) TestUpdateCategoryErrors() {
	tests := []struct {
		name   string
		url    string
		body   map[string]any
		status int
		err    error
	}{
		{"Empty title", "/2025-10/categories/cat1", map[string]any{"title": ""}, http.StatusBadRequest, models.ErrCategoryTitleEmpty},
		{"Invalid height", "/2025-10/categories/cat1", map[string]any{"textareaHeight": 0}, http.StatusBadRequest, models.ErrTextareaHeightInvalid},
		{"Category not found", "/2025-10/categories/nope", map[string]any{"budget": 1}, http.StatusNotFound, models.ErrCategoryNotFound},
		{"Month not found", "/2020-01/categories/cat1", map[string]any{"budget": 1}, http.StatusNotFound, models.ErrMonthNotFound},
	}

	for _, tt := range tests {
		response := suite.mutate(http.MethodPatch, baseURL+tt.url, tt.body, tt.status)
		suite.Require().NotNil(response.Error, tt.name)
		suite.Assert().Equal(tt.err.Error(), *response.Error, tt.name)
	}
}

func (suite *TestSuiteStandard) TestUpdateCategoryFailedEditIsNotSaved() {
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat1", map[string]any{
		"budget":         1,
		"textareaHeight": -5,
	}, http.StatusBadRequest)

	c, _ := category(suite.getMonth("2025-10"), "cat1")
	suite.Assert().Equal("20000", c.Budget.String())
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	_ = suite.mutate(http.MethodPatch, baseURL+"/2025-10/categories/cat3", map[string]any{"memo": "500"}, http.StatusOK)

	response := suite.mutate(http.MethodDelete, baseURL+"/2025-10/categories/cat3", "", http.StatusOK)
	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Categories, 3)

	_, ok := category(*response.Data, "cat3")
	suite.Assert().False(ok)
	suite.Assert().Equal(0, suite.stats().MemoEntries)

	response = suite.mutate(http.MethodDelete, baseURL+"/2025-10/categories/cat3", "", http.StatusNotFound)
	suite.Require().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestItems() {
	url := baseURL + "/2025-10/categories/cat1/items"

	response := suite.mutate(http.MethodPost, url, map[string]any{"name": "映画", "amount": 1800}, http.StatusCreated)
	suite.Require().NotNil(response.Data)

	c, _ := category(*response.Data, "cat1")
	suite.Require().Len(c.Items, 2)
	item := c.Items[1]
	suite.Assert().Equal("映画", item.Name)
	suite.Assert().Equal("3384", c.Total.String())

	response = suite.mutate(http.MethodPatch, url+"/"+item.ID, map[string]any{"name": "映画館"}, http.StatusOK)
	suite.Require().NotNil(response.Data)
	c, _ = category(*response.Data, "cat1")
	suite.Assert().Equal("映画館", c.Items[1].Name)
	suite.Assert().Equal("1800", c.Items[1].Amount.String())

	response = suite.mutate(http.MethodDelete, url+"/i1", "", http.StatusOK)
	suite.Require().NotNil(response.Data)
	c, _ = category(*response.Data, "cat1")
	suite.Require().Len(c.Items, 1)
	suite.Assert().Equal("1800", c.Total.String())
}

func (suite *TestSuiteStandard) TestItemNotFound() {
	tests := []struct {
		method string
		url    string
		err    error
	}{
		{http.MethodPost, "/2025-10/categories/nope/items", models.ErrCategoryNotFound},
		{http.MethodPatch, "/2025-10/categories/cat1/items/nope", models.ErrLineItemNotFound},
		{http.MethodDelete, "/2025-10/categories/cat1/items/nope", models.ErrLineItemNotFound},
		{http.MethodDelete, "/2025-10/categories/cat2/items/i1", models.ErrLineItemNotFound},
	}

	for _, tt := range tests {
		response := suite.mutate(tt.method, baseURL+tt.url, map[string]any{"name": "x"}, http.StatusNotFound)
		suite.Require().NotNil(response.Error)
		suite.Assert().Equal(tt.err.Error(), *response.Error, "%s %s", tt.method, tt.url)
	}
}
