package v1_test

import (
	"net/http"
	"testing"

	"github.com/kakeibo/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path   string
		status int
		allow  string
	}{
		{"/v1", http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{"/v1/months", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"/v1/months/2025-10", http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"/v1/months/2020-01", http.StatusNotFound, ""},
		{"/v1/months/2025-10/position", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/months/2025-10/summary", http.StatusNoContent, "OPTIONS, GET"},
		{"/v1/months/2025-10/report", http.StatusNoContent, "OPTIONS, GET"},
		{"/v1/months/2025-10/fixed-expenses", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/months/2025-10/fixed-expenses/fe1", http.StatusNoContent, "OPTIONS, PATCH, DELETE"},
		{"/v1/months/2025-10/categories", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/months/2025-10/categories/cat1", http.StatusNoContent, "OPTIONS, PATCH, DELETE"},
		{"/v1/months/2025-10/categories/cat1/items", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/months/2025-10/categories/cat1/items/i1", http.StatusNoContent, "OPTIONS, PATCH, DELETE"},
		{"/v1/memo", http.StatusNoContent, "OPTIONS, POST"},
		{"/v1/backup", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"/v1/stats", http.StatusNoContent, "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
