package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo/backend/internal/config"
	"github.com/kakeibo/backend/internal/router"
	"github.com/kakeibo/backend/pkg/httputil"
	"github.com/stretchr/testify/assert"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The body is sent as is if it is a string and marshalled to JSON otherwise.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteStr []byte
	var err error

	if s, ok := body.(string); ok {
		byteStr = []byte(s)
	} else {
		byteStr, err = json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from object input", err)
		}
	}

	// Only the environment is used, no .env file
	cfg := config.Load(filepath.Join(t.TempDir(), ".env"))
	gin.SetMode(cfg.GinMode)

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(cfg, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(byteStr))

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// AssertHTTPStatus asserts that the response has one of the expected status codes.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expected ...int) {
	assert.Contains(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v'", r.Body, reflect.TypeOf(target), err)
	}
}

// DecodeError returns the error message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r httputil.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}
