package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/monthly-expense/backend/internal/router"
	"github.com/stretchr/testify/require"
)

// requestBody returns the reader for a request body. Strings and readers
// are sent as they are, all other values are encoded as JSON.
func requestBody(t *testing.T, body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return http.NoBody
	case string:
		return strings.NewReader(b)
	case io.Reader:
		return b
	}

	data, err := json.Marshal(body)
	require.Nil(t, err, "request body could not be encoded as JSON")

	return bytes.NewReader(data)
}

// Request sends a request through a router with all routes attached and
// returns the recorded response.
//
// Links in responses use the base URL from the API_URL environment variable.
func Request(t *testing.T, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	apiURL, ok := os.LookupEnv("API_URL")
	require.True(t, ok, "environment variable API_URL must be set")

	baseURL, err := url.Parse(apiURL)
	require.Nil(t, err, "environment variable API_URL must be a valid URL")

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	require.Nil(t, err, "router could not be configured")
	router.AttachRoutes(r.Group("/"))

	req, err := http.NewRequest(method, reqURL, requestBody(t, body))
	require.Nil(t, err)

	for _, h := range headers {
		for name, value := range h {
			req.Header.Set(name, value)
		}
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the JSON body of a response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "response %q could not be decoded into %T. Request ID: %s", r.Body, target, r.Header().Get("x-request-id"))
}

// AssertHTTPStatus verifies the status code of the response is one of expectedStatus.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "unexpected HTTP status. Request ID: %s, body: %s", r.Header().Get("x-request-id"), r.Body.String())
}
