//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()
	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and the {"error":{"message"}} envelope.
// An empty expectedMessage only checks that the envelope is present.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Failed to decode error response JSON: %s", w.Body.String()) {
		return
	}
	if expectedMessage == "" {
		assert.NotEmpty(t, body.Error.Message)
		return
	}
	assert.Equal(t, expectedMessage, body.Error.Message)
}

// AssertRedirect checks a 302 and its Location header.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	assert.Equal(t, 302, w.Code, "Response: %s", w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"))
}
