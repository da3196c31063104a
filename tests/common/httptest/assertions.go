//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertScanOutcome checks a scan endpoint response: HTTP code plus the
// outcome fields in the body. Empty uid/reason mean "must be absent"
// (they are omitted from the JSON for timeout and ok outcomes). The
// decoded body is returned for further checks.
func AssertScanOutcome(t *testing.T, w *httptest.ResponseRecorder, expectedCode int, status, uid, reason string) map[string]any {
	t.Helper()

	assert.Equal(t, expectedCode, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedCode, w.Code, w.Body.String()))

	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))

	assert.Equal(t, status, body["status"])
	if uid != "" {
		assert.Equal(t, uid, body["uid"])
	} else {
		assert.NotContains(t, body, "uid")
	}
	if reason != "" {
		assert.Equal(t, reason, body["reason"])
	} else {
		assert.NotContains(t, body, "reason")
	}
	return body
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
