//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"decor-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx answers, decodes the
// body into target when it is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the body is the error
// envelope whose message contains wantMsg. An empty wantMsg only checks shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "body: %s", w.Body.String())

	var envelope httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, envelope.Error.Message, "error envelope has no message: %s", w.Body.String())
	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
