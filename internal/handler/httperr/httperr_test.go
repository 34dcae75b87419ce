//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithErrorKeepsPublicMeta(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	cause := errs.New("slot taken")
	httperr.AbortWithError(c, http.StatusConflict, cause, "Already booked", gin.H{"field": "date"})

	require.Len(t, c.Errors, 1)
	last := c.Errors.Last()
	assert.True(t, last.IsType(gin.ErrorTypePublic))
	assert.True(t, errs.Is(last.Err, cause))

	resp, ok := last.Meta.(httperr.Response)
	require.True(t, ok, "meta should carry the rendered envelope")
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "Already booked", resp.Error.Message)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Already booked"},"detail":{"field":"date"}}`, w.Body.String())
}
