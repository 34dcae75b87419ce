//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/handler/middleware"
	"decor-booking/internal/pkg/errs"
	"decor-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.NoRoute(middleware.NoRoute())

	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/public", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errs.New("quota exceeded"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(http.StatusTooManyRequests, "Slow down", nil),
		})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errs.New("pool exhausted"))
	})
	r.GET("/abort", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, nil, "Already booked", gin.H{"field": "date"})
	})
	return r
}

func TestErrorEnvelope(t *testing.T) {
	r := newErrorRouter()

	tests := []struct {
		name   string
		path   string
		status int
		msg    string
	}{
		{"panic is recovered", "/panic", http.StatusInternalServerError, "Internal server error"},
		{"public error meta is rendered", "/public", http.StatusTooManyRequests, "Slow down"},
		{"private error is hidden", "/private", http.StatusInternalServerError, "Internal server error"},
		{"abort without cause", "/abort", http.StatusConflict, "Already booked"},
		{"unknown route", "/nowhere", http.StatusNotFound, "Not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, r, http.MethodGet, tt.path, nil, "")
			httptest.AssertErrorResponse(t, w, tt.status, tt.msg)
		})
	}

	t.Run("detail is passed through", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/abort", nil, "")
		assert.JSONEq(t, `{"error":{"message":"Already booked"},"detail":{"field":"date"}}`, w.Body.String())
	})
}
