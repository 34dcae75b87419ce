package middleware

import (
	"log/slog"
	"net/http"

	"decor-booking/internal/handler/httperr"
	"decor-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgInternal = "Internal server error"

// ErrorHandler renders errors attached with c.Error by handlers that did not
// write a body themselves. The most recent public error wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		msg := http.StatusText(status)
		if status >= http.StatusInternalServerError {
			msg = msgInternal
		}
		c.JSON(status, httperr.NewResponse(status, msg, nil))
	}
}

// CustomRecovery turns a panic into a 500 envelope and logs the top of the stack.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := errs.Newf("panic: %v", rec)
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(err, 12))

			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, msgInternal, nil))
		}()
		c.Next()
	}
}

// NoRoute keeps unknown paths on the same error envelope as handled errors.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, "Not found", nil))
	}
}
