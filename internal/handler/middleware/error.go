package middleware

import (
	"log/slog"
	"net/http"

	"purchase-approval/internal/handler/httperr"
	"purchase-approval/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logServerErrors(c)

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// clients only see a generic message for 5xx, so the cause goes to the log
func logServerErrors(c *gin.Context) {
	for _, ge := range c.Errors {
		resp, ok := ge.Meta.(httperr.Response)
		if !ok || resp.Status < http.StatusInternalServerError {
			continue
		}
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"error", ge.Err.Error(),
			"stack", errs.ExtractStackLines(ge.Err, stackLinesLogged))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
