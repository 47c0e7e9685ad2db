package middleware

import (
	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/pkg/logger"
)

// ErrorHandler turns errors attached to the context into the standard
// response envelope. The technical message goes to the log; the client only
// ever sees the mapped user message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			appErr := errors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"success": false,
				"error":   appErr.UserMessage,
				"code":    appErr.Code,
			})
			return
		}
	}
}
