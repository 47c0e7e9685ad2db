package handlers

import (
	"github.com/gin-gonic/gin"

	"landscout-backoffice/internal/errors"
	"landscout-backoffice/pkg/logger"
)

// respondError maps err onto the standard failure envelope. Technical
// details go to the log; the body carries the user message only.
func respondError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	logger.GlobalLogger.Errorf("request failed: path=%s method=%s error=%s",
		c.Request.URL.Path, c.Request.Method, appErr.TechnicalMessage)
	c.JSON(appErr.HTTPStatus, gin.H{
		"success": false,
		"error":   appErr.UserMessage,
		"code":    appErr.Code,
	})
}
