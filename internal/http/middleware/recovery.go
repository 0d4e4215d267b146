package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/companyinfo-backend/internal/http/response"
	"github.com/yungbote/companyinfo-backend/internal/platform/logger"
)

// Recovery turns a handler panic into the generic 500 envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("Panic while handling request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", recovered,
			)
		}
		response.RespondInternal(c)
		c.Abort()
	})
}
