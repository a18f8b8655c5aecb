package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialdl/gateway/internal/models"
)

// Recovery Panic 恢复中间件
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()))

				if !c.Writer.Written() {
					c.JSON(http.StatusInternalServerError, models.Failed("internal server error"))
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
