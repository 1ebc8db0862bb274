package log

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware 每个请求记录一行日志，4xx 记 warn，5xx 记 error
func GinMiddleware(logger *Logger) gin.HandlerFunc {
	httpLogger := logger.WithComponent(ComponentHTTP)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		args := httpLogger.tagged([]any{
			FieldMethod, c.Request.Method,
			FieldPath, c.Request.URL.Path,
			FieldStatusCode, status,
			FieldDuration, time.Since(start).Milliseconds(),
			FieldClientIP, c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			args = append(args, FieldError, c.Errors.String())
		}
		httpLogger.Logger.Log(c.Request.Context(), level, "http request", args...)
	}
}
