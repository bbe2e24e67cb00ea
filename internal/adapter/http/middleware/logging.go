package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GinZapMiddleware writes one access log line per request. Health probes are
// logged at debug level so orchestrator polling does not drown the log.
func GinZapMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request
		path, rawQuery := req.URL.Path, req.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		level := accessLogLevel(status, c.FullPath())
		if ce := logger.Check(level, "http request"); ce != nil {
			fields := []zap.Field{
				zap.Int("status", status),
				zap.String("method", req.Method),
				zap.String("path", path),
				zap.String("route", c.FullPath()),
				zap.String("query", rawQuery),
				zap.String("lang", GetLang(c)),
				zap.Int("bytes", c.Writer.Size()),
				zap.String("ip", c.ClientIP()),
				zap.String("user_agent", req.UserAgent()),
				zap.Duration("latency", time.Since(start)),
			}
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("errors", c.Errors.String()))
			}
			ce.Write(fields...)
		}
	}
}

func accessLogLevel(status int, route string) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	case route == "/health" || route == "/health/report":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
