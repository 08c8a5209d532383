package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// LoggerKey holds the request-scoped *logrus.Entry on the gin context.
	LoggerKey    = "logger"
	RequestIDKey = "request-id"
)

func getRequestID(c *gin.Context, header string) string {
	if id := c.GetHeader(header); id != "" {
		return id
	}
	return uuid.New().String()
}

// RequestLogger logs the start and end of each request and echoes the
// request id back in header.
func RequestLogger(logger *logrus.Logger, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := getRequestID(c, header)
		c.Header(header, requestID)

		fieldsLogger := logger.WithFields(logrus.Fields{
			"request-id": requestID,
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
		c.Set(LoggerKey, fieldsLogger)
		c.Set(RequestIDKey, requestID)

		fieldsLogger.WithFields(logrus.Fields{
			"ip":         c.ClientIP(),
			"user-agent": c.Request.UserAgent(),
		}).Debug("request started")

		c.Next()

		entry := fieldsLogger.WithFields(logrus.Fields{
			"status":      c.Writer.Status(),
			"duration-ms": time.Since(start).Milliseconds(),
			"size":        c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// Logger returns the request-scoped logger, or a plain entry when the
// middleware is not installed.
func Logger(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(LoggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
