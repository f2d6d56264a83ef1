package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"timekit/internal/stopwatch"
)

// RequestIDHeader carries the generated request ID back to the client.
const RequestIDHeader = "X-Request-ID"

// RequestTimer times every request on the shared stopwatch. Each request gets
// a UUID so concurrent requests for the same route never collide on a label.
// The measurement is taken silently and logged through logrus instead of the
// stopwatch's own stdout line.
func RequestTimer(watch *stopwatch.Shared, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		label := c.Request.Method + " " + c.Request.URL.Path + " " + id

		c.Header(RequestIDHeader, id)
		watch.Start(label)
		c.Next()
		elapsed := watch.Stop(label, stopwatch.Silent())

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": elapsed,
		}).Info("request completed")
	}
}
