package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/monitoring"
)

// Metrics feeds every completed request into the prometheus collectors.
// The route template is used as the endpoint label to keep cardinality
// bounded when paths carry parameters.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		monitoring.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
