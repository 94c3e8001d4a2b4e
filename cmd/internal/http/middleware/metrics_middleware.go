package middleware

import (
	"smartnotes/cmd/internal/infrastructure/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// NewMetricsMiddleware records request counts and durations per route.
// Routes are labeled by their registered pattern so ids don't explode cardinality.
func NewMetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			metrics.ActiveRequests.Inc()
			defer metrics.ActiveRequests.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			metrics.HTTPRequestsTotal.WithLabelValues(
				method,
				path,
				strconv.Itoa(c.Response().Status),
			).Inc()

			metrics.HTTPRequestDuration.WithLabelValues(
				method,
				path,
			).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
