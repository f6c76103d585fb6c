package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bdmep-api/pkg/metrics"
)

// SetupMetrics records request count and latency per route template and serves them on path.
func SetupMetrics(e *echo.Echo, path string) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// writes the final status before it is recorded
				c.Error(err)
			}

			route := c.Path()
			if route == "" || route == path {
				return err
			}
			method := c.Request().Method
			metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	})
	e.GET(path, echo.WrapHandler(metrics.Handler()))
}
