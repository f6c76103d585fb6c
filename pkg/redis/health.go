package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus
	Details map[string]string
}

// HealthCheck pings the server and reports the pool state
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	stats := c.Stats()
	details := map[string]string{
		"address":     c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		"timeouts":    strconv.FormatUint(uint64(stats.Timeouts), 10),
	}

	if err != nil {
		details["error"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	details["ping_latency"] = latency.String()
	return HealthCheck{Status: StatusUp, Details: details}
}
