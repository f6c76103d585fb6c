package http

import (
	"go.uber.org/zap"

	"bdmep-api/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}
func (noopLogger) LogRequestRetry(string, string, map[string]string, string, int, string, int64, error, int, int) {
}

// ZapLogger logs HTTP traffic through the application zap logger. Bodies are only
// attached at debug level since catalog responses can be large.
type ZapLogger struct {
	// MaxBodyLength truncates logged bodies; zero means 512 bytes.
	MaxBodyLength int
}

// NewZapLogger creates a ZapLogger with the default body truncation.
func NewZapLogger() *ZapLogger {
	return &ZapLogger{}
}

func (l *ZapLogger) truncate(body string) string {
	limit := l.MaxBodyLength
	if limit == 0 {
		limit = 512
	}
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("HTTP request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", l.truncate(body)))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debug("HTTP response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("response_size", len(responseBody)))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("HTTP request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)),
		zap.Error(err))
}

func (l *ZapLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warn("HTTP request retry",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
