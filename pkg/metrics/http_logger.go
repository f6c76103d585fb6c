package metrics

import (
	"net/url"
	"time"

	"bdmep-api/pkg/http"
)

type httpLogger struct {
	next http.HTTPLogger
}

// NewHTTPLogger records upstream metrics for every exchange and forwards the events to next, which may be nil
func NewHTTPLogger(next http.HTTPLogger) http.HTTPLogger {
	return &httpLogger{next: next}
}

func (l *httpLogger) LogRequest(method, rawURL string, headers map[string]string, body string) {
	if l.next != nil {
		l.next.LogRequest(method, rawURL, headers, body)
	}
}

func (l *httpLogger) LogResponseSuccess(method, rawURL string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	l.observe(rawURL, httpStatus, latency)
	if l.next != nil {
		l.next.LogResponseSuccess(method, rawURL, headers, body, httpStatus, responseBody, latency)
	}
}

func (l *httpLogger) LogResponseError(method, rawURL string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	l.observe(rawURL, httpStatus, latency)
	if l.next != nil {
		l.next.LogResponseError(method, rawURL, headers, body, httpStatus, responseBody, latency, err)
	}
}

func (l *httpLogger) LogRequestRetry(method, rawURL string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	l.observe(rawURL, httpStatus, latency)
	UpstreamRetriesTotal.WithLabelValues(hostOf(rawURL)).Inc()
	if l.next != nil {
		l.next.LogRequestRetry(method, rawURL, headers, body, httpStatus, responseBody, latency, err, retryCount, maxRetries)
	}
}

func (l *httpLogger) observe(rawURL string, status int, latency int64) {
	host := hostOf(rawURL)
	UpstreamRequestsTotal.WithLabelValues(host, StatusClass(status)).Inc()
	UpstreamRequestDuration.WithLabelValues(host).Observe((time.Duration(latency) * time.Millisecond).Seconds())
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
