package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bdmep-api/pkg/log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetupRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log.SetLogger(zap.New(core))
	t.Cleanup(func() { log.SetLogger(zap.NewNop()) })

	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/bdmep/catalog/aliases", func(c echo.Context) error { return c.String(http.StatusOK, "[]") })
	e.GET("/bdmep/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/bdmep/fail", func(c echo.Context) error { return c.NoContent(http.StatusBadGateway) })

	for _, path := range []string{"/bdmep/catalog/aliases", "/bdmep/health", "/bdmep/fail"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Header().Get(echo.HeaderXRequestID) == "" {
			t.Errorf("%s: missing request id header", path)
		}
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2 (health is skipped)", len(entries))
	}
	if entries[0].Level != zap.InfoLevel || entries[0].ContextMap()["uri"] != "/bdmep/catalog/aliases" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel || entries[1].ContextMap()["status"] != int64(http.StatusBadGateway) {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
	if entries[0].ContextMap()["request_id"] == "" {
		t.Error("request id not logged")
	}
}
