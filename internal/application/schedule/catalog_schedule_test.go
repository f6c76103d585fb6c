package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeCatalog struct {
	catalog.UseCase
	mu       sync.Mutex
	requests []string
	failures map[string]string
}

func (f *fakeCatalog) Refresh(_ context.Context, requestID string) catalog.RefreshReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, requestID)
	return catalog.RefreshReport{RequestID: requestID, Attributes: 3, Stations: 2, Failures: f.failures}
}

func (f *fakeCatalog) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log.SetLogger(zap.New(core))
	t.Cleanup(func() { log.SetLogger(zap.NewNop()) })
	return logs
}

func TestExecuteScheduledTask_WithoutLock(t *testing.T) {
	logs := observeLogs(t)
	uc := &fakeCatalog{failures: map[string]string{"stations:T:N": "boom"}}
	s := NewCatalogScheduler(uc, nil, "@every 1h", 0)

	s.ExecuteScheduledTask(context.Background())
	s.ExecuteScheduledTask(context.Background())

	if uc.calls() != 2 {
		t.Fatalf("Refresh calls = %d, want 2", uc.calls())
	}
	if uc.requests[0] == uc.requests[1] || uc.requests[0] == "" {
		t.Errorf("request ids should be unique: %v", uc.requests)
	}
	if n := logs.FilterLevelExact(zap.WarnLevel).Len(); n != 2 {
		t.Errorf("warn entries = %d, want one per failure per run", n)
	}

	total := len(entity.StationTypes) * (len(entity.Frequencies) + len(entity.Regions))
	if catalogCount() != total || total != 16 {
		t.Errorf("catalogCount = %d, want 16", catalogCount())
	}
}

func TestExecuteScheduledTask_LockSkipsConcurrentReplica(t *testing.T) {
	observeLogs(t)
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(mr.Host()).WithPort(mr.Server().Addr().Port))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	uc := &fakeCatalog{}
	first := NewCatalogScheduler(uc, client, "@every 1h", time.Minute)
	second := NewCatalogScheduler(uc, client, "@every 1h", time.Minute)

	first.ExecuteScheduledTask(context.Background())
	second.ExecuteScheduledTask(context.Background())
	if uc.calls() != 1 {
		t.Fatalf("Refresh calls = %d, want 1 while lock is held", uc.calls())
	}

	mr.FastForward(2 * time.Minute)
	second.ExecuteScheduledTask(context.Background())
	if uc.calls() != 2 {
		t.Errorf("Refresh calls = %d, want 2 after lock expiry", uc.calls())
	}
}

func TestInitCatalogScheduleTasks_InvalidCron(t *testing.T) {
	s := NewCatalogScheduler(&fakeCatalog{}, nil, "not a cron", 0)
	if err := s.InitCatalogScheduleTasks(context.Background()); err == nil {
		s.Stop()
		t.Fatal("expected error for invalid cron expression")
	}
}
