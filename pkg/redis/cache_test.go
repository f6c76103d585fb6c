package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

type catalogEntry struct {
	Code string `json:"code"`
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	host, port := mr.Host(), mr.Server().Addr().Port
	client, err := NewClient(NewRedisConfig().
		WithHost(host).
		WithPort(port).
		WithCacheTTL("bdmep-catalog", 10*time.Minute))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestCache_SetGet(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewCache(client, "bdmep-catalog")
	ctx := context.Background()

	want := []catalogEntry{{Code: "I175"}, {Code: "I101"}}
	if err := cache.Set(ctx, "attributes:h:automatic", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if !mr.Exists("bdmep-catalog::attributes:h:automatic") {
		t.Fatal("key not stored with cache name prefix")
	}
	if ttl := mr.TTL("bdmep-catalog::attributes:h:automatic"); ttl != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", ttl)
	}

	var got []catalogEntry
	found, err := cache.Get(ctx, "attributes:h:automatic", &got)
	if err != nil || !found {
		t.Fatalf("Get = %v, %v", found, err)
	}
	if len(got) != 2 || got[1].Code != "I101" {
		t.Errorf("got %+v", got)
	}
}

func TestCache_Miss(t *testing.T) {
	client, _ := newTestClient(t)
	cache := NewCache(client, "bdmep-catalog")

	var got []catalogEntry
	found, err := cache.Get(context.Background(), "stations:automatic:SU", &got)
	if err != nil || found {
		t.Errorf("Get = %v, %v, want miss", found, err)
	}
}

func TestCache_Expiry(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewCache(client, "bdmep-catalog")
	ctx := context.Background()

	if err := cache.Set(ctx, "k", catalogEntry{Code: "A713"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(11 * time.Minute)

	var got catalogEntry
	if found, _ := cache.Get(ctx, "k", &got); found {
		t.Error("value should have expired")
	}
}

func TestCache_Clear(t *testing.T) {
	client, mr := newTestClient(t)
	cache := NewCache(client, "bdmep-catalog")
	ctx := context.Background()

	for _, key := range []string{"stations:automatic:N", "stations:automatic:S", "attributes:d:automatic"} {
		if err := cache.Set(ctx, key, catalogEntry{}); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	_ = mr.Set("other::stations:automatic:N", "x")

	removed, err := cache.Clear(ctx, "stations:*")
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if !mr.Exists("bdmep-catalog::attributes:d:automatic") || !mr.Exists("other::stations:automatic:N") {
		t.Error("Clear removed keys outside its pattern")
	}
}

func TestClient_HealthCheck(t *testing.T) {
	client, mr := newTestClient(t)

	if hc := client.HealthCheck(context.Background()); hc.Status != StatusUp {
		t.Fatalf("status = %s, details = %v", hc.Status, hc.Details)
	}

	mr.Close()
	hc := client.HealthCheck(context.Background())
	if hc.Status != StatusDown || hc.Details["error"] == "" {
		t.Errorf("status = %s, details = %v", hc.Status, hc.Details)
	}
}

func TestConfig_Validate(t *testing.T) {
	if _, err := NewClient(&Config{Host: "", Port: 6379}); err == nil {
		t.Error("expected error for empty host")
	}
	if _, err := NewClient(&Config{Host: "localhost", Port: 6379, ReadTimeout: -time.Second}); err == nil {
		t.Error("expected error for negative timeout")
	}
}
