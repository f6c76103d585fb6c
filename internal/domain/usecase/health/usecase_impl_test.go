package health

import (
	"context"
	"testing"

	"bdmep-api/internal/domain/gateway/cache"
	"bdmep-api/internal/domain/gateway/queue"
	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/sqs"
)

type worker sqs.HealthCheck

func (w worker) HealthCheck() sqs.HealthCheck { return sqs.HealthCheck(w) }

func TestCheckHealth(t *testing.T) {
	up := queue.NewQueueHealthGateway()
	up.RegisterWorker("requisition", worker{Status: sqs.StatusUp})
	down := queue.NewQueueHealthGateway()
	down.RegisterWorker("requisition", worker{Status: sqs.StatusDown})

	tests := []struct {
		name   string
		queue  queue.HealthGateway
		expect model.HealthStatus
	}{
		{"everything disabled", nil, model.StatusUp},
		{"worker up", up, model.StatusUp},
		{"worker down", down, model.StatusDown},
		{"no worker registered", queue.NewQueueHealthGateway(), model.StatusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gw queue.HealthGateway
			if tt.queue != nil {
				gw = tt.queue
			}
			got := NewHealthUseCase(cache.NewNoopCatalogCache(), gw).CheckHealth(context.Background())
			if got.Status != tt.expect {
				t.Errorf("status = %s, want %s (%+v)", got.Status, tt.expect, got)
			}
			if got.Cache.Status != model.StatusDisabled {
				t.Errorf("cache status = %s", got.Cache.Status)
			}
		})
	}
}
