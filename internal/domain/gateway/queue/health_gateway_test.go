package queue

import (
	"testing"

	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/sqs"
)

type stubWorker sqs.HealthCheck

func (s stubWorker) HealthCheck() sqs.HealthCheck {
	return sqs.HealthCheck(s)
}

func TestQueueHealthGateway_Health(t *testing.T) {
	gateway := NewQueueHealthGateway()

	if got := gateway.Health().Status; got != model.StatusUnknown {
		t.Fatalf("empty gateway status = %s, want UNKNOWN", got)
	}

	gateway.RegisterWorker("requisition", stubWorker{Status: sqs.StatusUp, Details: map[string]string{"queue": "bdmep-requisition"}})
	health := gateway.Health()
	if health.Status != model.StatusUp || health.Details["requisition_queue"] != "bdmep-requisition" {
		t.Errorf("health = %+v", health)
	}

	gateway.RegisterWorker("other", stubWorker{Status: sqs.StatusDown})
	health = gateway.Health()
	if health.Status != model.StatusDown || health.Details["workers_down"] != "1" {
		t.Errorf("health = %+v", health)
	}

	gateway.UnregisterWorker("other")
	if got := gateway.Health().Status; got != model.StatusUp {
		t.Errorf("status after unregister = %s", got)
	}
}
