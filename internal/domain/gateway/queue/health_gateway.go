package queue

import (
	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/sqs"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker WorkerHealth)
	UnregisterWorker(name string)
}

// WorkerHealth is implemented by *sqs.Worker
type WorkerHealth interface {
	HealthCheck() sqs.HealthCheck
}
