package health

import (
	"context"

	"bdmep-api/internal/domain/gateway/cache"
	"bdmep-api/internal/domain/gateway/queue"
	"bdmep-api/internal/domain/model"
)

type healthUseCase struct {
	cache        cache.CatalogCache
	queueGateway queue.HealthGateway
}

// NewHealthUseCase creates the use case. A nil queueGateway reports the queue as disabled.
func NewHealthUseCase(catalogCache cache.CatalogCache, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		cache:        catalogCache,
		queueGateway: queueGateway,
	}
}

// CheckHealth is DOWN when any enabled component is not UP
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cache.Health(ctx)

	queueHealth := model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"message": "requisition queue disabled"},
	}
	if useCase.queueGateway != nil {
		queueHealth = useCase.queueGateway.Health()
	}

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{cacheHealth, queueHealth} {
		if component.Status != model.StatusUp && component.Status != model.StatusDisabled {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status: overallStatus,
		Cache:  cacheHealth,
		Queue:  queueHealth,
	}
}
