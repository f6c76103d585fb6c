package cache

import (
	"context"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
)

type noopCatalogCache struct{}

// NewNoopCatalogCache is used when caching is disabled: every read misses
func NewNoopCatalogCache() CatalogCache {
	return noopCatalogCache{}
}

func (noopCatalogCache) GetAttributes(context.Context, entity.Frequency, entity.StationType) ([]entity.Attribute, bool, error) {
	return nil, false, nil
}

func (noopCatalogCache) SetAttributes(context.Context, entity.Frequency, entity.StationType, []entity.Attribute) error {
	return nil
}

func (noopCatalogCache) GetStations(context.Context, entity.StationType, entity.Region) ([]entity.Station, bool, error) {
	return nil, false, nil
}

func (noopCatalogCache) SetStations(context.Context, entity.StationType, entity.Region, []entity.Station) error {
	return nil
}

func (noopCatalogCache) Evict(context.Context) (int, error) {
	return 0, nil
}

func (noopCatalogCache) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusDisabled,
		Details: map[string]string{"message": "catalog cache disabled"},
	}
}
