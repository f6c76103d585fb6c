package cache

import (
	"context"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/redis"
)

type redisCatalogCache struct {
	client *redis.Client
	cache  *redis.Cache
}

// NewRedisCatalogCache stores catalogs as JSON under <cacheName>::attributes:* and <cacheName>::stations:*
func NewRedisCatalogCache(client *redis.Client, cacheName string) CatalogCache {
	return &redisCatalogCache{
		client: client,
		cache:  redis.NewCache(client, cacheName),
	}
}

func (c *redisCatalogCache) GetAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]entity.Attribute, bool, error) {
	var attributes []entity.Attribute
	found, err := c.cache.Get(ctx, attributesKey(frequency, stationType), &attributes)
	return attributes, found, err
}

func (c *redisCatalogCache) SetAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType, attributes []entity.Attribute) error {
	return c.cache.Set(ctx, attributesKey(frequency, stationType), attributes)
}

func (c *redisCatalogCache) GetStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]entity.Station, bool, error) {
	var stations []entity.Station
	found, err := c.cache.Get(ctx, stationsKey(stationType, region), &stations)
	return stations, found, err
}

func (c *redisCatalogCache) SetStations(ctx context.Context, stationType entity.StationType, region entity.Region, stations []entity.Station) error {
	return c.cache.Set(ctx, stationsKey(stationType, region), stations)
}

func (c *redisCatalogCache) Evict(ctx context.Context) (int, error) {
	return c.cache.Clear(ctx, "*")
}

func (c *redisCatalogCache) Health(ctx context.Context) model.ComponentHealthStatus {
	hc := c.client.HealthCheck(ctx)
	details := hc.Details
	details["cache_name"] = c.cache.Name()
	details["ttl"] = c.cache.TTL().String()

	status := model.StatusUp
	if hc.Status != redis.StatusUp {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
