package cache

import (
	"context"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
)

// CatalogCache keeps fetched catalogs between resolutions
type CatalogCache interface {
	// GetAttributes returns the cached attribute catalog; found is false on a miss
	GetAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) (attributes []entity.Attribute, found bool, err error)
	SetAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType, attributes []entity.Attribute) error

	// GetStations returns the cached station catalog of one region; found is false on a miss
	GetStations(ctx context.Context, stationType entity.StationType, region entity.Region) (stations []entity.Station, found bool, err error)
	SetStations(ctx context.Context, stationType entity.StationType, region entity.Region, stations []entity.Station) error

	// Evict removes every cached catalog and returns how many entries were removed
	Evict(ctx context.Context) (int, error)

	Health(ctx context.Context) model.ComponentHealthStatus
}

func attributesKey(frequency entity.Frequency, stationType entity.StationType) string {
	return "attributes:" + string(frequency) + ":" + string(stationType)
}

func stationsKey(stationType entity.StationType, region entity.Region) string {
	return "stations:" + string(stationType) + ":" + string(region)
}
