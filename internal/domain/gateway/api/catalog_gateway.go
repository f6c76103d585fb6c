package api

import (
	"context"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model/external"
)

// CatalogGateway defines the calls to the INMET catalog services
type CatalogGateway interface {
	// FetchAttributes gets the attribute catalog of a frequency and station type
	FetchAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]external.AttributeResponse, error)

	// FetchStations gets the station catalog of a single region
	FetchStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]external.StationResponse, error)
}
