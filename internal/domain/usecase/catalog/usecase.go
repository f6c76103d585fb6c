package catalog

import (
	"context"

	"bdmep-api/internal/domain/entity"
)

type UseCase interface {
	// FetchAttributes returns the attribute catalog of a frequency and station type, annotated with aliases
	FetchAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]entity.Attribute, error)

	// FetchStations returns the station catalog; an empty region queries every region in table order
	FetchStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]entity.Station, error)

	// Refresh bypasses the cache, fetches every catalog and stores it. Failures are collected per catalog.
	Refresh(ctx context.Context, requestID string) RefreshReport

	// EvictCache drops every cached catalog and returns how many entries were removed
	EvictCache(ctx context.Context) (int, error)
}

// RefreshReport summarizes a Refresh run
type RefreshReport struct {
	RequestID  string            `json:"requestId"`
	Attributes int               `json:"attributes"`
	Stations   int               `json:"stations"`
	Failures   map[string]string `json:"failures,omitempty"`
}
