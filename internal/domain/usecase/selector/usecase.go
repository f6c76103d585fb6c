package selector

import (
	"context"

	"bdmep-api/internal/domain/entity"
)

// UseCase resolves user selectors into catalog codes. Every call fetches its own catalog snapshot.
type UseCase interface {
	// ResolveAttributes resolves attribute selectors against the catalog of frequency and station type
	ResolveAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType, selector entity.Selector) ([]string, error)

	// ResolveStations resolves station selectors against the catalog of station type and region
	ResolveStations(ctx context.Context, stationType entity.StationType, region entity.Region, selector entity.Selector) ([]string, error)
}
