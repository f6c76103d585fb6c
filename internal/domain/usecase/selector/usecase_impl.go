package selector

import (
	"context"
	"fmt"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/msg"
)

type resolver struct {
	catalog catalog.UseCase
}

// NewResolver performs no I/O; catalogs are fetched on each Resolve call.
func NewResolver(catalogUseCase catalog.UseCase) UseCase {
	return &resolver{catalog: catalogUseCase}
}

func (r *resolver) ResolveAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType, selector entity.Selector) ([]string, error) {
	attributes, err := r.catalog.FetchAttributes(ctx, frequency, stationType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attribute catalog: %w", err)
	}

	codes, err := ResolveAttributeCodes(attributes, frequency, stationType, selector)
	if err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("selector.resolved", len(selector.Items()), "attribute", len(codes)))
	return codes, nil
}

func (r *resolver) ResolveStations(ctx context.Context, stationType entity.StationType, region entity.Region, selector entity.Selector) ([]string, error) {
	stations, err := r.catalog.FetchStations(ctx, stationType, region)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch station catalog: %w", err)
	}

	codes, err := ResolveStationCodes(stations, selector)
	if err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("selector.resolved", len(selector.Items()), "station", len(codes)))
	return codes, nil
}
