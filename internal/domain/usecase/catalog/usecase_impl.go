package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/gateway/api"
	"bdmep-api/internal/domain/gateway/cache"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/model/external"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/metrics"
	"bdmep-api/pkg/msg"
)

// fallback layouts for operation dates without a zone
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

type catalogUseCase struct {
	apiGateway api.CatalogGateway
	cache      cache.CatalogCache
}

func NewCatalogUseCase(apiGateway api.CatalogGateway, catalogCache cache.CatalogCache) UseCase {
	if catalogCache == nil {
		catalogCache = cache.NewNoopCatalogCache()
	}
	return &catalogUseCase{
		apiGateway: apiGateway,
		cache:      catalogCache,
	}
}

// FetchAttributes returns the attribute catalog, from cache when possible
func (uc *catalogUseCase) FetchAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]entity.Attribute, error) {
	attributes, found, err := uc.cache.GetAttributes(ctx, frequency, stationType)
	recordLookup(model.CatalogAttributes, found, err)
	if err != nil {
		log.Warn(msg.GetMessage("catalog.cache-error", "attributes", err), zap.Error(err))
	} else if found {
		log.Debug(msg.GetMessage("catalog.cache-hit", "attributes", string(frequency)+":"+string(stationType)))
		return attributes, nil
	}

	attributes, err = uc.loadAttributes(ctx, frequency, stationType)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetAttributes(ctx, frequency, stationType, attributes); err != nil {
		log.Warn(msg.GetMessage("catalog.cache-error", "attributes", err), zap.Error(err))
	}
	return attributes, nil
}

func (uc *catalogUseCase) loadAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]entity.Attribute, error) {
	log.Debug(msg.GetMessage("catalog.fetch-attributes", string(frequency), string(stationType)))

	responses, err := uc.apiGateway.FetchAttributes(ctx, frequency, stationType)
	if err != nil {
		return nil, err
	}

	attributes := make([]entity.Attribute, 0, len(responses))
	for _, r := range responses {
		attributes = append(attributes, toAttribute(r, frequency, stationType))
	}
	return attributes, nil
}

// FetchStations returns the station catalog, one region at a time, aborting on the first failure
func (uc *catalogUseCase) FetchStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]entity.Station, error) {
	regions := entity.Regions
	if region != "" {
		regions = []entity.Region{region}
	}

	var stations []entity.Station
	for _, r := range regions {
		regionStations, err := uc.fetchRegionStations(ctx, stationType, r)
		if err != nil {
			return nil, err
		}
		stations = append(stations, regionStations...)
	}
	return stations, nil
}

func (uc *catalogUseCase) fetchRegionStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]entity.Station, error) {
	stations, found, err := uc.cache.GetStations(ctx, stationType, region)
	recordLookup(model.CatalogStations, found, err)
	if err != nil {
		log.Warn(msg.GetMessage("catalog.cache-error", "stations", err), zap.Error(err))
	} else if found {
		log.Debug(msg.GetMessage("catalog.cache-hit", "stations", string(stationType)+":"+string(region)))
		return stations, nil
	}

	stations, err = uc.loadStations(ctx, stationType, region)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetStations(ctx, stationType, region, stations); err != nil {
		log.Warn(msg.GetMessage("catalog.cache-error", "stations", err), zap.Error(err))
	}
	return stations, nil
}

func (uc *catalogUseCase) loadStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]entity.Station, error) {
	log.Debug(msg.GetMessage("catalog.fetch-stations", string(stationType), string(region)))

	responses, err := uc.apiGateway.FetchStations(ctx, stationType, region)
	if err != nil {
		return nil, err
	}

	stations := make([]entity.Station, 0, len(responses))
	for _, r := range responses {
		station, err := toStation(r, stationType)
		if err != nil {
			return nil, fmt.Errorf("%w: station %s: %v", model.ErrRemote, r.Code, err)
		}
		stations = append(stations, station)
	}
	return stations, nil
}

func (uc *catalogUseCase) EvictCache(ctx context.Context) (int, error) {
	removed, err := uc.cache.Evict(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to evict catalog cache: %w", err)
	}
	log.Info(msg.GetMessage("catalog.cache-evicted", removed))
	return removed, nil
}

func recordLookup(catalog string, found bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case found:
		result = "hit"
	}
	metrics.CatalogCacheTotal.WithLabelValues(catalog, result).Inc()
}

// Refresh reloads every catalog into the cache
func (uc *catalogUseCase) Refresh(ctx context.Context, requestID string) RefreshReport {
	report := RefreshReport{RequestID: requestID, Failures: map[string]string{}}

	for _, stationType := range entity.StationTypes {
		for _, frequency := range entity.Frequencies {
			name := "attributes:" + string(frequency) + ":" + string(stationType)
			attributes, err := uc.loadAttributes(ctx, frequency, stationType)
			if err == nil {
				err = uc.cache.SetAttributes(ctx, frequency, stationType, attributes)
			}
			if err != nil {
				report.Failures[name] = err.Error()
				continue
			}
			report.Attributes += len(attributes)
		}

		for _, region := range entity.Regions {
			name := "stations:" + string(stationType) + ":" + string(region)
			stations, err := uc.loadStations(ctx, stationType, region)
			if err == nil {
				err = uc.cache.SetStations(ctx, stationType, region, stations)
			}
			if err != nil {
				report.Failures[name] = err.Error()
				continue
			}
			report.Stations += len(stations)
		}
	}

	return report
}

func toAttribute(r external.AttributeResponse, frequency entity.Frequency, stationType entity.StationType) entity.Attribute {
	attribute := entity.Attribute{
		Code:        r.Code,
		Frequency:   frequency,
		Periodicity: r.Periodicity,
		Unit:        r.Unit,
		Description: r.Description,
		Class:       r.Class,
	}
	if alias, ok := entity.LookupAliasName(r.Code, frequency, stationType); ok {
		attribute.Alias = alias
	}
	return attribute
}

func toStation(r external.StationResponse, stationType entity.StationType) (entity.Station, error) {
	station := entity.Station{
		Code:   r.Code,
		City:   r.Name,
		State:  r.State,
		Type:   stationType,
		Kind:   r.Type,
		Region: r.Region,
		Status: r.Status,
		Entity: r.Entity,
		WSI:    r.WSI,
		OSCAR:  r.OSCAR,
	}

	var err error
	if station.Latitude, err = parseNumber("latitude", r.Latitude); err != nil {
		return station, err
	}
	if station.Longitude, err = parseNumber("longitude", r.Longitude); err != nil {
		return station, err
	}
	if station.Altitude, err = parseNumber("altitude", r.Altitude); err != nil {
		return station, err
	}

	if station.OperationStart, err = parseDate(r.OperationStart); err != nil {
		return station, fmt.Errorf("operation start: %w", err)
	}
	if r.OperationEnd != nil && strings.TrimSpace(*r.OperationEnd) != "" {
		end, err := parseDate(*r.OperationEnd)
		if err != nil {
			return station, fmt.Errorf("operation end: %w", err)
		}
		station.OperationEnd = &end
	}
	return station, nil
}

// parseNumber treats a missing value as zero
func parseNumber(field string, value external.Numeric) (float64, error) {
	s := strings.TrimSpace(string(value))
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, s)
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
