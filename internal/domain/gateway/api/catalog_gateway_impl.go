package api

import (
	"context"
	"fmt"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/internal/domain/model/external"
	"bdmep-api/pkg/http"
)

var jsonHeaders = map[string]string{"Accept": "application/json"}

// catalogGatewayImpl implements the CatalogGateway interface
type catalogGatewayImpl struct {
	attributesClient *http.Client
	stationsClient   *http.Client
}

// NewCatalogGateway creates a CatalogGateway. Attributes and stations are served by different hosts.
func NewCatalogGateway(attributesURL string, stationsURL string, clientOptions http.ClientOptions) CatalogGateway {
	return &catalogGatewayImpl{
		attributesClient: http.NewHttpClient(attributesURL, clientOptions),
		stationsClient:   http.NewHttpClient(stationsURL, clientOptions),
	}
}

// FetchAttributes gets the attribute catalog of a frequency and station type
func (c *catalogGatewayImpl) FetchAttributes(ctx context.Context, frequency entity.Frequency, stationType entity.StationType) ([]external.AttributeResponse, error) {
	path := fmt.Sprintf("/%s/%s", stationType.AttributePath(), frequency.Code())

	successResp, _, _, err := c.attributesClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithHeaders(jsonHeaders).
		WithSuccessResp(&[]external.AttributeResponse{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("%w: GET %s%s: %v", model.ErrRemote, c.attributesClient.BaseURL(), path, err)
	}

	return *successResp.(*[]external.AttributeResponse), nil
}

// FetchStations gets the station catalog of a single region
func (c *catalogGatewayImpl) FetchStations(ctx context.Context, stationType entity.StationType, region entity.Region) ([]external.StationResponse, error) {
	path := fmt.Sprintf("/%s/R/%s", stationType.Code(), region)

	successResp, _, _, err := c.stationsClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithHeaders(jsonHeaders).
		WithSuccessResp(&[]external.StationResponse{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("%w: GET %s%s: %v", model.ErrRemote, c.stationsClient.BaseURL(), path, err)
	}

	return *successResp.(*[]external.StationResponse), nil
}
