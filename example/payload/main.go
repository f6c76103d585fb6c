package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/gateway/api"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/internal/domain/usecase/requisition"
	"bdmep-api/internal/domain/usecase/selector"
	"bdmep-api/pkg/http"
	"bdmep-api/pkg/log"
)

const (
	attributesURL = "https://apitempo.inmet.gov.br/BNDMET/atributos"
	stationsURL   = "https://apibdmep.inmet.gov.br"
)

// Builds the payload for hourly rain and mean temperature at São Paulo (Mirante) without submitting it.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	options := http.ClientOptions{
		ReadTimeout: 30 * time.Second,
		Backoff:     http.NewBackoffConfig(1, 500*time.Millisecond, 5*time.Second),
		Logger:      http.NewZapLogger(),
	}

	catalogUseCase := catalog.NewCatalogUseCase(api.NewCatalogGateway(attributesURL, stationsURL, options), nil)
	requisitionUseCase := requisition.NewRequisitionUseCase(
		selector.NewResolver(catalogUseCase),
		api.NewRequisitionGateway(stationsURL, options),
		nil,
		"",
	)

	payload, err := requisitionUseCase.Build(ctx, requisition.PayloadRequest{
		Email:       "someone@example.com",
		Frequency:   entity.Hourly,
		StationType: entity.Automatic,
		Region:      entity.Southeast,
		Attributes:  entity.ExplicitSelectors("rain", "T_mean"),
		Stations:    entity.ExplicitSelectors("A701", "Sao Paulo SP"),
		StartDate:   entity.DateFromString("2023-01-01"),
		EndDate:     entity.DateFromString("2023-01-31"),
	})
	if err != nil {
		log.Fatalf("Failed to build payload: %v", err)
	}

	body, _ := json.MarshalIndent(payload, "", "  ")
	fmt.Println(string(body))
}
