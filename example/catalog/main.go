package main

import (
	"context"
	"fmt"
	"time"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/gateway/api"
	"bdmep-api/internal/domain/gateway/cache"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/pkg/http"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/redis"
)

// Lists the automatic stations of the North region twice; the second call is served by Redis.
// Requires a Redis server on localhost:6379.
func main() {
	ctx := context.Background()

	client, err := redis.NewClient(redis.NewRedisConfig().WithCacheTTL("bdmep-catalog", 10*time.Minute))
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer func() { _ = client.Close() }()

	gateway := api.NewCatalogGateway(
		"https://apitempo.inmet.gov.br/BNDMET/atributos",
		"https://apibdmep.inmet.gov.br",
		http.ClientOptions{ReadTimeout: 30 * time.Second, Logger: http.NewZapLogger()},
	)
	useCase := catalog.NewCatalogUseCase(gateway, cache.NewRedisCatalogCache(client, "bdmep-catalog"))

	for i := 0; i < 2; i++ {
		start := time.Now()
		stations, err := useCase.FetchStations(ctx, entity.Automatic, entity.North)
		if err != nil {
			log.Fatalf("Failed to fetch stations: %v", err)
		}
		fmt.Printf("run %d: %d stations in %s\n", i+1, len(stations), time.Since(start))
	}

	for _, alias := range entity.Aliases(entity.Hourly, entity.Automatic) {
		fmt.Printf("%-8s %s\n", alias.Alias, alias.Code)
	}
}
