package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "bdmep-api/configs"
	"bdmep-api/docs"
	"bdmep-api/internal/application/controller"
	"bdmep-api/internal/application/middleware"
	"bdmep-api/internal/application/processor"
	"bdmep-api/internal/application/schedule"
	apigateway "bdmep-api/internal/domain/gateway/api"
	"bdmep-api/internal/domain/gateway/cache"
	"bdmep-api/internal/domain/gateway/queue"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/internal/domain/usecase/health"
	"bdmep-api/internal/domain/usecase/requisition"
	"bdmep-api/internal/domain/usecase/selector"
	"bdmep-api/internal/infra/aws"
	"bdmep-api/pkg/http"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/metrics"
	"bdmep-api/pkg/msg"
	"bdmep-api/pkg/redis"
	"bdmep-api/pkg/resource"
	"bdmep-api/pkg/sqs"
)

// @title bdmep-api
// @version 1.0
// @description Catalog browsing, selector resolution and data requisitions for the INMET BDMEP service.
// @BasePath /bdmep
func main() {
	log.Info(msg.GetMessage("app.start"))
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e, "/metrics")
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	api := e.Group(contextPath)

	clientOptions := http.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.bdmep.http.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.bdmep.http.read-timeout"),
		Backoff: http.NewBackoffConfig(
			resource.GetInt("app.bdmep.http.max-retries"),
			resource.GetDuration("app.bdmep.http.initial-backoff"),
			resource.GetDuration("app.bdmep.http.max-backoff"),
		),
		Logger: metrics.NewHTTPLogger(http.NewZapLogger()),
	}

	// Init Cache
	catalogCache := cache.NewNoopCatalogCache()
	var redisClient *redis.Client
	if resource.GetBool("app.cache.enabled") {
		cacheName := resource.GetString("app.cache.name")
		client, err := redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("app.cache.redis.host")).
			WithPort(resource.GetInt("app.cache.redis.port")).
			WithPassword(resource.GetString("app.cache.redis.password")).
			WithDatabase(resource.GetInt("app.cache.redis.database")).
			WithReadTimeout(resource.GetDuration("app.cache.redis.read-timeout")).
			WithCacheTTL(cacheName, resource.GetDuration("app.cache.ttl")))
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = client.Close() }()

		redisClient = client
		catalogCache = cache.NewRedisCatalogCache(client, cacheName)
	}

	// Init Queue
	queueName := resource.GetString("app.queue.requisition-name")
	var sqsClient *awssqs.Client
	var queueSender queue.Sender
	var queueHealth queue.HealthGateway
	if resource.GetBool("app.queue.enabled") {
		awsConfig, err := aws.LoadConfig(ctx, aws.CloudConfig{
			Region:          resource.GetString("app.cloud.aws-region"),
			Endpoint:        resource.GetString("app.cloud.aws-endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws-access-key-id"),
			SecretAccessKey: resource.GetString("app.cloud.aws-secret-access-key"),
		})
		if err != nil {
			log.Fatal("Failed to load AWS configuration", zap.Error(err))
		}
		sqsClient = aws.NewSqsClient(awsConfig, resource.GetString("app.cloud.aws-endpoint"))
		queueSender = aws.NewQueueSender(sqsClient)
		queueHealth = queue.NewQueueHealthGateway()
	}

	// Init Gateway
	catalogGateway := apigateway.NewCatalogGateway(
		resource.GetString("app.bdmep.attributes-url"),
		resource.GetString("app.bdmep.stations-url"),
		clientOptions,
	)
	requisitionGateway := apigateway.NewRequisitionGateway(resource.GetString("app.bdmep.stations-url"), clientOptions)

	// Init UseCase
	catalogUseCase := catalog.NewCatalogUseCase(catalogGateway, catalogCache)
	selectorUseCase := selector.NewResolver(catalogUseCase)
	requisitionUseCase := requisition.NewRequisitionUseCase(selectorUseCase, requisitionGateway, queueSender, queueName)
	healthUseCase := health.NewHealthUseCase(catalogCache, queueHealth)

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewCatalogController(api, catalogUseCase).InitCatalogRoutes()
	controller.NewSelectorController(api, selectorUseCase).InitSelectorRoutes()
	controller.NewRequisitionController(api, requisitionUseCase).InitRequisitionRoutes()

	// Init Worker
	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, processor.NewRequisitionProcessor(requisitionUseCase), &sqs.WorkerConfig{
			MaxNumberOfMessages: resource.GetInt32("app.queue.worker.max-messages"),
			WaitTimeSeconds:     resource.GetInt32("app.queue.worker.wait-time-seconds"),
			PoolSize:            resource.GetInt("app.queue.worker.pool-size"),
		})
		if err != nil {
			log.Fatal("Failed to create requisition worker", zap.String("queue", queueName), zap.Error(err))
		}
		queueHealth.RegisterWorker(queueName, worker)
		go worker.Start(ctx)
	}

	// Init Schedule
	if resource.GetBool("app.schedule.catalog-warmup.enabled") {
		if redisClient == nil {
			log.Warn("Catalog warm-up is enabled but the cache is disabled, skipping scheduler")
		} else {
			scheduler := schedule.NewCatalogScheduler(
				catalogUseCase,
				redisClient,
				resource.GetString("app.schedule.catalog-warmup.cron"),
				resource.GetDuration("app.schedule.catalog-warmup.lock-ttl"),
			)
			if err := scheduler.InitCatalogScheduleTasks(ctx); err != nil {
				log.Error("Failed to initialize catalog warm-up scheduler", zap.Error(err))
			} else {
				defer scheduler.Stop()
			}
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down HTTP server", zap.Error(err))
	}
}
