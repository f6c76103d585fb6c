package schedule

import (
	"context"
	"sort"
	"time"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/usecase/catalog"
	"bdmep-api/pkg/log"
	"bdmep-api/pkg/metrics"
	"bdmep-api/pkg/msg"
	"bdmep-api/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	lockNamespace = "bdmep_schedules"
	lockKey       = "catalog_warmup"
)

// CatalogSchedulerConfig holds configuration for the catalog warm-up
type CatalogSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
}

// CatalogScheduler refreshes the cached catalogs on a cron
type CatalogScheduler struct {
	cron        *cron.Cron
	useCase     catalog.UseCase
	redisClient *redis.Client
	config      *CatalogSchedulerConfig
}

// NewCatalogScheduler creates the warm-up scheduler. A nil redisClient runs every tick without locking.
func NewCatalogScheduler(useCase catalog.UseCase, redisClient *redis.Client, cronExpression string, lockTTL time.Duration) *CatalogScheduler {
	return &CatalogScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &CatalogSchedulerConfig{
			CronExpression: cronExpression,
			LockTTL:        lockTTL,
		},
	}
}

// InitCatalogScheduleTasks registers the warm-up job and starts the cron
func (s *CatalogScheduler) InitCatalogScheduleTasks(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Catalog warm-up scheduler started with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one warm-up, skipping it when another replica holds the lock
func (s *CatalogScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()

	if s.redisClient != nil {
		// held until expiry so replicas firing on the same tick skip it
		lock := redis.NewLock(s.redisClient, lockNamespace, lockKey, s.getLockTTL())
		acquired, err := lock.TryLock(ctx)
		if err != nil {
			log.Error(msg.GetMessage("schedule.warmup-failed", "lock", err), zap.String("request_id", requestID), zap.Error(err))
			return
		}
		if !acquired {
			metrics.WarmupRunsTotal.WithLabelValues("skipped").Inc()
			log.Debug("Catalog warm-up already running elsewhere", zap.String("request_id", requestID))
			return
		}
	}

	log.Info(msg.GetMessage("schedule.warmup-start"), zap.String("request_id", requestID))

	report := s.useCase.Refresh(ctx, requestID)

	names := make([]string, 0, len(report.Failures))
	for name := range report.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Warn(msg.GetMessage("schedule.warmup-failed", name, report.Failures[name]), zap.String("request_id", requestID))
	}

	outcome := "ok"
	if len(report.Failures) > 0 {
		outcome = "partial"
	}
	metrics.WarmupRunsTotal.WithLabelValues(outcome).Inc()

	refreshed := catalogCount() - len(report.Failures)
	log.Info(msg.GetMessage("schedule.warmup-end", refreshed, len(report.Failures)),
		zap.String("request_id", requestID),
		zap.Int("attributes", report.Attributes),
		zap.Int("stations", report.Stations))
}

// Stop waits for a running job and stops the cron
func (s *CatalogScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *CatalogScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 5 * time.Minute
}

func catalogCount() int {
	return len(entity.StationTypes) * (len(entity.Frequencies) + len(entity.Regions))
}
