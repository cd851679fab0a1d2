package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
	"github.com/getconnects/leadrelay/internal/repository"
	"github.com/getconnects/leadrelay/internal/scheduler"
)

// retentionService periodically deletes webhook payload-log entries older than
// the configured TTL. Raw payloads exist for replay and duplicate detection;
// neither needs them past the retention horizon.
type retentionService struct {
	sched  *scheduler.Scheduler
	logger *zap.Logger
}

func NewRetentionService(cfg *config.Config, repo repository.Repository, logger *zap.Logger) RetentionService {
	ttl := time.Duration(cfg.Retention.PayloadTTLDays) * 24 * time.Hour
	interval := time.Duration(cfg.Retention.IntervalHours) * time.Hour

	task := func(ctx context.Context) error {
		cutoff := time.Now().Add(-ttl)
		deleted, err := repo.Webhook().DeletePayloadsBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		if deleted > 0 {
			logger.Info("Pruned aged webhook payloads",
				zap.Int64("deleted", deleted),
				zap.Time("cutoff", cutoff))
		}
		return nil
	}

	return &retentionService{
		sched:  scheduler.NewScheduler(logger, interval, task),
		logger: logger,
	}
}

func (s *retentionService) Start(ctx context.Context) error {
	return s.sched.Start(ctx)
}

func (s *retentionService) Stop() error {
	return s.sched.Stop()
}

func (s *retentionService) IsRunning() bool {
	return s.sched.IsRunning()
}
