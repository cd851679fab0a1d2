package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/repository"
)

// HealthStatus is the aggregate health report returned by the health endpoint.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	retention   RetentionService
	logger      *zap.Logger
}

func NewHealthService(repo repository.Repository, redisClient *redis.Client, retention RetentionService, logger *zap.Logger) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		retention:   retention,
		logger:      logger,
	}
}

// Check probes the database, Redis and the retention sweeper. Overall status
// is "ok" only when every probe passes.
func (s *healthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Checks:    map[string]string{},
	}

	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := s.repo.Ping(); err != nil {
		s.logger.Error("Database health check failed", zap.Error(err))
		status.Checks["database"] = "unavailable"
		status.Status = "degraded"
	} else {
		status.Checks["database"] = "ok"
	}

	if s.redisClient != nil {
		if err := s.redisClient.Ping(probeCtx).Err(); err != nil {
			s.logger.Error("Redis health check failed", zap.Error(err))
			status.Checks["redis"] = "unavailable"
			status.Status = "degraded"
		} else {
			status.Checks["redis"] = "ok"
		}
	}

	if s.retention != nil {
		if s.retention.IsRunning() {
			status.Checks["retention"] = "running"
		} else {
			status.Checks["retention"] = "stopped"
		}
	}

	return status
}
