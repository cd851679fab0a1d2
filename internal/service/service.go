package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
	"github.com/getconnects/leadrelay/internal/repository"
	"github.com/getconnects/leadrelay/internal/sender"
)

type Service struct {
	Webhook      WebhookService
	Lead         LeadService
	Notification NotificationService
	Retention    RetentionService
	Health       HealthService
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	sms sender.SMSSender,
	email sender.EmailSender,
	logger *zap.Logger,
) *Service {
	notificationService := NewNotificationService(cfg, repo, sms, email, logger)
	leadService := NewLeadService(repo, notificationService, logger)
	webhookService := NewWebhookService(cfg, repo, leadService, notificationService, redisClient, logger)
	retentionService := NewRetentionService(cfg, repo, logger)
	healthService := NewHealthService(repo, redisClient, retentionService, logger)

	return &Service{
		Webhook:      webhookService,
		Lead:         leadService,
		Notification: notificationService,
		Retention:    retentionService,
		Health:       healthService,
	}
}
