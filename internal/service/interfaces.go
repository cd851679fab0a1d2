package service

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// WebhookService handles inbound dialer deliveries and endpoint administration.
type WebhookService interface {
	Ingest(ctx context.Context, token string, body []byte) error
	LatestPayload(ctx context.Context, token string) (json.RawMessage, error)
	GetMapping(ctx context.Context, token string) (json.RawMessage, error)
	SaveMapping(ctx context.Context, token string, raw json.RawMessage) error
	CreateEndpoint(ctx context.Context, kind models.TargetKind) (*models.WebhookEndpoint, error)
	DeleteEndpoint(ctx context.Context, token string) error
}

// LeadService owns lead writes and the campaign-to-lead client cascade.
type LeadService interface {
	Create(ctx context.Context, input LeadInput) (*models.Lead, []string, error)
	CreateInTx(ctx context.Context, q sqlx.ExtContext, input LeadInput) (*models.Lead, error)
	Update(ctx context.Context, id int64, input LeadInput) (*models.Lead, error)
	ReassignCampaignClient(ctx context.Context, campaignID string, clientID *int64) (int64, error)
}

// NotificationService dispatches client notifications for committed leads and
// serves the notification log.
type NotificationService interface {
	DispatchLeadCreated(ctx context.Context, lead *models.Lead) []string
	ListLogs(ctx context.Context, limit, offset int) ([]*models.NotificationLog, int64, error)
}

// RetentionService prunes aged webhook payload-log entries in the background.
type RetentionService interface {
	Start(ctx context.Context) error
	Stop() error
	IsRunning() bool
}

// HealthService reports liveness of the service's dependencies.
type HealthService interface {
	Check(ctx context.Context) *HealthStatus
}
