package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations. Methods that take an
// sqlx.ExtContext participate in caller-managed transactions; pass either the
// transaction from BeginTxx or the plain DB handle.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// BeginTxx opens a transaction for a batch write
	BeginTxx(ctx context.Context) (*sqlx.Tx, error)

	// DB returns the plain database handle for non-transactional reads
	DB() sqlx.ExtContext

	Webhook() WebhookRepository
	Lead() LeadRepository
	Campaign() CampaignRepository
	Client() ClientRepository
	Notification() NotificationRepository
}

// WebhookRepository manages webhook endpoints and their payload log.
type WebhookRepository interface {
	CreateEndpoint(ctx context.Context, kind models.TargetKind) (*models.WebhookEndpoint, error)
	// GetEndpointByToken returns (nil, nil) for an unknown token.
	GetEndpointByToken(ctx context.Context, token string) (*models.WebhookEndpoint, error)
	DeleteEndpoint(ctx context.Context, token string) error
	SaveMapping(ctx context.Context, token string, mapping json.RawMessage) error

	// AppendPayload writes a payload-log entry outside any batch transaction
	// so raw deliveries survive a batch rollback.
	AppendPayload(ctx context.Context, endpointID int64, payload json.RawMessage, fingerprint string) error
	RecentFingerprints(ctx context.Context, endpointID int64, limit int) ([]string, error)
	// LatestPayload returns (nil, nil) when no payload has been logged yet.
	LatestPayload(ctx context.Context, endpointID int64) (*models.WebhookPayload, error)
	DeletePayloadsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// LeadRepository persists leads.
type LeadRepository interface {
	Create(ctx context.Context, q sqlx.ExtContext, lead *models.Lead) (int64, error)
	Update(ctx context.Context, q sqlx.ExtContext, lead *models.Lead) error
	// GetByID returns (nil, nil) for an unknown id.
	GetByID(ctx context.Context, q sqlx.ExtContext, id int64) (*models.Lead, error)
	// ReassignClientByCampaign repoints the inherited client reference of every
	// lead belonging to the campaign. Returns the number of updated rows.
	ReassignClientByCampaign(ctx context.Context, q sqlx.ExtContext, campaignID string, clientID sql.NullInt64) (int64, error)
}

// CampaignRepository persists campaigns. Lookups return (nil, nil) on no match.
type CampaignRepository interface {
	FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Campaign, error)
	FindByName(ctx context.Context, q sqlx.ExtContext, name string) (*models.Campaign, error)
	FindByIDOrName(ctx context.Context, q sqlx.ExtContext, ref string) (*models.Campaign, error)
	Create(ctx context.Context, q sqlx.ExtContext, campaign *models.Campaign) error
	UpdateClient(ctx context.Context, q sqlx.ExtContext, id string, clientID sql.NullInt64) error
}

// ClientRepository reads clients.
type ClientRepository interface {
	// GetByID returns (nil, nil) for an unknown id.
	GetByID(ctx context.Context, id int64) (*models.Client, error)
}

// NotificationRepository covers notification settings, templates and the
// append-only outcome log.
type NotificationRepository interface {
	// GetSetting returns (nil, nil) when no row exists for the pair; callers
	// must treat absence as "use defaults", not as disabled.
	GetSetting(ctx context.Context, clientID int64, leadTypeID string) (*models.ClientLeadTypeSetting, error)
	GetLeadTypeByName(ctx context.Context, name string) (*models.LeadType, error)
	GetTemplate(ctx context.Context, id int64) (*models.NotificationTemplate, error)
	// GetDefaultTemplate returns (nil, nil) when no template carries the flag.
	GetDefaultTemplate(ctx context.Context) (*models.NotificationTemplate, error)
	CreateLog(ctx context.Context, entry *models.NotificationLog) error
	ListLogs(ctx context.Context, offset, limit int) ([]*models.NotificationLog, error)
	CountLogs(ctx context.Context) (int64, error)
}
