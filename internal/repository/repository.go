package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db           *sqlx.DB
	webhook      WebhookRepository
	lead         LeadRepository
	campaign     CampaignRepository
	client       ClientRepository
	notification NotificationRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:           db,
		webhook:      NewWebhookRepository(db),
		lead:         NewLeadRepository(),
		campaign:     NewCampaignRepository(),
		client:       NewClientRepository(db),
		notification: NewNotificationRepository(db),
	}
}

func (r *repositoryImpl) Webhook() WebhookRepository {
	return r.webhook
}

func (r *repositoryImpl) Lead() LeadRepository {
	return r.lead
}

func (r *repositoryImpl) Campaign() CampaignRepository {
	return r.campaign
}

func (r *repositoryImpl) Client() ClientRepository {
	return r.client
}

func (r *repositoryImpl) Notification() NotificationRepository {
	return r.notification
}

// BeginTxx opens a transaction for a batch write.
func (r *repositoryImpl) BeginTxx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

// DB returns the plain database handle for non-transactional reads.
func (r *repositoryImpl) DB() sqlx.ExtContext {
	return r.db
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
