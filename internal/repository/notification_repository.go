package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// GetSetting fetches the channel flags for a (client, lead type) pair.
// Absence of a row is (nil, nil), never an error: no row means "use defaults".
func (r *notificationRepository) GetSetting(ctx context.Context, clientID int64, leadTypeID string) (*models.ClientLeadTypeSetting, error) {
	query := `
		SELECT client_id, lead_type_id, sms_enabled, email_enabled, template_id
		FROM client_lead_type_settings
		WHERE client_id = $1 AND lead_type_id = $2
	`

	var setting models.ClientLeadTypeSetting
	err := r.db.GetContext(ctx, &setting, query, clientID, leadTypeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification setting: %w", err)
	}

	return &setting, nil
}

// GetLeadTypeByName resolves a lead type by its display name.
func (r *notificationRepository) GetLeadTypeByName(ctx context.Context, name string) (*models.LeadType, error) {
	query := `SELECT id, name, group_id FROM lead_types WHERE name = $1`

	var leadType models.LeadType
	err := r.db.GetContext(ctx, &leadType, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead type: %w", err)
	}

	return &leadType, nil
}

const templateColumns = `id, name, sms_template, email_subject, email_text, email_html, is_default`

// GetTemplate fetches a template by id.
func (r *notificationRepository) GetTemplate(ctx context.Context, id int64) (*models.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE id = $1`

	var template models.NotificationTemplate
	err := r.db.GetContext(ctx, &template, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification template: %w", err)
	}

	return &template, nil
}

// GetDefaultTemplate fetches the single template flagged systemwide-default.
func (r *notificationRepository) GetDefaultTemplate(ctx context.Context) (*models.NotificationTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE is_default LIMIT 1`

	var template models.NotificationTemplate
	err := r.db.GetContext(ctx, &template, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get default template: %w", err)
	}

	return &template, nil
}

// CreateLog appends one notification outcome entry.
func (r *notificationRepository) CreateLog(ctx context.Context, entry *models.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (client_id, lead_id, channel, status, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	err := r.db.GetContext(ctx, &entry.ID, query,
		entry.ClientID, entry.LeadID, entry.Channel, entry.Status, entry.Message, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}

	return nil
}

// ListLogs returns notification log entries, newest first.
func (r *notificationRepository) ListLogs(ctx context.Context, offset, limit int) ([]*models.NotificationLog, error) {
	query := `
		SELECT id, client_id, lead_id, channel, status, message, created_at
		FROM notification_logs
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`

	var entries []*models.NotificationLog
	if err := r.db.SelectContext(ctx, &entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list notification logs: %w", err)
	}

	return entries, nil
}

// CountLogs returns the total number of notification log entries.
func (r *notificationRepository) CountLogs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notification_logs`); err != nil {
		return 0, fmt.Errorf("failed to count notification logs: %w", err)
	}

	return count, nil
}
