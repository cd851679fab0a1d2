package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

type webhookRepository struct {
	db *sqlx.DB
}

func NewWebhookRepository(db *sqlx.DB) WebhookRepository {
	return &webhookRepository{
		db: db,
	}
}

// CreateEndpoint stores a new endpoint with a server-generated opaque token.
func (r *webhookRepository) CreateEndpoint(ctx context.Context, kind models.TargetKind) (*models.WebhookEndpoint, error) {
	endpoint := &models.WebhookEndpoint{
		Token:      uuid.New().String(),
		TargetKind: kind,
	}

	query := `
		INSERT INTO webhook_endpoints (token, target_kind)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.db.GetContext(ctx, &endpoint.ID, query, endpoint.Token, endpoint.TargetKind); err != nil {
		return nil, fmt.Errorf("failed to create webhook endpoint: %w", err)
	}

	return endpoint, nil
}

// GetEndpointByToken looks up an endpoint by its token.
func (r *webhookRepository) GetEndpointByToken(ctx context.Context, token string) (*models.WebhookEndpoint, error) {
	query := `
		SELECT id, token, target_kind, mapping
		FROM webhook_endpoints
		WHERE token = $1
	`

	var endpoint models.WebhookEndpoint
	err := r.db.GetContext(ctx, &endpoint, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook endpoint: %w", err)
	}

	return &endpoint, nil
}

// DeleteEndpoint removes an endpoint; its payload log goes with it via FK.
func (r *webhookRepository) DeleteEndpoint(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM webhook_endpoints WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete webhook endpoint: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete webhook endpoint: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// SaveMapping replaces the endpoint's field mapping. No whitelist validation
// happens here; invalid fields are dropped at resolve time.
func (r *webhookRepository) SaveMapping(ctx context.Context, token string, mapping json.RawMessage) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE webhook_endpoints SET mapping = $2 WHERE token = $1`,
		token, mapping)
	if err != nil {
		return fmt.Errorf("failed to save webhook mapping: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save webhook mapping: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// AppendPayload logs one normalized delivery for an endpoint.
func (r *webhookRepository) AppendPayload(ctx context.Context, endpointID int64, payload json.RawMessage, fingerprint string) error {
	query := `
		INSERT INTO webhook_payloads (endpoint_id, payload, fingerprint, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, endpointID, payload, fingerprint, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append webhook payload: %w", err)
	}

	return nil
}

// RecentFingerprints returns the fingerprints of the newest payload-log
// entries for an endpoint, newest first.
func (r *webhookRepository) RecentFingerprints(ctx context.Context, endpointID int64, limit int) ([]string, error) {
	query := `
		SELECT fingerprint
		FROM webhook_payloads
		WHERE endpoint_id = $1
		ORDER BY id DESC
		LIMIT $2
	`

	var fingerprints []string
	if err := r.db.SelectContext(ctx, &fingerprints, query, endpointID, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent fingerprints: %w", err)
	}

	return fingerprints, nil
}

// LatestPayload returns the most recently logged payload for an endpoint.
func (r *webhookRepository) LatestPayload(ctx context.Context, endpointID int64) (*models.WebhookPayload, error) {
	query := `
		SELECT id, endpoint_id, payload, fingerprint, created_at
		FROM webhook_payloads
		WHERE endpoint_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var payload models.WebhookPayload
	err := r.db.GetContext(ctx, &payload, query, endpointID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest payload: %w", err)
	}

	return &payload, nil
}

// DeletePayloadsBefore prunes payload-log entries older than cutoff.
func (r *webhookRepository) DeletePayloadsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM webhook_payloads WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune webhook payloads: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to prune webhook payloads: %w", err)
	}

	return affected, nil
}
