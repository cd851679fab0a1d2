package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
	"github.com/getconnects/leadrelay/internal/mapping"
	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository"
)

const defaultDedupWindow = 20

type webhookService struct {
	cfg         *config.Config
	repo        repository.Repository
	leads       LeadService
	notifier    NotificationService
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewWebhookService(
	cfg *config.Config,
	repo repository.Repository,
	leads LeadService,
	notifier NotificationService,
	redisClient *redis.Client,
	logger *zap.Logger,
) WebhookService {
	return &webhookService{
		cfg:         cfg,
		repo:        repo,
		leads:       leads,
		notifier:    notifier,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Ingest processes one inbound delivery end to end: authenticate the token,
// normalize the payload shape, absorb duplicate redeliveries, log the raw
// payload, then map and persist every record in a single transaction.
// Notifications for created leads dispatch after commit.
func (s *webhookService) Ingest(ctx context.Context, token string, body []byte) error {
	endpoint, err := s.repo.Webhook().GetEndpointByToken(ctx, token)
	if err != nil {
		return err
	}
	if endpoint == nil {
		return ErrEndpointNotFound
	}

	records, err := normalizePayload(body)
	if err != nil {
		return err
	}

	fingerprint, err := mapping.Fingerprint(records)
	if err != nil {
		return fmt.Errorf("failed to fingerprint payload: %w", err)
	}

	duplicate, err := s.isDuplicate(ctx, endpoint.ID, fingerprint)
	if err != nil {
		return err
	}
	if duplicate {
		s.logger.Info("Ignoring duplicate webhook payload",
			zap.String("token", token),
			zap.String("fingerprint", fingerprint))
		return nil
	}

	// The raw payload is logged outside the batch transaction so a mapping
	// or write failure never loses the original delivery.
	normalized, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize payload: %w", err)
	}
	if err := s.repo.Webhook().AppendPayload(ctx, endpoint.ID, normalized, fingerprint); err != nil {
		return err
	}
	s.cacheFingerprint(ctx, endpoint.ID, fingerprint)

	fieldMapping := s.decodeMapping(endpoint)

	tx, err := s.repo.BeginTxx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	resolver := mapping.NewResolver(&txCampaignDirectory{campaigns: s.repo.Campaign(), q: tx}, s.logger)

	var createdLeads []*models.Lead
	for _, record := range records {
		attrs, err := resolver.Resolve(ctx, endpoint.TargetKind, fieldMapping, record)
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		if endpoint.TargetKind == models.TargetKindCampaign {
			if err := s.repo.Campaign().Create(ctx, tx, campaignFromAttributes(attrs)); err != nil {
				_ = tx.Rollback()
				return &DomainWriteError{Err: err}
			}
			continue
		}

		lead, err := s.leads.CreateInTx(ctx, tx, leadInputFromAttributes(attrs))
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		createdLeads = append(createdLeads, lead)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit webhook batch: %w", err)
	}

	for _, lead := range createdLeads {
		for _, warning := range s.notifier.DispatchLeadCreated(ctx, lead) {
			s.logger.Warn("Notification warning",
				zap.Int64("lead_id", lead.ID),
				zap.String("warning", warning))
		}
	}

	return nil
}

// LatestPayload returns the most recently logged raw payload for an endpoint,
// or an empty JSON object when none has been received yet.
func (s *webhookService) LatestPayload(ctx context.Context, token string) (json.RawMessage, error) {
	endpoint, err := s.repo.Webhook().GetEndpointByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if endpoint == nil {
		return nil, ErrEndpointNotFound
	}

	payload, err := s.repo.Webhook().LatestPayload(ctx, endpoint.ID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return json.RawMessage(`{}`), nil
	}

	return payload.Payload, nil
}

// GetMapping returns the saved field mapping for an endpoint.
func (s *webhookService) GetMapping(ctx context.Context, token string) (json.RawMessage, error) {
	endpoint, err := s.repo.Webhook().GetEndpointByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if endpoint == nil {
		return nil, ErrEndpointNotFound
	}

	if len(endpoint.Mapping) == 0 {
		return json.RawMessage(`{}`), nil
	}

	return endpoint.Mapping, nil
}

// SaveMapping stores a field mapping for an endpoint. Fields are not checked
// against the whitelist here; disallowed fields are dropped at resolve time.
func (s *webhookService) SaveMapping(ctx context.Context, token string, raw json.RawMessage) error {
	var fieldMapping mapping.FieldMapping
	if err := json.Unmarshal(raw, &fieldMapping); err != nil {
		return ErrInvalidMapping
	}

	canonical, err := json.Marshal(fieldMapping)
	if err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}

	if err := s.repo.Webhook().SaveMapping(ctx, token, canonical); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEndpointNotFound
		}
		return err
	}

	return nil
}

// CreateEndpoint registers a new webhook endpoint for the given target kind.
func (s *webhookService) CreateEndpoint(ctx context.Context, kind models.TargetKind) (*models.WebhookEndpoint, error) {
	return s.repo.Webhook().CreateEndpoint(ctx, kind)
}

// DeleteEndpoint removes an endpoint and its payload log.
func (s *webhookService) DeleteEndpoint(ctx context.Context, token string) error {
	return s.repo.Webhook().DeleteEndpoint(ctx, token)
}

// decodeMapping parses the endpoint's stored field mapping. A mapping that no
// longer parses is treated as absent so ingestion falls back to the fixed
// legacy layout instead of rejecting deliveries.
func (s *webhookService) decodeMapping(endpoint *models.WebhookEndpoint) mapping.FieldMapping {
	if len(endpoint.Mapping) == 0 {
		return nil
	}

	var fieldMapping mapping.FieldMapping
	if err := json.Unmarshal(endpoint.Mapping, &fieldMapping); err != nil {
		s.logger.Warn("Stored field mapping is unreadable, ignoring it",
			zap.Int64("endpoint_id", endpoint.ID),
			zap.Error(err))
		return nil
	}

	return fieldMapping
}

// normalizePayload accepts a single JSON object or an array of objects and
// returns the list-wrapped form. Anything else is a validation failure.
func normalizePayload(body []byte) ([]map[string]interface{}, error) {
	var top interface{}
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, ErrInvalidPayload
	}

	switch t := top.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{t}, nil
	case []interface{}:
		records := make([]map[string]interface{}, 0, len(t))
		for _, item := range t {
			record, ok := item.(map[string]interface{})
			if !ok {
				return nil, ErrInvalidPayload
			}
			records = append(records, record)
		}
		return records, nil
	default:
		return nil, ErrInvalidPayload
	}
}

// isDuplicate checks the fingerprint against the most recent payload-log
// entries for the endpoint. Redis serves as a best-effort fast path; the
// payload log is the authority.
func (s *webhookService) isDuplicate(ctx context.Context, endpointID int64, fingerprint string) (bool, error) {
	window := s.cfg.Webhook.DedupWindow
	if window <= 0 {
		window = defaultDedupWindow
	}

	if s.redisClient != nil {
		cached, err := s.redisClient.LRange(ctx, dedupKey(endpointID), 0, int64(window-1)).Result()
		if err != nil {
			s.logger.Warn("Failed to read dedup cache", zap.Error(err))
		} else {
			for _, fp := range cached {
				if fp == fingerprint {
					return true, nil
				}
			}
		}
	}

	recent, err := s.repo.Webhook().RecentFingerprints(ctx, endpointID, window)
	if err != nil {
		return false, err
	}
	for _, fp := range recent {
		if fp == fingerprint {
			return true, nil
		}
	}

	return false, nil
}

// cacheFingerprint pushes the fingerprint onto the endpoint's bounded Redis
// window. Best effort; failures only log.
func (s *webhookService) cacheFingerprint(ctx context.Context, endpointID int64, fingerprint string) {
	if s.redisClient == nil {
		return
	}

	window := s.cfg.Webhook.DedupWindow
	if window <= 0 {
		window = defaultDedupWindow
	}

	key := dedupKey(endpointID)
	if err := s.redisClient.LPush(ctx, key, fingerprint).Err(); err != nil {
		s.logger.Warn("Failed to cache fingerprint", zap.Error(err))
		return
	}
	if err := s.redisClient.LTrim(ctx, key, 0, int64(window-1)).Err(); err != nil {
		s.logger.Warn("Failed to trim dedup cache", zap.Error(err))
	}
}

func dedupKey(endpointID int64) string {
	return fmt.Sprintf("webhook:dedup:%d", endpointID)
}

// txCampaignDirectory adapts the campaign repository onto the resolver's
// lookup interface, pinned to the batch transaction so records in the same
// delivery see each other's staged campaigns.
type txCampaignDirectory struct {
	campaigns repository.CampaignRepository
	q         sqlx.ExtContext
}

func (d *txCampaignDirectory) FindByIDOrName(ctx context.Context, ref string) (*models.Campaign, error) {
	return d.campaigns.FindByIDOrName(ctx, d.q, ref)
}

func (d *txCampaignDirectory) FindByName(ctx context.Context, name string) (*models.Campaign, error) {
	return d.campaigns.FindByName(ctx, d.q, name)
}

func leadInputFromAttributes(attrs mapping.Attributes) LeadInput {
	return LeadInput{
		Name:           attrs.String("name"),
		Phone:          attrs.String("phone"),
		Email:          attrs.String("email"),
		Address:        attrs.String("address"),
		Company:        attrs.String("company"),
		SecondaryPhone: attrs.String("secondary_phone"),
		CampaignID:     attrs.String("campaign_id"),
		LeadType:       attrs.String("lead_type"),
		CallerName:     attrs.String("caller_name"),
		CallerNumber:   attrs.String("caller_number"),
		Notes:          attrs.String("notes"),
		NumberID:       attrs.String("number_id"),
	}
}

func campaignFromAttributes(attrs mapping.Attributes) *models.Campaign {
	campaign := &models.Campaign{
		ID:           attrs.String("id"),
		CampaignName: attrs.String("campaign_name"),
		Status:       attrs.String("status"),
	}

	if clientID, ok := attrs.Int64("client_id"); ok {
		campaign.ClientID.Int64 = clientID
		campaign.ClientID.Valid = true
	}

	return campaign
}
