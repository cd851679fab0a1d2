package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository"
)

// LeadInput carries the writable fields of a lead. The owning client is never
// an input; it is derived from the referenced campaign at write time.
type LeadInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	SecondaryPhone string `json:"secondary_phone"`
	CampaignID     string `json:"campaign_id"`
	LeadType       string `json:"lead_type"`
	CallerName     string `json:"caller_name"`
	CallerNumber   string `json:"caller_number"`
	Notes          string `json:"notes"`
	NumberID       string `json:"number_id"`
}

type leadService struct {
	repo     repository.Repository
	notifier NotificationService
	logger   *zap.Logger
}

func NewLeadService(repo repository.Repository, notifier NotificationService, logger *zap.Logger) LeadService {
	return &leadService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Create persists a new lead in its own transaction and dispatches
// notifications after commit. Notification problems never fail the write;
// they come back as soft warnings.
func (s *leadService) Create(ctx context.Context, input LeadInput) (*models.Lead, []string, error) {
	tx, err := s.repo.BeginTxx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	lead, err := s.CreateInTx(ctx, tx, input)
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit lead: %w", err)
	}

	warnings := s.notifier.DispatchLeadCreated(ctx, lead)
	return lead, warnings, nil
}

// CreateInTx stages a new lead on the caller's transaction. Notifications are
// the caller's responsibility once the transaction commits.
func (s *leadService) CreateInTx(ctx context.Context, q sqlx.ExtContext, input LeadInput) (*models.Lead, error) {
	lead := leadFromInput(input)

	if input.CampaignID != "" {
		campaign, err := s.repo.Campaign().FindByID(ctx, q, input.CampaignID)
		if err != nil {
			return nil, err
		}
		if campaign != nil && campaign.ClientID.Valid {
			lead.ClientID = campaign.ClientID
		}
	}

	if _, err := s.repo.Lead().Create(ctx, q, lead); err != nil {
		return nil, &DomainWriteError{Err: err}
	}

	return lead, nil
}

// Update rewrites a lead's mutable fields and re-derives the inherited client
// reference from the (possibly changed) campaign.
func (s *leadService) Update(ctx context.Context, id int64, input LeadInput) (*models.Lead, error) {
	tx, err := s.repo.BeginTxx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	existing, err := s.repo.Lead().GetByID(ctx, tx, id)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if existing == nil {
		_ = tx.Rollback()
		return nil, ErrLeadNotFound
	}

	lead := leadFromInput(input)
	lead.ID = id
	lead.ClientID = existing.ClientID
	lead.CreatedAt = existing.CreatedAt

	if input.CampaignID != "" {
		campaign, err := s.repo.Campaign().FindByID(ctx, tx, input.CampaignID)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
		if campaign != nil && campaign.ClientID.Valid {
			lead.ClientID = campaign.ClientID
		}
	}

	if err := s.repo.Lead().Update(ctx, tx, lead); err != nil {
		_ = tx.Rollback()
		return nil, &DomainWriteError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead update: %w", err)
	}

	return lead, nil
}

// ReassignCampaignClient changes a campaign's owning client and cascades the
// new client reference to every lead of that campaign in the same
// transaction. Returns the number of repointed leads.
func (s *leadService) ReassignCampaignClient(ctx context.Context, campaignID string, clientID *int64) (int64, error) {
	tx, err := s.repo.BeginTxx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	campaign, err := s.repo.Campaign().FindByID(ctx, tx, campaignID)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if campaign == nil {
		_ = tx.Rollback()
		return 0, ErrCampaignNotFound
	}

	newClient := sql.NullInt64{}
	if clientID != nil {
		newClient = sql.NullInt64{Int64: *clientID, Valid: true}
	}

	if err := s.repo.Campaign().UpdateClient(ctx, tx, campaignID, newClient); err != nil {
		_ = tx.Rollback()
		return 0, &DomainWriteError{Err: err}
	}

	repointed, err := s.repo.Lead().ReassignClientByCampaign(ctx, tx, campaignID, newClient)
	if err != nil {
		_ = tx.Rollback()
		return 0, &DomainWriteError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit campaign reassignment: %w", err)
	}

	s.logger.Info("Campaign client reassigned",
		zap.String("campaign_id", campaignID),
		zap.Int64("repointed_leads", repointed))

	return repointed, nil
}

func leadFromInput(input LeadInput) *models.Lead {
	lead := &models.Lead{
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		Company:        input.Company,
		SecondaryPhone: input.SecondaryPhone,
		LeadType:       input.LeadType,
		CallerName:     input.CallerName,
		CallerNumber:   input.CallerNumber,
		Notes:          input.Notes,
		NumberID:       input.NumberID,
	}

	if input.CampaignID != "" {
		lead.CampaignID = sql.NullString{String: input.CampaignID, Valid: true}
	}

	return lead
}
