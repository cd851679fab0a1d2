package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

type campaignRepository struct{}

func NewCampaignRepository() CampaignRepository {
	return &campaignRepository{}
}

const campaignColumns = `id, campaign_name, status, client_id`

// FindByID fetches a campaign by identity.
func (r *campaignRepository) FindByID(ctx context.Context, q sqlx.ExtContext, id string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	return r.findOne(ctx, q, query, id)
}

// FindByName fetches a campaign by exact display name.
func (r *campaignRepository) FindByName(ctx context.Context, q sqlx.ExtContext, name string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE campaign_name = $1`
	return r.findOne(ctx, q, query, name)
}

// FindByIDOrName fetches a campaign whose id or exact display name matches ref.
func (r *campaignRepository) FindByIDOrName(ctx context.Context, q sqlx.ExtContext, ref string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 OR campaign_name = $1 LIMIT 1`
	return r.findOne(ctx, q, query, ref)
}

func (r *campaignRepository) findOne(ctx context.Context, q sqlx.ExtContext, query string, arg interface{}) (*models.Campaign, error) {
	var campaign models.Campaign
	err := sqlx.GetContext(ctx, q, &campaign, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return &campaign, nil
}

// Create inserts a campaign on the given executor.
func (r *campaignRepository) Create(ctx context.Context, q sqlx.ExtContext, campaign *models.Campaign) error {
	query := `
		INSERT INTO campaigns (id, campaign_name, status, client_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.ExecContext(ctx, query,
		campaign.ID, campaign.CampaignName, campaign.Status, campaign.ClientID)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

// UpdateClient changes the campaign's owning client. Callers are responsible
// for cascading the change to the campaign's leads in the same transaction.
func (r *campaignRepository) UpdateClient(ctx context.Context, q sqlx.ExtContext, id string, clientID sql.NullInt64) error {
	result, err := q.ExecContext(ctx,
		`UPDATE campaigns SET client_id = $2 WHERE id = $1`,
		id, clientID)
	if err != nil {
		return fmt.Errorf("failed to update campaign client: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update campaign client: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
