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

type leadRepository struct{}

func NewLeadRepository() LeadRepository {
	return &leadRepository{}
}

// Create inserts a lead on the given executor and returns the new id.
func (r *leadRepository) Create(ctx context.Context, q sqlx.ExtContext, lead *models.Lead) (int64, error) {
	query := `
		INSERT INTO leads (
			name, phone, address, email, company, secondary_phone,
			lead_type, caller_name, caller_number, notes,
			client_id, campaign_id, number_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	var id int64
	err := sqlx.GetContext(ctx, q, &id, query,
		lead.Name, lead.Phone, lead.Address, lead.Email, lead.Company, lead.SecondaryPhone,
		lead.LeadType, lead.CallerName, lead.CallerNumber, lead.Notes,
		lead.ClientID, lead.CampaignID, lead.NumberID, lead.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create lead: %w", err)
	}

	lead.ID = id
	return id, nil
}

// Update rewrites the mutable fields of an existing lead.
func (r *leadRepository) Update(ctx context.Context, q sqlx.ExtContext, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET name = $2,
		    phone = $3,
		    address = $4,
		    email = $5,
		    company = $6,
		    secondary_phone = $7,
		    lead_type = $8,
		    caller_name = $9,
		    caller_number = $10,
		    notes = $11,
		    client_id = $12,
		    campaign_id = $13,
		    number_id = $14
		WHERE id = $1
	`

	result, err := q.ExecContext(ctx, query,
		lead.ID,
		lead.Name, lead.Phone, lead.Address, lead.Email, lead.Company, lead.SecondaryPhone,
		lead.LeadType, lead.CallerName, lead.CallerNumber, lead.Notes,
		lead.ClientID, lead.CampaignID, lead.NumberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// GetByID fetches a lead by id.
func (r *leadRepository) GetByID(ctx context.Context, q sqlx.ExtContext, id int64) (*models.Lead, error) {
	query := `
		SELECT id, name, phone, address, email, company, secondary_phone,
		       lead_type, caller_name, caller_number, notes,
		       client_id, campaign_id, number_id, created_at
		FROM leads
		WHERE id = $1
	`

	var lead models.Lead
	err := sqlx.GetContext(ctx, q, &lead, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

// ReassignClientByCampaign repoints the inherited client reference of every
// lead belonging to the campaign, leaving all other attributes untouched.
func (r *leadRepository) ReassignClientByCampaign(ctx context.Context, q sqlx.ExtContext, campaignID string, clientID sql.NullInt64) (int64, error) {
	result, err := q.ExecContext(ctx,
		`UPDATE leads SET client_id = $2 WHERE campaign_id = $1`,
		campaignID, clientID)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign leads: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to reassign leads: %w", err)
	}

	return affected, nil
}
