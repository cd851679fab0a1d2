package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/getconnects/leadrelay/internal/models"
)

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// GetByID fetches a client by id.
func (r *clientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	query := `
		SELECT id, company_name, contact_name, contact_email, phone, created_at
		FROM clients
		WHERE id = $1
	`

	var client models.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}
