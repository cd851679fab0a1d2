// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// Lead is a sales lead generated from a campaign.
type Lead struct {
	ID             int64          `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Phone          string         `db:"phone" json:"phone"`
	Address        string         `db:"address" json:"address"`
	Email          string         `db:"email" json:"email"`
	Company        string         `db:"company" json:"company"`
	SecondaryPhone string         `db:"secondary_phone" json:"secondary_phone"`
	LeadType       string         `db:"lead_type" json:"lead_type"`
	CallerName     string         `db:"caller_name" json:"caller_name"`
	CallerNumber   string         `db:"caller_number" json:"caller_number"`
	Notes          string         `db:"notes" json:"notes"`
	ClientID       sql.NullInt64  `db:"client_id" json:"client_id,omitempty"`
	CampaignID     sql.NullString `db:"campaign_id" json:"campaign_id,omitempty"`
	NumberID       string         `db:"number_id" json:"number_id"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// LeadType classifies a lead. Referenced by id or by display name.
type LeadType struct {
	ID      string         `db:"id" json:"id"`
	Name    string         `db:"name" json:"name"`
	GroupID sql.NullString `db:"group_id" json:"group_id,omitempty"`
}
