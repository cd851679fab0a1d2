package models

import "time"

// Client is a business client receiving leads from campaigns.
type Client struct {
	ID           int64     `db:"id" json:"id"`
	CompanyName  string    `db:"company_name" json:"company_name"`
	ContactName  string    `db:"contact_name" json:"contact_name"`
	ContactEmail string    `db:"contact_email" json:"contact_email"`
	Phone        string    `db:"phone" json:"phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
