package models

import (
	"database/sql"
	"time"
)

// NotificationChannel is the delivery channel for a notification attempt.
type NotificationChannel string

const (
	ChannelSMS   NotificationChannel = "sms"
	ChannelEmail NotificationChannel = "email"
)

// NotificationStatus is the recorded outcome of one notification attempt.
type NotificationStatus string

const (
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusSkipped NotificationStatus = "skipped"
	NotificationStatusError   NotificationStatus = "error"
)

// ClientLeadTypeSetting holds per (client, lead type) channel flags and an
// optional explicit template. The absence of a row means "use defaults",
// which is not the same thing as a row with both flags false.
type ClientLeadTypeSetting struct {
	ClientID     int64         `db:"client_id" json:"client_id"`
	LeadTypeID   string        `db:"lead_type_id" json:"lead_type_id"`
	SMSEnabled   bool          `db:"sms_enabled" json:"sms_enabled"`
	EmailEnabled bool          `db:"email_enabled" json:"email_enabled"`
	TemplateID   sql.NullInt64 `db:"template_id" json:"template_id,omitempty"`
}

// NotificationTemplate is a named, reusable message template. At most one row
// carries the systemwide default flag.
type NotificationTemplate struct {
	ID           int64          `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	SMSTemplate  sql.NullString `db:"sms_template" json:"sms_template,omitempty"`
	EmailSubject sql.NullString `db:"email_subject" json:"email_subject,omitempty"`
	EmailText    sql.NullString `db:"email_text" json:"email_text,omitempty"`
	EmailHTML    sql.NullString `db:"email_html" json:"email_html,omitempty"`
	IsDefault    bool           `db:"is_default" json:"is_default"`
}

// NotificationLog records the outcome of a single notification attempt.
// Append-only audit trail, never mutated.
type NotificationLog struct {
	ID        int64               `db:"id" json:"id"`
	ClientID  sql.NullInt64       `db:"client_id" json:"client_id,omitempty"`
	LeadID    sql.NullInt64       `db:"lead_id" json:"lead_id,omitempty"`
	Channel   NotificationChannel `db:"channel" json:"channel"`
	Status    NotificationStatus  `db:"status" json:"status"`
	Message   string              `db:"message" json:"message"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
}
