package models

import (
	"encoding/json"
	"time"
)

// TargetKind selects what entity a webhook endpoint produces.
type TargetKind string

const (
	TargetKindLead     TargetKind = "lead"
	TargetKindCampaign TargetKind = "campaign"
)

// Valid reports whether k is a known target kind.
func (k TargetKind) Valid() bool {
	return k == TargetKindLead || k == TargetKindCampaign
}

// WebhookEndpoint stores the token and mapping configuration for one inbound
// dialer integration. The target kind never changes after creation.
type WebhookEndpoint struct {
	ID         int64           `db:"id" json:"id"`
	Token      string          `db:"token" json:"token"`
	TargetKind TargetKind      `db:"target_kind" json:"target_kind"`
	Mapping    json.RawMessage `db:"mapping" json:"mapping,omitempty"`
}

// WebhookPayload is one logged raw delivery for an endpoint. Append-only.
type WebhookPayload struct {
	ID          int64           `db:"id" json:"id"`
	EndpointID  int64           `db:"endpoint_id" json:"endpoint_id"`
	Payload     json.RawMessage `db:"payload" json:"payload"`
	Fingerprint string          `db:"fingerprint" json:"fingerprint"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
