package models

import "database/sql"

// Campaign is a marketing campaign owned by a client. Campaign ids are opaque
// strings assigned by the dialer platform (or synthesized on ingest).
type Campaign struct {
	ID           string        `db:"id" json:"id"`
	CampaignName string        `db:"campaign_name" json:"campaign_name"`
	Status       string        `db:"status" json:"status"`
	ClientID     sql.NullInt64 `db:"client_id" json:"client_id,omitempty"`
}
