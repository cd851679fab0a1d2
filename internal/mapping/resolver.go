package mapping

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/models"
)

// Writable attribute whitelists per target kind. A mapping entry outside the
// whitelist is never written, regardless of payload content.
var leadWritableFields = map[string]struct{}{
	"name":            {},
	"phone":           {},
	"address":         {},
	"email":           {},
	"company":         {},
	"secondary_phone": {},
	"lead_type":       {},
	"caller_name":     {},
	"caller_number":   {},
	"notes":           {},
	"client_id":       {},
	"campaign_id":     {},
	"number_id":       {},
}

var campaignWritableFields = map[string]struct{}{
	"campaign_name": {},
	"status":        {},
	"client_id":     {},
}

// CampaignNotFoundError reports an explicitly mapped campaign reference that
// resolved to nothing. It fails the whole request, not just the record.
type CampaignNotFoundError struct {
	Ref string
}

func (e *CampaignNotFoundError) Error() string {
	return fmt.Sprintf("campaign not found: %s", e.Ref)
}

// CampaignDirectory looks up campaigns while resolving a record. Both lookups
// return (nil, nil) when no campaign matches.
type CampaignDirectory interface {
	FindByIDOrName(ctx context.Context, ref string) (*models.Campaign, error)
	FindByName(ctx context.Context, name string) (*models.Campaign, error)
}

// Attributes is a whitelist-bounded draft attribute set produced by the
// resolver, ready for entity construction.
type Attributes map[string]interface{}

// Has reports whether key carries a value in the draft.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the attribute rendered as a string. Missing and null values
// render empty; numbers render without a trailing fraction when integral.
func (a Attributes) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Int64 returns the attribute as an integer when it can be read as one.
func (a Attributes) Int64(key string) (int64, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int64:
		return t, true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Resolver turns one inbound record into a draft attribute set according to
// the endpoint's field mapping and target kind.
type Resolver struct {
	campaigns CampaignDirectory
	logger    *zap.Logger
}

func NewResolver(campaigns CampaignDirectory, logger *zap.Logger) *Resolver {
	return &Resolver{
		campaigns: campaigns,
		logger:    logger,
	}
}

// Resolve applies the configured mapping to record. With no mapping configured
// it falls back to the legacy fixed layout over the record's "data" sub-object.
func (r *Resolver) Resolve(
	ctx context.Context,
	kind models.TargetKind,
	fieldMapping FieldMapping,
	record map[string]interface{},
) (Attributes, error) {
	if len(fieldMapping) == 0 {
		return r.resolveLegacy(ctx, kind, record)
	}

	writable := writableFor(kind)
	draft := Attributes{}

	// Seed from any default sub-object on the record, restricted to the
	// whitelist.
	if sub, ok := record["data"].(map[string]interface{}); ok {
		for k, v := range sub {
			if _, allowed := writable[k]; allowed {
				draft[k] = v
			}
		}
	}

	for _, entry := range fieldMapping {
		if kind != models.TargetKindCampaign && entry.Field == "campaign_id" {
			value, _ := Extract(record, entry.Path)
			if value != nil {
				ref := anyToString(value)
				campaign, err := r.campaigns.FindByIDOrName(ctx, ref)
				if err != nil {
					return nil, fmt.Errorf("failed to resolve campaign %q: %w", ref, err)
				}
				if campaign == nil {
					return nil, &CampaignNotFoundError{Ref: ref}
				}
				r.applyCampaign(draft, campaign)
			}
			continue
		}

		if _, allowed := writable[entry.Field]; allowed {
			value, _ := Extract(record, entry.Path)
			draft[entry.Field] = value
			continue
		}

		// The campaign/campaign_name aliases resolve by exact name only and
		// skip silently on a miss, unlike the explicit campaign_id field.
		if kind != models.TargetKindCampaign && (entry.Field == "campaign" || entry.Field == "campaign_name") {
			value, _ := Extract(record, entry.Path)
			campaign, err := r.campaigns.FindByName(ctx, anyToString(value))
			if err != nil {
				return nil, fmt.Errorf("failed to resolve campaign name: %w", err)
			}
			if campaign != nil {
				r.applyCampaign(draft, campaign)
			}
			continue
		}

		r.logger.Debug("Ignoring disallowed mapping field", zap.String("field", entry.Field))
	}

	if kind == models.TargetKindCampaign && !draft.Has("id") {
		draft["id"] = NewCampaignID()
	}

	return draft, nil
}

// applyCampaign sets the campaign reference and inherits the campaign's client
// unless the draft already carries one.
func (r *Resolver) applyCampaign(draft Attributes, campaign *models.Campaign) {
	draft["campaign_id"] = campaign.ID
	if campaign.ClientID.Valid && !draft.Has("client_id") {
		draft["client_id"] = campaign.ClientID.Int64
	}
}

// resolveLegacy builds attributes from the record's "data" sub-object using
// the dialer's stock key names. Supported for endpoints that predate mapping
// configuration.
func (r *Resolver) resolveLegacy(
	ctx context.Context,
	kind models.TargetKind,
	record map[string]interface{},
) (Attributes, error) {
	data, _ := record["data"].(map[string]interface{})

	if kind == models.TargetKindCampaign {
		draft := Attributes{
			"id":            data["id"],
			"campaign_name": data["campaign_name"],
			"status":        data["status"],
			"client_id":     data["client_id"],
		}
		if draft["id"] == nil {
			draft["id"] = NewCampaignID()
		}
		return draft, nil
	}

	customFields, _ := data["custom_fields"].(map[string]interface{})

	campaignID := data["campaign_id"]
	if name := anyToString(data["campaign_name"]); name != "" {
		campaign, err := r.campaigns.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve campaign name: %w", err)
		}
		if campaign != nil {
			campaignID = campaign.ID
		}
	}

	notes := customFields["Notes"]
	if notes == nil {
		notes = data["notes"]
	}
	phone := data["client_number"]
	if phone == nil {
		phone = data["phone"]
	}

	return Attributes{
		"name":            data["client_name"],
		"phone":           phone,
		"address":         data["address"],
		"email":           data["email"],
		"company":         customFields["Company"],
		"secondary_phone": customFields["Alternate Phone Number"],
		"campaign_id":     campaignID,
		"lead_type":       data["disposition"],
		"caller_name":     data["caller_name"],
		"caller_number":   data["caller_number"],
		"notes":           notes,
	}, nil
}

// NewCampaignID synthesizes an opaque campaign identity.
func NewCampaignID() string {
	return uuid.New().String()
}

func writableFor(kind models.TargetKind) map[string]struct{} {
	if kind == models.TargetKindCampaign {
		return campaignWritableFields
	}
	return leadWritableFields
}

func anyToString(v interface{}) string {
	return Attributes{"v": v}.String("v")
}
