package mapping_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/mapping"
	"github.com/getconnects/leadrelay/internal/models"
)

type fakeDirectory struct {
	byRef  map[string]*models.Campaign
	byName map[string]*models.Campaign
}

func (d *fakeDirectory) FindByIDOrName(_ context.Context, ref string) (*models.Campaign, error) {
	return d.byRef[ref], nil
}

func (d *fakeDirectory) FindByName(_ context.Context, name string) (*models.Campaign, error) {
	return d.byName[name], nil
}

func testCampaign(id string, clientID int64) *models.Campaign {
	return &models.Campaign{
		ID:       id,
		ClientID: sql.NullInt64{Int64: clientID, Valid: clientID != 0},
	}
}

func TestResolver_MappedLead(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{
		"contact": {"full_name": "Jane Roe", "numbers": ["555-0100", "555-0199"]},
		"meta": {"source": "billboard"}
	}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "name", Path: "contact.full_name"},
		{Field: "phone", Path: "contact.numbers[0]"},
		{Field: "secondary_phone", Path: "contact.numbers[1]"},
		{Field: "source", Path: "meta.source"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", attrs.String("name"))
	assert.Equal(t, "555-0100", attrs.String("phone"))
	assert.Equal(t, "555-0199", attrs.String("secondary_phone"))
	assert.False(t, attrs.Has("source"), "non-whitelisted field must be dropped")
}

func TestResolver_DataSeedsWhitelistedFields(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{
		"data": {"notes": "call after 5", "internal_flag": true},
		"contact": {"full_name": "Jane Roe"}
	}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "name", Path: "contact.full_name"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)

	assert.Equal(t, "call after 5", attrs.String("notes"))
	assert.Equal(t, "Jane Roe", attrs.String("name"))
	assert.False(t, attrs.Has("internal_flag"))
}

func TestResolver_CampaignIDResolution(t *testing.T) {
	dir := &fakeDirectory{
		byRef: map[string]*models.Campaign{
			"Spring Sale": testCampaign("camp-1", 42),
		},
	}
	resolver := mapping.NewResolver(dir, zap.NewNop())

	record := decode(t, `{"meta": {"campaign": "Spring Sale"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign_id", Path: "meta.campaign"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)

	assert.Equal(t, "camp-1", attrs.String("campaign_id"))
	clientID, ok := attrs.Int64("client_id")
	require.True(t, ok)
	assert.Equal(t, int64(42), clientID)
}

func TestResolver_CampaignIDMissIsFatal(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{"meta": {"campaign": "Nope"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign_id", Path: "meta.campaign"},
	}

	_, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)

	var notFound *mapping.CampaignNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Nope", notFound.Ref)
}

func TestResolver_CampaignNameAliasSkipsSilently(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{"meta": {"campaign": "Unknown"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign_name", Path: "meta.campaign"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)
	assert.False(t, attrs.Has("campaign_id"))
}

func TestResolver_CampaignNameAliasResolves(t *testing.T) {
	dir := &fakeDirectory{
		byName: map[string]*models.Campaign{
			"Spring Sale": testCampaign("camp-1", 42),
		},
	}
	resolver := mapping.NewResolver(dir, zap.NewNop())

	record := decode(t, `{"meta": {"campaign": "Spring Sale"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign", Path: "meta.campaign"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)
	assert.Equal(t, "camp-1", attrs.String("campaign_id"))
}

func TestResolver_ExplicitClientNotOverwrittenByCampaign(t *testing.T) {
	dir := &fakeDirectory{
		byRef: map[string]*models.Campaign{
			"camp-1": testCampaign("camp-1", 42),
		},
	}
	resolver := mapping.NewResolver(dir, zap.NewNop())

	record := decode(t, `{"data": {"client_id": 7}, "meta": {"campaign": "camp-1"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign_id", Path: "meta.campaign"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, fieldMapping, record)
	require.NoError(t, err)

	clientID, ok := attrs.Int64("client_id")
	require.True(t, ok)
	assert.Equal(t, int64(7), clientID)
}

func TestResolver_CampaignKindSynthesizesID(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{"meta": {"name": "Fall Push", "status": "active"}}`)

	fieldMapping := mapping.FieldMapping{
		{Field: "campaign_name", Path: "meta.name"},
		{Field: "status", Path: "meta.status"},
	}

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindCampaign, fieldMapping, record)
	require.NoError(t, err)

	assert.Equal(t, "Fall Push", attrs.String("campaign_name"))
	assert.Equal(t, "active", attrs.String("status"))

	_, parseErr := uuid.Parse(attrs.String("id"))
	assert.NoError(t, parseErr, "missing campaign id must be synthesized")
}

func TestResolver_LegacyLeadLayout(t *testing.T) {
	dir := &fakeDirectory{
		byName: map[string]*models.Campaign{
			"Spring Sale": testCampaign("camp-1", 0),
		},
	}
	resolver := mapping.NewResolver(dir, zap.NewNop())

	record := decode(t, `{
		"data": {
			"client_name": "Jane Roe",
			"client_number": "555-0100",
			"address": "1 Main St",
			"email": "jane@example.com",
			"campaign_name": "Spring Sale",
			"disposition": "hot",
			"caller_name": "Agent Smith",
			"caller_number": "555-0001",
			"custom_fields": {
				"Company": "Roe LLC",
				"Alternate Phone Number": "555-0200",
				"Notes": "wants callback"
			}
		}
	}`)

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, nil, record)
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", attrs.String("name"))
	assert.Equal(t, "555-0100", attrs.String("phone"))
	assert.Equal(t, "1 Main St", attrs.String("address"))
	assert.Equal(t, "jane@example.com", attrs.String("email"))
	assert.Equal(t, "Roe LLC", attrs.String("company"))
	assert.Equal(t, "555-0200", attrs.String("secondary_phone"))
	assert.Equal(t, "camp-1", attrs.String("campaign_id"))
	assert.Equal(t, "hot", attrs.String("lead_type"))
	assert.Equal(t, "Agent Smith", attrs.String("caller_name"))
	assert.Equal(t, "555-0001", attrs.String("caller_number"))
	assert.Equal(t, "wants callback", attrs.String("notes"))
}

func TestResolver_LegacyLeadPhoneFallback(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{"data": {"phone": "555-0300", "notes": "plain notes"}}`)

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindLead, nil, record)
	require.NoError(t, err)

	assert.Equal(t, "555-0300", attrs.String("phone"))
	assert.Equal(t, "plain notes", attrs.String("notes"))
}

func TestResolver_LegacyCampaignLayout(t *testing.T) {
	resolver := mapping.NewResolver(&fakeDirectory{}, zap.NewNop())

	record := decode(t, `{
		"data": {"id": "camp-9", "campaign_name": "Winter", "status": "paused", "client_id": 3}
	}`)

	attrs, err := resolver.Resolve(context.Background(), models.TargetKindCampaign, nil, record)
	require.NoError(t, err)

	assert.Equal(t, "camp-9", attrs.String("id"))
	assert.Equal(t, "Winter", attrs.String("campaign_name"))
	assert.Equal(t, "paused", attrs.String("status"))
	clientID, ok := attrs.Int64("client_id")
	require.True(t, ok)
	assert.Equal(t, int64(3), clientID)
}

func TestAttributes_String(t *testing.T) {
	attrs := mapping.Attributes{
		"int":    float64(123),
		"frac":   1.5,
		"bool":   true,
		"str":    "x",
		"nilval": nil,
	}

	assert.Equal(t, "123", attrs.String("int"))
	assert.Equal(t, "1.5", attrs.String("frac"))
	assert.Equal(t, "true", attrs.String("bool"))
	assert.Equal(t, "x", attrs.String("str"))
	assert.Equal(t, "", attrs.String("nilval"))
	assert.Equal(t, "", attrs.String("missing"))
}
