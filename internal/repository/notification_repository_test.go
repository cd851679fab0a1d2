package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository"
)

func TestNotificationRepository_Settings(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewNotificationRepository(db)

	clientID := insertClient(t, db, "Acme")

	setting, err := repo.GetSetting(ctx, clientID, "lt-1")
	require.NoError(t, err)
	assert.Nil(t, setting, "absence of a setting row is not an error")

	_, err = db.Exec(
		`INSERT INTO client_lead_type_settings (client_id, lead_type_id, sms_enabled, email_enabled)
		 VALUES ($1, 'lt-1', true, false)`, clientID)
	require.NoError(t, err)

	setting, err = repo.GetSetting(ctx, clientID, "lt-1")
	require.NoError(t, err)
	require.NotNil(t, setting)
	assert.True(t, setting.SMSEnabled)
	assert.False(t, setting.EmailEnabled)
	assert.False(t, setting.TemplateID.Valid)
}

func TestNotificationRepository_LeadTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewNotificationRepository(db)

	_, err := db.Exec(`INSERT INTO lead_types (id, name) VALUES ('lt-1', 'Hot Lead')`)
	require.NoError(t, err)

	leadType, err := repo.GetLeadTypeByName(ctx, "Hot Lead")
	require.NoError(t, err)
	require.NotNil(t, leadType)
	assert.Equal(t, "lt-1", leadType.ID)

	missing, err := repo.GetLeadTypeByName(ctx, "Cold Lead")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNotificationRepository_Templates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewNotificationRepository(db)

	template, err := repo.GetDefaultTemplate(ctx)
	require.NoError(t, err)
	assert.Nil(t, template, "no systemwide default configured")

	var defaultID int64
	err = db.Get(&defaultID,
		`INSERT INTO notification_templates (name, sms_template, is_default)
		 VALUES ('default', 'New lead {name}', true) RETURNING id`)
	require.NoError(t, err)

	template, err = repo.GetDefaultTemplate(ctx)
	require.NoError(t, err)
	require.NotNil(t, template)
	assert.Equal(t, defaultID, template.ID)
	assert.Equal(t, "New lead {name}", template.SMSTemplate.String)

	byID, err := repo.GetTemplate(ctx, defaultID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "default", byID.Name)
}

func TestNotificationRepository_Logs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewNotificationRepository(db)

	clientID := insertClient(t, db, "Acme")

	entries := []*models.NotificationLog{
		{ClientID: sql.NullInt64{Int64: clientID, Valid: true}, Channel: models.ChannelSMS, Status: models.NotificationStatusSent, Message: "first"},
		{ClientID: sql.NullInt64{Int64: clientID, Valid: true}, Channel: models.ChannelEmail, Status: models.NotificationStatusSkipped, Message: "second"},
		{ClientID: sql.NullInt64{Int64: clientID, Valid: true}, Channel: models.ChannelSMS, Status: models.NotificationStatusError, Message: "third"},
	}
	for _, entry := range entries {
		require.NoError(t, repo.CreateLog(ctx, entry))
	}

	logs, err := repo.ListLogs(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Message, "newest first")
	assert.Equal(t, "second", logs[1].Message)

	logs, err = repo.ListLogs(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "first", logs[0].Message)

	total, err := repo.CountLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
