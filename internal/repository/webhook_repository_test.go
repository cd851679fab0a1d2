package repository_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository"
)

func TestWebhookRepository_EndpointLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWebhookRepository(db)
	ctx := context.Background()

	endpoint, err := repo.CreateEndpoint(ctx, models.TargetKindLead)
	require.NoError(t, err)
	require.NotEmpty(t, endpoint.Token)
	require.NotZero(t, endpoint.ID)

	fetched, err := repo.GetEndpointByToken(ctx, endpoint.Token)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, endpoint.ID, fetched.ID)
	assert.Equal(t, models.TargetKindLead, fetched.TargetKind)
	assert.Empty(t, fetched.Mapping)

	mapping := json.RawMessage(`{"name":"data.client_name"}`)
	require.NoError(t, repo.SaveMapping(ctx, endpoint.Token, mapping))

	fetched, err = repo.GetEndpointByToken(ctx, endpoint.Token)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.JSONEq(t, string(mapping), string(fetched.Mapping))

	require.NoError(t, repo.DeleteEndpoint(ctx, endpoint.Token))

	fetched, err = repo.GetEndpointByToken(ctx, endpoint.Token)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	assert.ErrorIs(t, repo.DeleteEndpoint(ctx, endpoint.Token), sql.ErrNoRows)
	assert.ErrorIs(t, repo.SaveMapping(ctx, "no-such-token", mapping), sql.ErrNoRows)
}

func TestWebhookRepository_PayloadLog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWebhookRepository(db)
	ctx := context.Background()

	endpoint, err := repo.CreateEndpoint(ctx, models.TargetKindLead)
	require.NoError(t, err)

	for _, fp := range []string{"fp-1", "fp-2", "fp-3"} {
		require.NoError(t, repo.AppendPayload(ctx, endpoint.ID, json.RawMessage(`[{"fp":"`+fp+`"}]`), fp))
	}

	fingerprints, err := repo.RecentFingerprints(ctx, endpoint.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"fp-3", "fp-2"}, fingerprints, "newest first, bounded by limit")

	latest, err := repo.LatestPayload(ctx, endpoint.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "fp-3", latest.Fingerprint)
	assert.JSONEq(t, `[{"fp":"fp-3"}]`, string(latest.Payload))

	other, err := repo.CreateEndpoint(ctx, models.TargetKindLead)
	require.NoError(t, err)

	latest, err = repo.LatestPayload(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, latest, "payload logs are per endpoint")
}

func TestWebhookRepository_DeletePayloadsBefore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewWebhookRepository(db)
	ctx := context.Background()

	endpoint, err := repo.CreateEndpoint(ctx, models.TargetKindLead)
	require.NoError(t, err)

	old := time.Now().Add(-48 * time.Hour)
	_, err = db.Exec(
		`INSERT INTO webhook_payloads (endpoint_id, payload, fingerprint, created_at) VALUES ($1, $2, $3, $4)`,
		endpoint.ID, `[{"age":"old"}]`, "fp-old", old)
	require.NoError(t, err)

	require.NoError(t, repo.AppendPayload(ctx, endpoint.ID, json.RawMessage(`[{"age":"new"}]`), "fp-new"))

	deleted, err := repo.DeletePayloadsBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	fingerprints, err := repo.RecentFingerprints(ctx, endpoint.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"fp-new"}, fingerprints)
}
