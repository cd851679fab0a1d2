package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/config"
	"github.com/getconnects/leadrelay/internal/mapping"
	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository/mocks"
	"github.com/getconnects/leadrelay/internal/service"
)

func webhookTestConfig() *config.Config {
	return &config.Config{
		Webhook: config.WebhookConfig{DedupWindow: 20},
	}
}

type webhookFixture struct {
	repo     *mocks.MockRepository
	webhooks *mocks.MockWebhookRepository
	svc      service.WebhookService
}

func newWebhookFixture(t *testing.T, ctrl *gomock.Controller) *webhookFixture {
	t.Helper()

	f := &webhookFixture{
		repo:     mocks.NewMockRepository(ctrl),
		webhooks: mocks.NewMockWebhookRepository(ctrl),
	}

	f.repo.EXPECT().Webhook().Return(f.webhooks).AnyTimes()

	f.svc = service.NewWebhookService(webhookTestConfig(), f.repo, nil, nil, nil, zap.NewNop())
	return f
}

func leadEndpoint() *models.WebhookEndpoint {
	return &models.WebhookEndpoint{
		ID:         3,
		Token:      "tok-1",
		TargetKind: models.TargetKindLead,
	}
}

func TestWebhookService_Ingest_UnknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)
	f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "missing").Return(nil, nil)

	err := f.svc.Ingest(context.Background(), "missing", []byte(`{}`))
	assert.ErrorIs(t, err, service.ErrEndpointNotFound)
}

func TestWebhookService_Ingest_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{`},
		{name: "scalar", body: `42`},
		{name: "string", body: `"hello"`},
		{name: "array with non-object element", body: `[{"a": 1}, 5]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newWebhookFixture(t, ctrl)
			f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "tok-1").Return(leadEndpoint(), nil)

			err := f.svc.Ingest(context.Background(), "tok-1", []byte(tt.body))
			assert.ErrorIs(t, err, service.ErrInvalidPayload)
		})
	}
}

func TestWebhookService_Ingest_DuplicateAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)
	f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "tok-1").Return(leadEndpoint(), nil)

	records := []map[string]interface{}{{"a": float64(1)}}
	fp, err := mapping.Fingerprint(records)
	require.NoError(t, err)

	f.webhooks.EXPECT().
		RecentFingerprints(gomock.Any(), int64(3), 20).
		Return([]string{"other", fp}, nil)

	// A duplicate delivery is acknowledged without touching the payload log
	// or opening a transaction.
	err = f.svc.Ingest(context.Background(), "tok-1", []byte(`{"a": 1}`))
	assert.NoError(t, err)
}

func TestWebhookService_Ingest_ObjectAndArrayShareFingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)
	f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "tok-1").Return(leadEndpoint(), nil)

	// The single-object form normalizes to a one-element list, so it must
	// collide with a prior delivery of the list form.
	listForm := []map[string]interface{}{{"name": "Jane"}}
	fp, err := mapping.Fingerprint(listForm)
	require.NoError(t, err)

	f.webhooks.EXPECT().
		RecentFingerprints(gomock.Any(), int64(3), 20).
		Return([]string{fp}, nil)

	err = f.svc.Ingest(context.Background(), "tok-1", []byte(`{"name": "Jane"}`))
	assert.NoError(t, err)
}

func TestWebhookService_LatestPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)
	f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "tok-1").Return(leadEndpoint(), nil).Times(2)

	stored := &models.WebhookPayload{
		ID:         9,
		EndpointID: 3,
		Payload:    json.RawMessage(`[{"name":"Jane"}]`),
	}
	f.webhooks.EXPECT().LatestPayload(gomock.Any(), int64(3)).Return(stored, nil)

	payload, err := f.svc.LatestPayload(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Jane"}]`, string(payload))

	f.webhooks.EXPECT().LatestPayload(gomock.Any(), int64(3)).Return(nil, nil)

	payload, err = f.svc.LatestPayload(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(payload))
}

func TestWebhookService_GetMapping_EmptyObjectWhenUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)
	f.webhooks.EXPECT().GetEndpointByToken(gomock.Any(), "tok-1").Return(leadEndpoint(), nil)

	raw, err := f.svc.GetMapping(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestWebhookService_SaveMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)

	var stored json.RawMessage
	f.webhooks.EXPECT().
		SaveMapping(gomock.Any(), "tok-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, raw json.RawMessage) error {
			stored = raw
			return nil
		})

	err := f.svc.SaveMapping(context.Background(), "tok-1", json.RawMessage(`{"name": "data.client_name"}`))
	require.NoError(t, err)

	var m mapping.FieldMapping
	require.NoError(t, json.Unmarshal(stored, &m))
	require.Len(t, m, 1)
	assert.Equal(t, mapping.Entry{Field: "name", Path: "data.client_name"}, m[0])
}

func TestWebhookService_SaveMapping_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newWebhookFixture(t, ctrl)

	err := f.svc.SaveMapping(context.Background(), "tok-1", json.RawMessage(`["not", "an", "object"]`))
	assert.ErrorIs(t, err, service.ErrInvalidMapping)
}
