package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/getconnects/leadrelay/internal/models"
	"github.com/getconnects/leadrelay/internal/repository/mocks"
	"github.com/getconnects/leadrelay/internal/service"
)

type leadFixture struct {
	repo      *mocks.MockRepository
	leads     *mocks.MockLeadRepository
	campaigns *mocks.MockCampaignRepository
	svc       service.LeadService
}

func newLeadFixture(t *testing.T, ctrl *gomock.Controller) *leadFixture {
	t.Helper()

	f := &leadFixture{
		repo:      mocks.NewMockRepository(ctrl),
		leads:     mocks.NewMockLeadRepository(ctrl),
		campaigns: mocks.NewMockCampaignRepository(ctrl),
	}

	f.repo.EXPECT().Lead().Return(f.leads).AnyTimes()
	f.repo.EXPECT().Campaign().Return(f.campaigns).AnyTimes()

	f.svc = service.NewLeadService(f.repo, nil, zap.NewNop())
	return f
}

func TestLeadService_CreateInTx_InheritsClientFromCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLeadFixture(t, ctrl)

	campaign := &models.Campaign{
		ID:       "camp-1",
		ClientID: sql.NullInt64{Int64: 42, Valid: true},
	}
	f.campaigns.EXPECT().FindByID(gomock.Any(), gomock.Any(), "camp-1").Return(campaign, nil)
	f.leads.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, lead *models.Lead) (int64, error) {
			lead.ID = 12
			return 12, nil
		})

	lead, err := f.svc.CreateInTx(context.Background(), nil, service.LeadInput{
		Name:       "Jane Roe",
		CampaignID: "camp-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12), lead.ID)
	require.True(t, lead.ClientID.Valid, "client must be inherited from the campaign")
	assert.Equal(t, int64(42), lead.ClientID.Int64)
	assert.Equal(t, "camp-1", lead.CampaignID.String)
}

func TestLeadService_CreateInTx_NoCampaignNoClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLeadFixture(t, ctrl)
	f.leads.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	lead, err := f.svc.CreateInTx(context.Background(), nil, service.LeadInput{Name: "Jane Roe"})
	require.NoError(t, err)

	assert.False(t, lead.ClientID.Valid)
	assert.False(t, lead.CampaignID.Valid)
}

func TestLeadService_CreateInTx_UnownedCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLeadFixture(t, ctrl)

	campaign := &models.Campaign{ID: "camp-1"}
	f.campaigns.EXPECT().FindByID(gomock.Any(), gomock.Any(), "camp-1").Return(campaign, nil)
	f.leads.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	lead, err := f.svc.CreateInTx(context.Background(), nil, service.LeadInput{CampaignID: "camp-1"})
	require.NoError(t, err)

	assert.False(t, lead.ClientID.Valid, "an unowned campaign confers no client")
	assert.Equal(t, "camp-1", lead.CampaignID.String)
}

func TestLeadService_CreateInTx_StoreRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newLeadFixture(t, ctrl)
	f.leads.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("fk violation"))

	_, err := f.svc.CreateInTx(context.Background(), nil, service.LeadInput{Name: "x"})

	var writeErr *service.DomainWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Contains(t, writeErr.Error(), "fk violation")
}
