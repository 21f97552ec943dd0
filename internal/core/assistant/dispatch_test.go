package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

type dispatchDeps struct {
	campaigns *mocks.MockCampaignRepository
	adSets    *mocks.MockAdSetRepository
	ads       *mocks.MockAdRepository
}

func newTestDispatcher(t *testing.T) (*Dispatcher, dispatchDeps) {
	deps := dispatchDeps{
		campaigns: mocks.NewMockCampaignRepository(t),
		adSets:    mocks.NewMockAdSetRepository(t),
		ads:       mocks.NewMockAdRepository(t),
	}
	return NewDispatcher(deps.campaigns, deps.adSets, deps.ads), deps
}

func TestDispatcher_CreateCampaignRequiresCaller(t *testing.T) {
	d, _ := newTestDispatcher(t)

	_, err := d.Execute(context.Background(), CreateCampaign{Name: "Launch", Objective: domain.ObjectiveTraffic}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	var te *ToolError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ToolCreateCampaign, te.Tool)
}

func TestDispatcher_CreateCampaignStampsOwner(t *testing.T) {
	d, deps := newTestDispatcher(t)
	created := &domain.Campaign{ID: "c1", Name: "Launch", Objective: domain.ObjectiveTraffic, Status: domain.StatusActive, UserID: "u1"}
	deps.campaigns.EXPECT().
		Create(mock.Anything, domain.NewCampaign{Name: "Launch", Objective: domain.ObjectiveTraffic, UserID: "u1"}).
		Return(created, nil)

	got, err := d.Execute(context.Background(), CreateCampaign{Name: "Launch", Objective: domain.ObjectiveTraffic}, "u1")

	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestDispatcher_ListCampaignsFiltersByCaller(t *testing.T) {
	d, deps := newTestDispatcher(t)
	deps.campaigns.EXPECT().GetAll(mock.Anything, "u1").Return([]domain.Campaign{{ID: "c1"}}, nil)

	got, err := d.Execute(context.Background(), GetAllCampaigns{}, "u1")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDispatcher_GetMissingIsNotAnError(t *testing.T) {
	d, deps := newTestDispatcher(t)
	deps.adSets.EXPECT().GetByID(mock.Anything, "s9").Return(nil, nil)

	got, err := d.Execute(context.Background(), GetAdSet{ID: "s9"}, "")

	require.NoError(t, err)
	set, _ := got.(*domain.AdSet)
	assert.Nil(t, set)
}

func TestDispatcher_UpdateMissing(t *testing.T) {
	d, deps := newTestDispatcher(t)
	budget := int64(100)
	patch := domain.AdSetPatch{DailyBudget: &budget}
	deps.adSets.EXPECT().Update(mock.Anything, "s9", patch).Return(nil, nil)

	_, err := d.Execute(context.Background(), UpdateAdSet{ID: "s9", AdSetPatch: patch}, "")

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	assert.Equal(t, "update_adset: ad set s9: not found", err.Error())
}

func TestDispatcher_DeleteMissing(t *testing.T) {
	d, deps := newTestDispatcher(t)
	deps.ads.EXPECT().Delete(mock.Anything, "a9").Return(false, nil)

	_, err := d.Execute(context.Background(), DeleteAd{ID: "a9"}, "")

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestDispatcher_DeleteReturnsTrue(t *testing.T) {
	d, deps := newTestDispatcher(t)
	deps.campaigns.EXPECT().Delete(mock.Anything, "c1").Return(true, nil)

	got, err := d.Execute(context.Background(), DeleteCampaign{ID: "c1"}, "u1")

	require.NoError(t, err)
	assert.Equal(t, true, got)
}

func TestDispatcher_StoreErrorPropagates(t *testing.T) {
	d, deps := newTestDispatcher(t)
	storeErr := errors.New("connection reset")
	deps.ads.EXPECT().GetByAdSetID(mock.Anything, "s1").Return(nil, storeErr)

	_, err := d.Execute(context.Background(), GetAllAds{AdSetID: "s1"}, "")

	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, "get_all_ads: connection reset", err.Error())
}
