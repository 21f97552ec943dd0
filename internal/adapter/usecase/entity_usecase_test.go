package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port/mocks"
)

func newEntityUseCase(t *testing.T) (*EntityUseCase, *mocks.MockCampaignRepository, *mocks.MockAdSetRepository, *mocks.MockAdRepository) {
	campaigns := mocks.NewMockCampaignRepository(t)
	adSets := mocks.NewMockAdSetRepository(t)
	ads := mocks.NewMockAdRepository(t)
	return NewEntityUseCase(campaigns, adSets, ads), campaigns, adSets, ads
}

func TestEntity_CreateCampaign(t *testing.T) {
	uc, campaigns, _, _ := newEntityUseCase(t)

	_, err := uc.CreateCampaign(context.Background(), domain.NewCampaign{Name: "x", Objective: domain.ObjectiveLeads})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	_, err = uc.CreateCampaign(context.Background(), domain.NewCampaign{Name: "x", Objective: "OUTCOME_SALES", UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	in := domain.NewCampaign{Name: "x", Objective: domain.ObjectiveLeads, UserID: "u1"}
	campaigns.EXPECT().Create(mock.Anything, in).Return(&domain.Campaign{ID: "c1"}, nil)
	c, err := uc.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
}

func TestEntity_NotFound(t *testing.T) {
	uc, campaigns, adSets, ads := newEntityUseCase(t)
	campaigns.EXPECT().GetByID(mock.Anything, "c9").Return(nil, nil)
	adSets.EXPECT().Delete(mock.Anything, "s9").Return(false, nil)
	name := "renamed"
	ads.EXPECT().Update(mock.Anything, "a9", domain.AdPatch{Name: &name}).Return(nil, nil)

	_, err := uc.GetCampaign(context.Background(), "c9")
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)

	err = uc.DeleteAdSet(context.Background(), "s9")
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)

	_, err = uc.UpdateAd(context.Background(), "a9", domain.AdPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestEntity_ListByParent(t *testing.T) {
	uc, _, adSets, ads := newEntityUseCase(t)
	adSets.EXPECT().GetAll(mock.Anything).Return([]domain.AdSet{{ID: "s1"}, {ID: "s2"}}, nil)
	adSets.EXPECT().GetByCampaignID(mock.Anything, "c1").Return([]domain.AdSet{{ID: "s1"}}, nil)
	ads.EXPECT().GetByAdSetID(mock.Anything, "s1").Return([]domain.Ad{}, nil)

	all, err := uc.ListAdSets(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	some, err := uc.ListAdSets(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, some, 1)

	none, err := uc.ListAds(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEntity_RejectsInvalidPatch(t *testing.T) {
	uc, _, _, _ := newEntityUseCase(t)
	zero := int64(0)

	_, err := uc.UpdateAdSet(context.Background(), "s1", domain.AdSetPatch{DailyBudget: &zero})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.CreateAd(context.Background(), domain.NewAd{Name: "a", AdSetID: "s1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
