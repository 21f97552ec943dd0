package usecase

import (
	"context"
	"fmt"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// EntityUseCase implements port.EntityUseCase on top of the repositories.
// It validates input and turns nil repository results into
// domain.ErrEntityNotFound.
type EntityUseCase struct {
	campaigns port.CampaignRepository
	adSets    port.AdSetRepository
	ads       port.AdRepository
}

func NewEntityUseCase(campaigns port.CampaignRepository, adSets port.AdSetRepository, ads port.AdRepository) *EntityUseCase {
	return &EntityUseCase{campaigns: campaigns, adSets: adSets, ads: ads}
}

func (u *EntityUseCase) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return u.campaigns.GetAll(ctx, ownerID)
}

func (u *EntityUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.campaigns.GetByID(ctx, id)
	return orNotFound(c, err, "campaign")
}

// CreateCampaign requires c.UserID to be set by the caller.
func (u *EntityUseCase) CreateCampaign(ctx context.Context, c domain.NewCampaign) (*domain.Campaign, error) {
	if c.UserID == "" {
		return nil, domain.ErrAuthRequired
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return u.campaigns.Create(ctx, c)
}

func (u *EntityUseCase) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	c, err := u.campaigns.Update(ctx, id, patch)
	return orNotFound(c, err, "campaign")
}

func (u *EntityUseCase) DeleteCampaign(ctx context.Context, id string) error {
	ok, err := u.campaigns.Delete(ctx, id)
	return deleteResult(ok, err, "campaign")
}

func (u *EntityUseCase) ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
	if campaignID == "" {
		return u.adSets.GetAll(ctx)
	}
	return u.adSets.GetByCampaignID(ctx, campaignID)
}

func (u *EntityUseCase) GetAdSet(ctx context.Context, id string) (*domain.AdSet, error) {
	s, err := u.adSets.GetByID(ctx, id)
	return orNotFound(s, err, "ad set")
}

func (u *EntityUseCase) CreateAdSet(ctx context.Context, s domain.NewAdSet) (*domain.AdSet, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return u.adSets.Create(ctx, s)
}

func (u *EntityUseCase) UpdateAdSet(ctx context.Context, id string, patch domain.AdSetPatch) (*domain.AdSet, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	s, err := u.adSets.Update(ctx, id, patch)
	return orNotFound(s, err, "ad set")
}

func (u *EntityUseCase) DeleteAdSet(ctx context.Context, id string) error {
	ok, err := u.adSets.Delete(ctx, id)
	return deleteResult(ok, err, "ad set")
}

func (u *EntityUseCase) ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error) {
	if adSetID == "" {
		return u.ads.GetAll(ctx)
	}
	return u.ads.GetByAdSetID(ctx, adSetID)
}

func (u *EntityUseCase) GetAd(ctx context.Context, id string) (*domain.Ad, error) {
	a, err := u.ads.GetByID(ctx, id)
	return orNotFound(a, err, "ad")
}

func (u *EntityUseCase) CreateAd(ctx context.Context, a domain.NewAd) (*domain.Ad, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return u.ads.Create(ctx, a)
}

func (u *EntityUseCase) UpdateAd(ctx context.Context, id string, patch domain.AdPatch) (*domain.Ad, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	a, err := u.ads.Update(ctx, id, patch)
	return orNotFound(a, err, "ad")
}

func (u *EntityUseCase) DeleteAd(ctx context.Context, id string) error {
	ok, err := u.ads.Delete(ctx, id)
	return deleteResult(ok, err, "ad")
}

func orNotFound[T any](v *T, err error, kind string) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s %w", kind, domain.ErrEntityNotFound)
	}
	return v, nil
}

func deleteResult(ok bool, err error, kind string) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %w", kind, domain.ErrEntityNotFound)
	}
	return nil
}
