package port

import (
	"context"

	"ads-manager/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence.
// Lookups and updates return a nil entity with a nil error when the target
// does not exist; Delete reports whether a row was removed.
type CampaignRepository interface {
	// GetAll returns campaigns newest first. A non-empty ownerID restricts
	// the result to that user's campaigns.
	GetAll(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// Create stores a new ACTIVE campaign, defaulting the stop time.
	Create(ctx context.Context, c domain.NewCampaign) (*domain.Campaign, error)
	Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	// Delete removes the campaign together with its ad sets and ads.
	Delete(ctx context.Context, id string) (bool, error)
}

// AdSetRepository is the outbound port for ad set persistence. Same
// not-found conventions as CampaignRepository.
type AdSetRepository interface {
	GetAll(ctx context.Context) ([]domain.AdSet, error)
	GetByCampaignID(ctx context.Context, campaignID string) ([]domain.AdSet, error)
	GetByID(ctx context.Context, id string) (*domain.AdSet, error)
	Create(ctx context.Context, s domain.NewAdSet) (*domain.AdSet, error)
	Update(ctx context.Context, id string, patch domain.AdSetPatch) (*domain.AdSet, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AdRepository is the outbound port for ad persistence. Same not-found
// conventions as CampaignRepository.
type AdRepository interface {
	GetAll(ctx context.Context) ([]domain.Ad, error)
	GetByAdSetID(ctx context.Context, adSetID string) ([]domain.Ad, error)
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
	Create(ctx context.Context, a domain.NewAd) (*domain.Ad, error)
	Update(ctx context.Context, id string, patch domain.AdPatch) (*domain.Ad, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UserRepository persists accounts. GetByEmail returns the stored
// password hash alongside the user; both lookups return nil when absent.
// Create fails with domain.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
