package port

import (
	"context"

	"ads-manager/internal/core/domain"
)

// ChatUseCase runs one conversational turn. HandleMessage never fails:
// every failure is expressed in the reply content.
type ChatUseCase interface {
	HandleMessage(ctx context.Context, req domain.ChatRequest, callerID string) domain.ChatReply
	// ClearContext forgets the caller's history, or every caller's history
	// when callerID is empty.
	ClearContext(callerID string)
}

// EntityUseCase exposes validated CRUD over the campaign hierarchy. Missing
// targets are reported as domain.ErrEntityNotFound and invalid input as
// domain.ErrValidation.
type EntityUseCase interface {
	ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.NewCampaign) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error

	// ListAdSets returns every ad set, or only those of campaignID when it
	// is non-empty.
	ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error)
	GetAdSet(ctx context.Context, id string) (*domain.AdSet, error)
	CreateAdSet(ctx context.Context, s domain.NewAdSet) (*domain.AdSet, error)
	UpdateAdSet(ctx context.Context, id string, patch domain.AdSetPatch) (*domain.AdSet, error)
	DeleteAdSet(ctx context.Context, id string) error

	// ListAds returns every ad, or only those of adSetID when it is
	// non-empty.
	ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error)
	GetAd(ctx context.Context, id string) (*domain.Ad, error)
	CreateAd(ctx context.Context, a domain.NewAd) (*domain.Ad, error)
	UpdateAd(ctx context.Context, id string, patch domain.AdPatch) (*domain.Ad, error)
	DeleteAd(ctx context.Context, id string) error
}

// AuthUseCase manages accounts and access tokens.
type AuthUseCase interface {
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResult, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// Refresh issues a new token for an already authenticated user.
	Refresh(ctx context.Context, userID string) (string, error)
	// Authenticate verifies a bearer token and returns the user id it
	// carries.
	Authenticate(token string) (string, error)
}
