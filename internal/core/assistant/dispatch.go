package assistant

import (
	"context"
	"fmt"

	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

// ToolError tags a dispatch failure with the tool that produced it. Err is
// the unchanged underlying error.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return e.Tool + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Dispatcher executes tool requests against the entity store. It performs
// no authentication of its own: the caller id is whatever the transport
// attached to the request.
type Dispatcher struct {
	campaigns port.CampaignRepository
	adSets    port.AdSetRepository
	ads       port.AdRepository
}

func NewDispatcher(campaigns port.CampaignRepository, adSets port.AdSetRepository, ads port.AdRepository) *Dispatcher {
	return &Dispatcher{campaigns: campaigns, adSets: adSets, ads: ads}
}

// Execute runs req and returns the store's result: a slice for list tools,
// a possibly nil entity pointer for get tools, the stored entity for create
// and update tools and true for delete tools. Failures are returned as
// *ToolError; missing update or delete targets wrap
// domain.ErrEntityNotFound.
func (d *Dispatcher) Execute(ctx context.Context, req Request, callerID string) (any, error) {
	if req == nil {
		return nil, &ToolError{Tool: "", Err: domain.ErrUnknownTool}
	}
	result, err := d.execute(ctx, req, callerID)
	if err != nil {
		return nil, &ToolError{Tool: req.ToolName(), Err: err}
	}
	return result, nil
}

func (d *Dispatcher) execute(ctx context.Context, req Request, callerID string) (any, error) {
	switch r := req.(type) {
	case GetAllCampaigns:
		return d.campaigns.GetAll(ctx, callerID)
	case GetCampaign:
		return d.campaigns.GetByID(ctx, r.ID)
	case CreateCampaign:
		if callerID == "" {
			return nil, domain.ErrAuthRequired
		}
		return d.campaigns.Create(ctx, domain.NewCampaign{
			Name:      r.Name,
			Objective: r.Objective,
			StopTime:  r.StopTime,
			UserID:    callerID,
		})
	case UpdateCampaign:
		c, err := d.campaigns.Update(ctx, r.ID, r.CampaignPatch)
		return found(c, err, "campaign", r.ID)
	case DeleteCampaign:
		ok, err := d.campaigns.Delete(ctx, r.ID)
		return deleted(ok, err, "campaign", r.ID)

	case GetAllAdSets:
		return d.adSets.GetByCampaignID(ctx, r.CampaignID)
	case GetAdSet:
		return d.adSets.GetByID(ctx, r.ID)
	case CreateAdSet:
		return d.adSets.Create(ctx, r.NewAdSet)
	case UpdateAdSet:
		s, err := d.adSets.Update(ctx, r.ID, r.AdSetPatch)
		return found(s, err, "ad set", r.ID)
	case DeleteAdSet:
		ok, err := d.adSets.Delete(ctx, r.ID)
		return deleted(ok, err, "ad set", r.ID)

	case GetAllAds:
		return d.ads.GetByAdSetID(ctx, r.AdSetID)
	case GetAd:
		return d.ads.GetByID(ctx, r.ID)
	case CreateAd:
		return d.ads.Create(ctx, r.NewAd)
	case UpdateAd:
		a, err := d.ads.Update(ctx, r.ID, r.AdPatch)
		return found(a, err, "ad", r.ID)
	case DeleteAd:
		ok, err := d.ads.Delete(ctx, r.ID)
		return deleted(ok, err, "ad", r.ID)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, req.ToolName())
}

func found[T any](v *T, err error, kind, id string) (any, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrEntityNotFound)
	}
	return v, nil
}

func deleted(ok bool, err error, kind, id string) (any, error) {
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrEntityNotFound)
	}
	return true, nil
}
