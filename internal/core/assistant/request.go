package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"ads-manager/internal/core/domain"
)

// Request is a decoded, validated tool invocation. The set of
// implementations is closed: one struct per catalog tool.
type Request interface {
	ToolName() string
	validate() error
}

type GetAllCampaigns struct{}

type GetCampaign struct {
	ID string `json:"id"`
}

type CreateCampaign struct {
	Name      string           `json:"name"`
	Objective domain.Objective `json:"objective"`
	StopTime  *int64           `json:"stop_time,omitempty"`
}

type UpdateCampaign struct {
	ID string `json:"id"`
	domain.CampaignPatch
}

type DeleteCampaign struct {
	ID string `json:"id"`
}

type GetAllAdSets struct {
	CampaignID string `json:"campaign_id"`
}

type GetAdSet struct {
	ID string `json:"id"`
}

type CreateAdSet struct {
	domain.NewAdSet
}

type UpdateAdSet struct {
	ID string `json:"id"`
	domain.AdSetPatch
}

type DeleteAdSet struct {
	ID string `json:"id"`
}

type GetAllAds struct {
	AdSetID string `json:"adset_id"`
}

type GetAd struct {
	ID string `json:"id"`
}

type CreateAd struct {
	domain.NewAd
}

type UpdateAd struct {
	ID string `json:"id"`
	domain.AdPatch
}

type DeleteAd struct {
	ID string `json:"id"`
}

func (GetAllCampaigns) ToolName() string { return ToolGetAllCampaigns }
func (GetCampaign) ToolName() string     { return ToolGetCampaign }
func (CreateCampaign) ToolName() string  { return ToolCreateCampaign }
func (UpdateCampaign) ToolName() string  { return ToolUpdateCampaign }
func (DeleteCampaign) ToolName() string  { return ToolDeleteCampaign }
func (GetAllAdSets) ToolName() string    { return ToolGetAllAdSets }
func (GetAdSet) ToolName() string        { return ToolGetAdSet }
func (CreateAdSet) ToolName() string     { return ToolCreateAdSet }
func (UpdateAdSet) ToolName() string     { return ToolUpdateAdSet }
func (DeleteAdSet) ToolName() string     { return ToolDeleteAdSet }
func (GetAllAds) ToolName() string       { return ToolGetAllAds }
func (GetAd) ToolName() string           { return ToolGetAd }
func (CreateAd) ToolName() string        { return ToolCreateAd }
func (UpdateAd) ToolName() string        { return ToolUpdateAd }
func (DeleteAd) ToolName() string        { return ToolDeleteAd }

func (GetAllCampaigns) validate() error { return nil }
func (r GetCampaign) validate() error   { return requireID(r.ID) }
func (r DeleteCampaign) validate() error {
	return requireID(r.ID)
}

func (r CreateCampaign) validate() error {
	return domain.NewCampaign{Name: r.Name, Objective: r.Objective, StopTime: r.StopTime}.Validate()
}

func (r UpdateCampaign) validate() error {
	if err := requireID(r.ID); err != nil {
		return err
	}
	return r.CampaignPatch.Validate()
}

func (r GetAllAdSets) validate() error {
	if r.CampaignID == "" {
		return fmt.Errorf("%w: campaign_id is required", domain.ErrValidation)
	}
	return nil
}

func (r GetAdSet) validate() error    { return requireID(r.ID) }
func (r CreateAdSet) validate() error { return r.NewAdSet.Validate() }
func (r DeleteAdSet) validate() error { return requireID(r.ID) }

func (r UpdateAdSet) validate() error {
	if err := requireID(r.ID); err != nil {
		return err
	}
	return r.AdSetPatch.Validate()
}

func (r GetAllAds) validate() error {
	if r.AdSetID == "" {
		return fmt.Errorf("%w: adset_id is required", domain.ErrValidation)
	}
	return nil
}

func (r GetAd) validate() error    { return requireID(r.ID) }
func (r CreateAd) validate() error { return r.NewAd.Validate() }
func (r DeleteAd) validate() error { return requireID(r.ID) }

func (r UpdateAd) validate() error {
	if err := requireID(r.ID); err != nil {
		return err
	}
	return r.AdPatch.Validate()
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	return nil
}

// DecodeRequest turns a model tool call into a typed Request. The raw
// arguments are checked against the catalog's required fields first, then
// decoded and validated. Unknown names fail with domain.ErrUnknownTool and
// malformed arguments with domain.ErrValidation.
func DecodeRequest(name string, args json.RawMessage) (Request, error) {
	tool, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
	}

	if len(bytes.TrimSpace(args)) == 0 {
		args = json.RawMessage("{}")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(args, &fields); err != nil {
		return nil, fmt.Errorf("%w: arguments for %s must be a JSON object", domain.ErrValidation, name)
	}
	for _, f := range tool.RequiredFields() {
		v, ok := fields[f]
		if !ok || string(v) == "null" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, f)
		}
	}
	if normalizeIntegers(tool, fields) {
		args, _ = json.Marshal(fields)
	}

	switch name {
	case ToolGetAllCampaigns:
		return decode[GetAllCampaigns](args)
	case ToolGetCampaign:
		return decode[GetCampaign](args)
	case ToolCreateCampaign:
		return decode[CreateCampaign](args)
	case ToolUpdateCampaign:
		return decode[UpdateCampaign](args)
	case ToolDeleteCampaign:
		return decode[DeleteCampaign](args)
	case ToolGetAllAdSets:
		return decode[GetAllAdSets](args)
	case ToolGetAdSet:
		return decode[GetAdSet](args)
	case ToolCreateAdSet:
		return decode[CreateAdSet](args)
	case ToolUpdateAdSet:
		return decode[UpdateAdSet](args)
	case ToolDeleteAdSet:
		return decode[DeleteAdSet](args)
	case ToolGetAllAds:
		return decode[GetAllAds](args)
	case ToolGetAd:
		return decode[GetAd](args)
	case ToolCreateAd:
		return decode[CreateAd](args)
	case ToolUpdateAd:
		return decode[UpdateAd](args)
	case ToolDeleteAd:
		return decode[DeleteAd](args)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, name)
}

// normalizeIntegers rewrites integral floats such as 5000.0 in integer
// fields as plain integers. It reports whether anything changed.
func normalizeIntegers(tool domain.Tool, fields map[string]json.RawMessage) bool {
	changed := false
	for _, f := range tool.Fields {
		if f.Type != domain.FieldInteger {
			continue
		}
		v, ok := fields[f.Name]
		if !ok || !bytes.ContainsAny(v, ".eE") {
			continue
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			continue
		}
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			continue
		}
		fields[f.Name] = json.RawMessage(strconv.FormatInt(int64(n), 10))
		changed = true
	}
	return changed
}

func decode[T Request](args json.RawMessage) (Request, error) {
	var r T
	if err := json.Unmarshal(args, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrValidation, r.ToolName(), err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}
