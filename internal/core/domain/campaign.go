package domain

import (
	"fmt"
	"strings"
	"time"
)

// Objective is the optimisation goal of a campaign.
type Objective string

const (
	ObjectiveTraffic    Objective = "OUTCOME_TRAFFIC"
	ObjectiveAwareness  Objective = "OUTCOME_AWARENESS"
	ObjectiveEngagement Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveLeads      Objective = "OUTCOME_LEADS"
)

// Objectives lists every accepted objective in catalog order.
var Objectives = []Objective{ObjectiveTraffic, ObjectiveAwareness, ObjectiveEngagement, ObjectiveLeads}

// Valid reports whether o is one of the known objectives.
func (o Objective) Valid() bool {
	switch o {
	case ObjectiveTraffic, ObjectiveAwareness, ObjectiveEngagement, ObjectiveLeads:
		return true
	}
	return false
}

// Label returns the objective without its OUTCOME_ prefix, e.g. "TRAFFIC".
func (o Objective) Label() string {
	return strings.Replace(string(o), "OUTCOME_", "", 1)
}

// Status is the delivery state shared by campaigns and ads.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusPaused Status = "PAUSED"
)

// Statuses lists every accepted status.
var Statuses = []Status{StatusActive, StatusPaused}

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusPaused
}

// DefaultCampaignDuration is applied when a campaign is created without a
// stop time.
const DefaultCampaignDuration = 30 * 24 * time.Hour

// Campaign represents an advertising campaign owned by a user. StopTime is
// expressed in Unix seconds.
type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Objective Objective `json:"objective"`
	Status    Status    `json:"status"`
	StopTime  int64     `json:"stop_time"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCampaign carries the fields required to create a campaign. New
// campaigns always start ACTIVE.
type NewCampaign struct {
	Name      string    `json:"name"`
	Objective Objective `json:"objective"`
	StopTime  *int64    `json:"stop_time,omitempty"`
	UserID    string    `json:"user_id"`
}

// Validate checks required fields and enumerations.
func (n NewCampaign) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("%w: campaign name is required", ErrValidation)
	}
	if !n.Objective.Valid() {
		return fmt.Errorf("%w: invalid objective %q", ErrValidation, n.Objective)
	}
	if n.StopTime != nil && *n.StopTime <= 0 {
		return fmt.Errorf("%w: stop time must be a positive number", ErrValidation)
	}
	return nil
}

// StopTimeOr returns the requested stop time, or now plus
// DefaultCampaignDuration when none was given.
func (n NewCampaign) StopTimeOr(now time.Time) int64 {
	if n.StopTime != nil {
		return *n.StopTime
	}
	return now.Add(DefaultCampaignDuration).Unix()
}

// CampaignPatch is a partial update. Nil fields are left untouched.
type CampaignPatch struct {
	Name      *string    `json:"name,omitempty"`
	Objective *Objective `json:"objective,omitempty"`
	Status    *Status    `json:"status,omitempty"`
	StopTime  *int64     `json:"stop_time,omitempty"`
}

func (p CampaignPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: campaign name must not be empty", ErrValidation)
	}
	if p.Objective != nil && !p.Objective.Valid() {
		return fmt.Errorf("%w: invalid objective %q", ErrValidation, *p.Objective)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: status must be either ACTIVE or PAUSED", ErrValidation)
	}
	if p.StopTime != nil && *p.StopTime <= 0 {
		return fmt.Errorf("%w: stop time must be a positive number", ErrValidation)
	}
	return nil
}

// Empty reports whether the patch changes nothing.
func (p CampaignPatch) Empty() bool {
	return p.Name == nil && p.Objective == nil && p.Status == nil && p.StopTime == nil
}
