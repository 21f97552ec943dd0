package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdSet groups ads under a campaign. DailyBudget is stored in cents.
type AdSet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CampaignID  string    `json:"campaign_id"`
	DailyBudget int64     `json:"daily_budget"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewAdSet struct {
	Name        string `json:"name"`
	CampaignID  string `json:"campaign_id"`
	DailyBudget int64  `json:"daily_budget"`
}

func (n NewAdSet) Validate() error {
	if strings.TrimSpace(n.Name) == "" || n.CampaignID == "" {
		return fmt.Errorf("%w: ad set name, campaign_id, and daily_budget are required", ErrValidation)
	}
	if n.DailyBudget <= 0 {
		return fmt.Errorf("%w: daily budget must be greater than 0", ErrValidation)
	}
	return nil
}

// AdSetPatch is a partial update. Nil fields are left untouched.
type AdSetPatch struct {
	Name        *string `json:"name,omitempty"`
	DailyBudget *int64  `json:"daily_budget,omitempty"`
}

func (p AdSetPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: ad set name must not be empty", ErrValidation)
	}
	if p.DailyBudget != nil && *p.DailyBudget <= 0 {
		return fmt.Errorf("%w: daily budget must be a positive number", ErrValidation)
	}
	return nil
}

func (p AdSetPatch) Empty() bool {
	return p.Name == nil && p.DailyBudget == nil
}
