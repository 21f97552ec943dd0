package domain

import (
	"fmt"
	"strings"
	"time"
)

// Ad is a single creative placement inside an ad set.
type Ad struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AdSetID    string    `json:"adset_id"`
	CreativeID string    `json:"creative_id"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewAd carries the fields required to create an ad. An empty Status is
// stored as ACTIVE.
type NewAd struct {
	Name       string `json:"name"`
	AdSetID    string `json:"adset_id"`
	CreativeID string `json:"creative_id"`
	Status     Status `json:"status,omitempty"`
}

func (n NewAd) Validate() error {
	if strings.TrimSpace(n.Name) == "" || n.AdSetID == "" || n.CreativeID == "" {
		return fmt.Errorf("%w: ad name, adset_id, and creative_id are required", ErrValidation)
	}
	if n.Status != "" && !n.Status.Valid() {
		return fmt.Errorf("%w: status must be either ACTIVE or PAUSED", ErrValidation)
	}
	return nil
}

// StatusOrDefault returns the requested status or ACTIVE.
func (n NewAd) StatusOrDefault() Status {
	if n.Status == "" {
		return StatusActive
	}
	return n.Status
}

// AdPatch is a partial update. Nil fields are left untouched.
type AdPatch struct {
	Name       *string `json:"name,omitempty"`
	CreativeID *string `json:"creative_id,omitempty"`
	Status     *Status `json:"status,omitempty"`
}

func (p AdPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: ad name must not be empty", ErrValidation)
	}
	if p.CreativeID != nil && *p.CreativeID == "" {
		return fmt.Errorf("%w: creative_id must not be empty", ErrValidation)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: status must be either ACTIVE or PAUSED", ErrValidation)
	}
	return nil
}

func (p AdPatch) Empty() bool {
	return p.Name == nil && p.CreativeID == nil && p.Status == nil
}
