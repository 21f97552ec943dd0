package assistant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"ads-manager/internal/core/domain"
)

func TestRenderCampaignList(t *testing.T) {
	assert.Equal(t,
		"You don't have any campaigns yet. Would you like me to help you create your first campaign?",
		Render(ToolGetAllCampaigns, []domain.Campaign{}, domain.ContextCampaigns))

	out := Render(ToolGetAllCampaigns, []domain.Campaign{{Name: "Sale", Objective: domain.ObjectiveTraffic}}, domain.ContextCampaigns)
	assert.Contains(t, out, `"Sale"`)
	assert.Contains(t, out, "TRAFFIC")
	assert.NotContains(t, out, "OUTCOME_")
	assert.Contains(t, out, "1 campaign.")
}

func TestRenderMissingDetail(t *testing.T) {
	assert.Equal(t, "I couldn't find that ad set. Please check the ad set ID.", Render(ToolGetAdSet, nil, domain.ContextAdSets))
	var missing *domain.Campaign
	assert.Equal(t, "I couldn't find that campaign. Please check the campaign ID.", Render(ToolGetCampaign, missing, domain.ContextCampaigns))
	assert.Equal(t, "I couldn't find that ad. Please check the ad ID.", Render(ToolGetAd, nil, domain.ContextAds))
}

func TestRenderCurrency(t *testing.T) {
	set := &domain.AdSet{Name: "Evenings", DailyBudget: 5000}
	assert.Contains(t, Render(ToolGetAdSet, set, domain.ContextAdSets), "$50.00")
	assert.Contains(t, Render(ToolCreateAdSet, set, domain.ContextAdSets), "$50.00")
	assert.Contains(t, Render(ToolGetAllAdSets, []domain.AdSet{*set}, domain.ContextAdSets), `"Evenings" ($50.00/day)`)

	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$1234.56", FormatCents(123456))
}

func TestRenderCreatedAndUnknown(t *testing.T) {
	c := &domain.Campaign{Name: "Launch", Objective: domain.ObjectiveLeads, Status: domain.StatusActive}
	out := Render(ToolCreateCampaign, c, domain.ContextCampaigns)
	assert.Contains(t, out, `"Launch"`)
	assert.Contains(t, out, "objective LEADS")
	assert.Contains(t, out, "now active")

	ad := &domain.Ad{Name: "Hero", CreativeID: "cr-1", Status: domain.StatusPaused}
	assert.Contains(t, Render(ToolCreateAd, ad, domain.ContextAds), "The ad is paused")
	assert.Equal(t, "Operation completed successfully.", Render("reticulate_splines", nil, domain.ContextAds))
}

func TestRenderError(t *testing.T) {
	err := &ToolError{Tool: ToolCreateAdSet, Err: errors.New("insert failed")}
	assert.Equal(t,
		"I apologize, but there was an error with your ad set operation: insert failed. Please try again or check your ad set details.",
		RenderError(ToolCreateAdSet, domain.ContextAdSets, err))

	out := RenderError(ToolCreateCampaign, domain.ContextCampaigns, &ToolError{Tool: ToolCreateCampaign, Err: domain.ErrAuthRequired})
	assert.Contains(t, out, "campaign operation: user authentication required.")

	out = RenderError("nope", domain.ContextAds, domain.ErrUnknownTool)
	assert.Equal(t, "I apologize, but there was an error: unknown tool. Please try again.", out)

	out = RenderError(ToolGetAd, "other", errors.New("boom"))
	assert.Equal(t, "I apologize, but there was an error: boom. Please try again.", out)
}
