package assistant

import (
	"fmt"
	"strings"

	"ads-manager/internal/core/domain"
)

// historySeparator introduces prior turns in the system prompt.
const historySeparator = "\n\nCurrent conversation context: "

const campaignPrompt = `You are an AI assistant helping users manage Facebook ad campaigns.

Your goal is to help users:
1. View and manage existing campaigns
2. Create new campaigns (ask for name, objective: OUTCOME_TRAFFIC, OUTCOME_AWARENESS, OUTCOME_ENGAGEMENT, or OUTCOME_LEADS)
3. Update campaign settings (name, objective, status, stop_time)
4. Delete campaigns when requested

Be conversational and helpful. When users want to create campaigns, ask for the required information one step at a time.
Use the available tools to retrieve, create, update, or delete campaigns as needed.`

const adSetPrompt = `You are an AI assistant helping users manage ad sets within Facebook campaigns.%s

Your goal is to help users:
1. View and manage existing ad sets
2. Create new ad sets (ask for name, daily budget in cents - e.g., 5000 for $50.00)
3. Update ad set settings (name, daily budget)
4. Delete ad sets when requested

Be conversational and helpful. When creating ad sets, explain that the daily budget should be in cents.
Use the available tools to retrieve, create, update, or delete ad sets as needed.`

const adPrompt = `You are an AI assistant helping users manage ads within Facebook ad sets.%s

Your goal is to help users:
1. View and manage existing ads
2. Create new ads (ask for name, creative ID, and status: ACTIVE or PAUSED)
3. Update ad settings (name, creative ID, status)
4. Delete ads when requested

Be conversational and helpful. When creating ads, ask for a creative ID (this would typically be from their media library).
Use the available tools to retrieve, create, update, or delete ads as needed.`

const defaultPrompt = `You are an AI assistant helping users manage Facebook advertising campaigns, ad sets, and ads.`

// SystemPrompt builds the system instruction for a chat turn. Parent
// entities from data are named explicitly for the ad set and ad contexts,
// and history is appended verbatim.
func SystemPrompt(c domain.Context, data *domain.ContextData, history []string) string {
	var b strings.Builder

	switch c {
	case domain.ContextCampaigns:
		b.WriteString(campaignPrompt)
	case domain.ContextAdSets:
		var parent string
		if data != nil && data.Campaign != nil {
			parent = fmt.Sprintf("\n\nYou are currently helping with ad sets for the campaign \"%s\" (ID: %s).", data.Campaign.Name, data.Campaign.ID)
		}
		fmt.Fprintf(&b, adSetPrompt, parent)
	case domain.ContextAds:
		var parent string
		if data != nil && data.AdSet != nil {
			parent = fmt.Sprintf("\n\nYou are currently helping with ads for the ad set \"%s\" (ID: %s).", data.AdSet.Name, data.AdSet.ID)
		}
		fmt.Fprintf(&b, adPrompt, parent)
	default:
		b.WriteString(defaultPrompt)
	}

	if len(history) > 0 {
		b.WriteString(historySeparator)
		b.WriteString(strings.Join(history, "\n"))
	}
	return b.String()
}
