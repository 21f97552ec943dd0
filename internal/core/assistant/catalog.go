// Package assistant holds the conversational tool layer: the per-context
// tool catalog, typed tool requests, system prompt composition, the
// bounded conversation history, tool dispatch against the entity store and
// rendering of tool outcomes into user-facing text.
package assistant

import "ads-manager/internal/core/domain"

// Tool names understood by the dispatcher.
const (
	ToolGetAllCampaigns = "get_all_campaigns"
	ToolGetCampaign     = "get_campaign"
	ToolCreateCampaign  = "create_campaign"
	ToolUpdateCampaign  = "update_campaign"
	ToolDeleteCampaign  = "delete_campaign"

	ToolGetAllAdSets = "get_all_adsets"
	ToolGetAdSet     = "get_adset"
	ToolCreateAdSet  = "create_adset"
	ToolUpdateAdSet  = "update_adset"
	ToolDeleteAdSet  = "delete_adset"

	ToolGetAllAds = "get_all_ads"
	ToolGetAd     = "get_ad"
	ToolCreateAd  = "create_ad"
	ToolUpdateAd  = "update_ad"
	ToolDeleteAd  = "delete_ad"
)

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func idField(desc string) domain.Field {
	return domain.Field{Name: "id", Type: domain.FieldString, Description: desc, Required: true}
}

var objectiveEnum = enumOf(domain.Objectives)
var statusEnum = enumOf(domain.Statuses)

var campaignTools = []domain.Tool{
	{
		Name:        ToolGetAllCampaigns,
		Description: "Get all campaigns for the authenticated user",
	},
	{
		Name:        ToolGetCampaign,
		Description: "Get a specific campaign by ID",
		Fields:      []domain.Field{idField("The campaign ID")},
	},
	{
		Name:        ToolCreateCampaign,
		Description: "Create a new ad campaign",
		Fields: []domain.Field{
			{Name: "name", Type: domain.FieldString, Description: "The name of the campaign", Required: true},
			{Name: "objective", Type: domain.FieldEnum, Enum: objectiveEnum, Description: "The campaign objective", Required: true},
			{Name: "stop_time", Type: domain.FieldInteger, Description: "Unix timestamp for when campaign should stop (optional)"},
		},
	},
	{
		Name:        ToolUpdateCampaign,
		Description: "Update an existing campaign",
		Fields: []domain.Field{
			idField("The campaign ID"),
			{Name: "name", Type: domain.FieldString, Description: "The new campaign name"},
			{Name: "objective", Type: domain.FieldEnum, Enum: objectiveEnum, Description: "The new campaign objective"},
			{Name: "status", Type: domain.FieldEnum, Enum: statusEnum, Description: "The campaign status"},
			{Name: "stop_time", Type: domain.FieldInteger, Description: "Unix timestamp for when campaign should stop"},
		},
	},
	{
		Name:        ToolDeleteCampaign,
		Description: "Delete a campaign",
		Fields:      []domain.Field{idField("The campaign ID to delete")},
	},
}

var adSetTools = []domain.Tool{
	{
		Name:        ToolGetAllAdSets,
		Description: "Get all adsets for a specific campaign",
		Fields: []domain.Field{
			{Name: "campaign_id", Type: domain.FieldString, Description: "The campaign ID to get adsets for", Required: true},
		},
	},
	{
		Name:        ToolGetAdSet,
		Description: "Get a specific adset by ID",
		Fields:      []domain.Field{idField("The adset ID")},
	},
	{
		Name:        ToolCreateAdSet,
		Description: "Create a new ad set",
		Fields: []domain.Field{
			{Name: "name", Type: domain.FieldString, Description: "The name of the ad set", Required: true},
			{Name: "campaign_id", Type: domain.FieldString, Description: "The campaign ID this ad set belongs to", Required: true},
			{Name: "daily_budget", Type: domain.FieldInteger, Description: "Daily budget in cents (e.g., 5000 for $50.00)", Required: true},
		},
	},
	{
		Name:        ToolUpdateAdSet,
		Description: "Update an existing ad set",
		Fields: []domain.Field{
			idField("The adset ID"),
			{Name: "name", Type: domain.FieldString, Description: "The new adset name"},
			{Name: "daily_budget", Type: domain.FieldInteger, Description: "New daily budget in cents"},
		},
	},
	{
		Name:        ToolDeleteAdSet,
		Description: "Delete an ad set",
		Fields:      []domain.Field{idField("The adset ID to delete")},
	},
}

var adTools = []domain.Tool{
	{
		Name:        ToolGetAllAds,
		Description: "Get all ads for a specific ad set",
		Fields: []domain.Field{
			{Name: "adset_id", Type: domain.FieldString, Description: "The ad set ID to get ads for", Required: true},
		},
	},
	{
		Name:        ToolGetAd,
		Description: "Get a specific ad by ID",
		Fields:      []domain.Field{idField("The ad ID")},
	},
	{
		Name:        ToolCreateAd,
		Description: "Create a new ad",
		Fields: []domain.Field{
			{Name: "name", Type: domain.FieldString, Description: "The name of the ad", Required: true},
			{Name: "adset_id", Type: domain.FieldString, Description: "The ad set ID this ad belongs to", Required: true},
			{Name: "creative_id", Type: domain.FieldString, Description: "The creative ID for this ad", Required: true},
			{Name: "status", Type: domain.FieldEnum, Enum: statusEnum, Description: "The ad status (defaults to ACTIVE)"},
		},
	},
	{
		Name:        ToolUpdateAd,
		Description: "Update an existing ad",
		Fields: []domain.Field{
			idField("The ad ID"),
			{Name: "name", Type: domain.FieldString, Description: "The new ad name"},
			{Name: "creative_id", Type: domain.FieldString, Description: "The new creative ID"},
			{Name: "status", Type: domain.FieldEnum, Enum: statusEnum, Description: "The ad status"},
		},
	},
	{
		Name:        ToolDeleteAd,
		Description: "Delete an ad",
		Fields:      []domain.Field{idField("The ad ID to delete")},
	},
}

// ToolsFor returns the tool descriptors for a context. Unknown contexts get
// the campaign tools. The returned slice must not be modified.
func ToolsFor(c domain.Context) []domain.Tool {
	switch c {
	case domain.ContextAdSets:
		return adSetTools
	case domain.ContextAds:
		return adTools
	default:
		return campaignTools
	}
}

// Lookup finds a tool descriptor by name across all contexts.
func Lookup(name string) (domain.Tool, bool) {
	for _, set := range [][]domain.Tool{campaignTools, adSetTools, adTools} {
		for _, t := range set {
			if t.Name == name {
				return t, true
			}
		}
	}
	return domain.Tool{}, false
}

// IsCreation reports whether the tool creates an entity. A successful
// creation ends the current conversation.
func IsCreation(name string) bool {
	switch name {
	case ToolCreateCampaign, ToolCreateAdSet, ToolCreateAd:
		return true
	}
	return false
}

// IsMutation reports whether the tool changes stored state, in which case
// clients should refresh their views.
func IsMutation(name string) bool {
	switch name {
	case ToolUpdateCampaign, ToolDeleteCampaign,
		ToolUpdateAdSet, ToolDeleteAdSet,
		ToolUpdateAd, ToolDeleteAd:
		return true
	}
	return IsCreation(name)
}
