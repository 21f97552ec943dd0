package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/domain"
)

func TestToolsForContexts(t *testing.T) {
	for _, c := range []domain.Context{domain.ContextCampaigns, domain.ContextAdSets, domain.ContextAds} {
		tools := ToolsFor(c)
		require.Len(t, tools, 5, c)

		seen := make(map[string]bool)
		for _, tool := range tools {
			assert.False(t, seen[tool.Name], "duplicate tool %s in %s", tool.Name, c)
			seen[tool.Name] = true
			assert.NotEmpty(t, tool.Description)
		}
	}
}

func TestToolsForUnknownFallsBackToCampaigns(t *testing.T) {
	assert.Equal(t, ToolsFor(domain.ContextCampaigns), ToolsFor("unknown"))
	assert.Equal(t, ToolsFor(domain.ContextCampaigns), ToolsFor(""))
}

func TestCatalogRequiredFields(t *testing.T) {
	tool, ok := Lookup(ToolCreateAdSet)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "campaign_id", "daily_budget"}, tool.RequiredFields())

	for _, f := range tool.Fields {
		if f.Name == "daily_budget" {
			assert.Equal(t, domain.FieldInteger, f.Type)
		}
	}

	tool, ok = Lookup(ToolGetAllCampaigns)
	require.True(t, ok)
	assert.Empty(t, tool.RequiredFields())

	_, ok = Lookup("launch_rockets")
	assert.False(t, ok)
}

func TestMutationClassification(t *testing.T) {
	assert.True(t, IsCreation(ToolCreateAd))
	assert.False(t, IsCreation(ToolUpdateAd))
	assert.True(t, IsMutation(ToolDeleteCampaign))
	assert.True(t, IsMutation(ToolCreateAdSet))
	assert.False(t, IsMutation(ToolGetAllCampaigns))
	assert.False(t, IsMutation(ToolGetAd))
}
