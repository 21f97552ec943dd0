package assistant

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/domain"
)

func TestDecodeRequest(t *testing.T) {
	req, err := DecodeRequest(ToolCreateCampaign, json.RawMessage(`{"name":"Launch","objective":"OUTCOME_TRAFFIC"}`))
	require.NoError(t, err)
	assert.Equal(t, CreateCampaign{Name: "Launch", Objective: domain.ObjectiveTraffic}, req)

	req, err = DecodeRequest(ToolUpdateAdSet, json.RawMessage(`{"id":"s1","daily_budget":7500}`))
	require.NoError(t, err)
	upd := req.(UpdateAdSet)
	assert.Equal(t, "s1", upd.ID)
	require.NotNil(t, upd.DailyBudget)
	assert.Equal(t, int64(7500), *upd.DailyBudget)
	assert.Nil(t, upd.Name)

	req, err = DecodeRequest(ToolGetAllCampaigns, nil)
	require.NoError(t, err)
	assert.Equal(t, GetAllCampaigns{}, req)
}

func TestDecodeRequestIntegralFloats(t *testing.T) {
	req, err := DecodeRequest(ToolCreateAdSet, json.RawMessage(`{"name":"Morning","campaign_id":"c1","daily_budget":5000.0}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), req.(CreateAdSet).DailyBudget)

	req, err = DecodeRequest(ToolCreateCampaign, json.RawMessage(`{"name":"Launch","objective":"OUTCOME_LEADS","stop_time":1.7e9}`))
	require.NoError(t, err)
	stop := req.(CreateCampaign).StopTime
	require.NotNil(t, stop)
	assert.Equal(t, int64(1700000000), *stop)

	_, err = DecodeRequest(ToolCreateAdSet, json.RawMessage(`{"name":"Morning","campaign_id":"c1","daily_budget":50.5}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecodeRequestRejects(t *testing.T) {
	cases := []struct {
		name string
		tool string
		args string
		want error
	}{
		{"unknown tool", "launch_rockets", `{}`, domain.ErrUnknownTool},
		{"missing required", ToolCreateAdSet, `{"name":"a","campaign_id":"c"}`, domain.ErrValidation},
		{"null required", ToolGetCampaign, `{"id":null}`, domain.ErrValidation},
		{"bad enum", ToolCreateCampaign, `{"name":"x","objective":"OUTCOME_SALES"}`, domain.ErrValidation},
		{"non positive budget", ToolCreateAdSet, `{"name":"a","campaign_id":"c","daily_budget":0}`, domain.ErrValidation},
		{"wrong type", ToolCreateAdSet, `{"name":"a","campaign_id":"c","daily_budget":"lots"}`, domain.ErrValidation},
		{"not an object", ToolGetAd, `["id"]`, domain.ErrValidation},
		{"bad status", ToolUpdateAd, `{"id":"a","status":"ARCHIVED"}`, domain.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRequest(tc.tool, json.RawMessage(tc.args))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
