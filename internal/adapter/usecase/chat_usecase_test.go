package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/core/assistant"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
	"ads-manager/internal/core/port/mocks"
)

type chatFixture struct {
	uc        *ChatUseCase
	llm       *mocks.MockLanguageModel
	campaigns *mocks.MockCampaignRepository
	adSets    *mocks.MockAdSetRepository
	ads       *mocks.MockAdRepository
	history   *assistant.History
}

func newChatFixture(t *testing.T) chatFixture {
	f := chatFixture{
		llm:       mocks.NewMockLanguageModel(t),
		campaigns: mocks.NewMockCampaignRepository(t),
		adSets:    mocks.NewMockAdSetRepository(t),
		ads:       mocks.NewMockAdRepository(t),
		history:   assistant.NewHistory(assistant.DefaultHistoryLimit),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := assistant.NewDispatcher(f.campaigns, f.adSets, f.ads)
	f.uc = NewChatUseCase(f.llm, d, f.history, logger, time.Second)
	return f
}

func toolCall(name, args string) *port.Completion {
	return &port.Completion{ToolCall: &port.ToolCall{Name: name, Arguments: json.RawMessage(args)}}
}

// Listing campaigns renders both names and leaves the client view alone.
func TestChat_ListCampaigns(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(r port.CompletionRequest) bool {
			return r.Message == "show me my campaigns" && len(r.Tools) == 5 && r.Tools[0].Name == assistant.ToolGetAllCampaigns
		})).
		Return(toolCall(assistant.ToolGetAllCampaigns, `{}`), nil)
	f.campaigns.EXPECT().GetAll(mock.Anything, "u1").Return([]domain.Campaign{
		{ID: "c1", Name: "Sale", Objective: domain.ObjectiveTraffic},
		{ID: "c2", Name: "Brand", Objective: domain.ObjectiveAwareness},
	}, nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{
		Message: "show me my campaigns",
		Context: domain.ContextCampaigns,
	}, "u1")

	assert.Equal(t, domain.RoleAssistant, reply.Role)
	assert.NotEmpty(t, reply.ID)
	assert.Contains(t, reply.Content, `"Sale" (TRAFFIC)`)
	assert.Contains(t, reply.Content, `"Brand" (AWARENESS)`)
	assert.False(t, reply.ShouldRefresh)
	assert.Len(t, reply.ActionResult, 2)
}

// Creating a campaign stamps the caller as owner, asks for a refresh and
// ends the conversation.
func TestChat_CreateCampaignClearsHistory(t *testing.T) {
	f := newChatFixture(t)
	f.history.Append("u1", "User: hi", "Assistant: hello")

	f.llm.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(r port.CompletionRequest) bool {
			return containsAll(r.System, "Current conversation context: User: hi\nAssistant: hello")
		})).
		Return(toolCall(assistant.ToolCreateCampaign, `{"name":"Launch","objective":"OUTCOME_TRAFFIC"}`), nil)
	f.campaigns.EXPECT().
		Create(mock.Anything, domain.NewCampaign{Name: "Launch", Objective: domain.ObjectiveTraffic, UserID: "u1"}).
		Return(&domain.Campaign{ID: "c1", Name: "Launch", Objective: domain.ObjectiveTraffic, Status: domain.StatusActive, UserID: "u1"}, nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{
		Message: "create a campaign called Launch for traffic",
		Context: domain.ContextCampaigns,
	}, "u1")

	assert.Contains(t, reply.Content, `"Launch"`)
	assert.True(t, reply.ShouldRefresh)
	require.IsType(t, &domain.Campaign{}, reply.ActionResult)
	assert.Empty(t, f.history.Entries("u1"))
}

func TestChat_ChildCreationClearsHistory(t *testing.T) {
	cases := []struct {
		name    string
		context domain.Context
		tool    string
		args    string
		expect  func(f chatFixture)
		content string
	}{
		{
			name:    "ad set",
			context: domain.ContextAdSets,
			tool:    assistant.ToolCreateAdSet,
			args:    `{"name":"Evenings","campaign_id":"c1","daily_budget":5000.0}`,
			expect: func(f chatFixture) {
				f.adSets.EXPECT().
					Create(mock.Anything, domain.NewAdSet{Name: "Evenings", CampaignID: "c1", DailyBudget: 5000}).
					Return(&domain.AdSet{ID: "s1", Name: "Evenings", CampaignID: "c1", DailyBudget: 5000}, nil)
			},
			content: "$50.00",
		},
		{
			name:    "ad",
			context: domain.ContextAds,
			tool:    assistant.ToolCreateAd,
			args:    `{"name":"Banner","adset_id":"s1","creative_id":"cr-9"}`,
			expect: func(f chatFixture) {
				f.ads.EXPECT().
					Create(mock.Anything, domain.NewAd{Name: "Banner", AdSetID: "s1", CreativeID: "cr-9"}).
					Return(&domain.Ad{ID: "a1", Name: "Banner", AdSetID: "s1", CreativeID: "cr-9", Status: domain.StatusActive}, nil)
			},
			content: `"Banner"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newChatFixture(t)
			f.history.Append("u1", "User: hi", "Assistant: hello")
			f.llm.EXPECT().Complete(mock.Anything, mock.Anything).Return(toolCall(tc.tool, tc.args), nil)
			tc.expect(f)

			reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "create it", Context: tc.context}, "u1")

			assert.Contains(t, reply.Content, tc.content)
			assert.True(t, reply.ShouldRefresh)
			assert.NotNil(t, reply.ActionResult)
			assert.Empty(t, f.history.Entries("u1"))
		})
	}
}

func TestChat_CreateCampaignWithoutCaller(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(toolCall(assistant.ToolCreateCampaign, `{"name":"Launch","objective":"OUTCOME_TRAFFIC"}`), nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "create", Context: domain.ContextCampaigns}, "")

	assert.Equal(t,
		"I apologize, but there was an error with your campaign operation: user authentication required. Please try again or check your campaign details.",
		reply.Content)
	assert.False(t, reply.ShouldRefresh)
	assert.Nil(t, reply.ActionResult)
}

func TestChat_TextReplyAppendsHistory(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(&port.Completion{Text: "What should the campaign be called?"}, nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "new campaign"}, "")

	assert.Equal(t, "What should the campaign be called?", reply.Content)
	assert.Equal(t, []string{
		"User: new campaign",
		"Assistant: What should the campaign be called?",
	}, f.history.Entries(assistant.AnonymousKey))
}

func TestChat_ModelFailure(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).Return(nil, errors.New("upstream 503"))

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "hi"}, "u1")

	assert.Equal(t, ModelFailureReply, reply.Content)
	assert.Empty(t, f.history.Entries("u1"))
}

func TestChat_ModelCallHasDeadline(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ port.CompletionRequest) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
		}).
		Return(&port.Completion{Text: "ok"}, nil)

	f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "hi"}, "")
}

func TestChat_AdSetContextPrompt(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(r port.CompletionRequest) bool {
			return containsAll(r.System, `campaign "Sale" (ID: c1)`) && r.Tools[0].Name == assistant.ToolGetAllAdSets
		})).
		Return(toolCall(assistant.ToolGetAdSet, `{"id":"missing"}`), nil)
	f.adSets.EXPECT().GetByID(mock.Anything, "missing").Return(nil, nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{
		Message:     "show the ad set",
		Context:     domain.ContextAdSets,
		ContextData: &domain.ContextData{Campaign: &domain.EntityRef{ID: "c1", Name: "Sale"}},
	}, "u1")

	assert.Equal(t, "I couldn't find that ad set. Please check the ad set ID.", reply.Content)
	assert.False(t, reply.ShouldRefresh)
}

func TestChat_InvalidArgumentsAreRendered(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(toolCall(assistant.ToolCreateAdSet, `{"name":"Evenings","campaign_id":"c1","daily_budget":-5}`), nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "x", Context: domain.ContextAdSets}, "u1")

	assert.Contains(t, reply.Content, "error with your ad set operation")
	assert.Contains(t, reply.Content, "daily budget must be greater than 0")
}

func TestChat_UnknownToolUsesGenericTemplate(t *testing.T) {
	f := newChatFixture(t)
	f.llm.EXPECT().Complete(mock.Anything, mock.Anything).Return(toolCall("launch_rockets", `{}`), nil)

	reply := f.uc.HandleMessage(context.Background(), domain.ChatRequest{Message: "x", Context: domain.ContextAds}, "u1")

	assert.Equal(t, "I apologize, but there was an error: unknown tool: launch_rockets. Please try again.", reply.Content)
}

func TestChat_ClearContext(t *testing.T) {
	f := newChatFixture(t)
	f.history.Append("u1", "User: a")
	f.history.Append("u2", "User: b")

	f.uc.ClearContext("u1")
	assert.Empty(t, f.history.Entries("u1"))
	assert.Len(t, f.history.Entries("u2"), 1)

	f.uc.ClearContext("")
	assert.Empty(t, f.history.Entries("u2"))
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
