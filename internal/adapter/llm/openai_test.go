package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/assistant"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

func TestSchema(t *testing.T) {
	tool := domain.Tool{
		Name: "create_adset",
		Fields: []domain.Field{
			{Name: "name", Type: domain.FieldString, Required: true},
			{Name: "daily_budget", Type: domain.FieldInteger, Required: true},
			{Name: "ratio", Type: domain.FieldNumber},
			{Name: "status", Type: domain.FieldEnum, Enum: []string{"ACTIVE", "PAUSED"}},
		},
	}

	s := Schema(tool)

	assert.Equal(t, jsonschema.Object, s.Type)
	assert.Equal(t, []string{"name", "daily_budget"}, s.Required)
	assert.Equal(t, jsonschema.Integer, s.Properties["daily_budget"].Type)
	assert.Equal(t, jsonschema.Number, s.Properties["ratio"].Type)
	assert.Equal(t, []string{"ACTIVE", "PAUSED"}, s.Properties["status"].Enum)

	tools := Tools([]domain.Tool{{Name: "get_all_campaigns"}})
	require.Len(t, tools, 1)
	raw, err := json.Marshal(tools[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"parameters":{"type":"object","properties":{}}`)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(configs.LLM{APIKey: "test", BaseURL: srv.URL + "/v1", Model: "test-model", MaxTokens: 100})
}

func writeCompletion(t *testing.T, w http.ResponseWriter, msg openai.ChatCompletionMessage) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
		ID:      "cmpl-1",
		Object:  "chat.completion",
		Model:   "test-model",
		Choices: []openai.ChatCompletionChoice{{Index: 0, Message: msg}},
	})
	require.NoError(t, err)
}

func TestComplete_ToolCall(t *testing.T) {
	var got openai.ChatCompletionRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeCompletion(t, w, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:   "call_1",
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      "get_campaign",
					Arguments: `{"id":"c1"}`,
				},
			}},
		})
	})

	out, err := c.Complete(context.Background(), port.CompletionRequest{
		System:  "be helpful",
		Message: "show c1",
		Tools:   []domain.Tool{{Name: "get_campaign", Fields: []domain.Field{{Name: "id", Type: domain.FieldString, Required: true}}}},
	})

	require.NoError(t, err)
	require.NotNil(t, out.ToolCall)
	assert.Equal(t, "get_campaign", out.ToolCall.Name)
	assert.JSONEq(t, `{"id":"c1"}`, string(out.ToolCall.Arguments))

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "show c1", got.Messages[1].Content)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "get_campaign", got.Tools[0].Function.Name)
}

func TestComplete_SendsPropertiesForEveryTool(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeCompletion(t, w, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "ok"})
	})

	_, err := c.Complete(context.Background(), port.CompletionRequest{
		Message: "list my campaigns",
		Tools:   assistant.ToolsFor(domain.ContextCampaigns),
	})
	require.NoError(t, err)

	tools, ok := body["tools"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, tools)
	for _, raw := range tools {
		fn := raw.(map[string]any)["function"].(map[string]any)
		params := fn["parameters"].(map[string]any)
		assert.Contains(t, params, "properties", fn["name"])
	}
}

func TestComplete_Text(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeCompletion(t, w, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Which objective?"})
	})

	out, err := c.Complete(context.Background(), port.CompletionRequest{Message: "new campaign"})

	require.NoError(t, err)
	assert.Nil(t, out.ToolCall)
	assert.Equal(t, "Which objective?", out.Text)
}

func TestComplete_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	_, err := c.Complete(context.Background(), port.CompletionRequest{Message: "hi"})

	require.Error(t, err)
	var apiErr *openai.APIError
	assert.ErrorAs(t, err, &apiErr)
}
