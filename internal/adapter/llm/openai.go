// Package llm adapts OpenAI-compatible chat-completions APIs to
// port.LanguageModel.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
)

var errNoChoices = errors.New("no choices in completion response")

// Client is a single-shot chat-completions client. Each call sends the
// system prompt, one user message and the tool set.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
}

func NewClient(cfg configs.LLM) *Client {
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	return &Client{
		api:       openai.NewClientWithConfig(conf),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Complete returns the first tool call of the first choice if there is
// one, otherwise the choice's text.
func (c *Client) Complete(ctx context.Context, req port.CompletionRequest) (*port.Completion, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Message},
		},
		Tools: Tools(req.Tools),
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("completion failed with status %d: %w", apiErr.HTTPStatusCode, err)
		}
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errNoChoices
	}

	msg := resp.Choices[0].Message
	for _, tc := range msg.ToolCalls {
		if tc.Type != "" && tc.Type != openai.ToolTypeFunction {
			continue
		}
		args := json.RawMessage(tc.Function.Arguments)
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}
		return &port.Completion{ToolCall: &port.ToolCall{Name: tc.Function.Name, Arguments: args}}, nil
	}
	return &port.Completion{Text: msg.Content}, nil
}

// Tools converts catalog descriptors into function tools.
func Tools(tools []domain.Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  Schema(t),
			},
		}
	}
	return out
}

// ObjectSchema is a tool's parameter schema. Properties is always
// serialized; object schemas without it are rejected upstream.
type ObjectSchema struct {
	Type       jsonschema.DataType              `json:"type"`
	Properties map[string]jsonschema.Definition `json:"properties"`
	Required   []string                         `json:"required,omitempty"`
}

// Schema renders the tool's fields as a JSON object schema.
func Schema(t domain.Tool) ObjectSchema {
	props := make(map[string]jsonschema.Definition, len(t.Fields))
	for _, f := range t.Fields {
		def := jsonschema.Definition{Description: f.Description}
		switch f.Type {
		case domain.FieldNumber:
			def.Type = jsonschema.Number
		case domain.FieldInteger:
			def.Type = jsonschema.Integer
		case domain.FieldEnum:
			def.Type = jsonschema.String
			def.Enum = f.Enum
		default:
			def.Type = jsonschema.String
		}
		props[f.Name] = def
	}
	return ObjectSchema{
		Type:       jsonschema.Object,
		Properties: props,
		Required:   t.RequiredFields(),
	}
}
