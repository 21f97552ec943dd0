package port

import (
	"context"
	"encoding/json"

	"ads-manager/internal/core/domain"
)

// CompletionRequest is a single-shot model call: a system instruction, one
// user message and the tools the model may request.
type CompletionRequest struct {
	System  string
	Message string
	Tools   []domain.Tool
}

// ToolCall is a tool invocation requested by the model. Arguments hold the
// raw JSON object produced by the model.
type ToolCall struct {
	Name      string
	Arguments json.RawMessage
}

// Completion is the model's answer. When ToolCall is set, Text is ignored.
type Completion struct {
	Text     string
	ToolCall *ToolCall
}

// LanguageModel is the outbound port to the chat-completions backend.
type LanguageModel interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}
