package domain

import "time"

// Context is the domain scope of a chat turn. It selects the tool set and
// prompt template. Values outside the three known scopes are kept as-is so
// that prompt and error rendering can fall back to their generic forms.
type Context string

const (
	ContextCampaigns Context = "campaigns"
	ContextAdSets    Context = "adsets"
	ContextAds       Context = "ads"
)

// EntityRef identifies the parent entity the user is currently viewing.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ContextData is optional data the client attaches to a chat turn.
type ContextData struct {
	Campaign *EntityRef `json:"campaign,omitempty"`
	AdSet    *EntityRef `json:"adset,omitempty"`
}

// ChatRequest is an inbound chat message. An empty Context is treated as
// ContextCampaigns.
type ChatRequest struct {
	Message     string       `json:"message"`
	Context     Context      `json:"context,omitempty"`
	ContextData *ContextData `json:"contextData,omitempty"`
}

// ChatReply is the envelope returned for every chat turn, including turns
// whose tool call or model call failed.
type ChatReply struct {
	ID            string    `json:"id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	ActionResult  any       `json:"actionResult,omitempty"`
	ShouldRefresh bool      `json:"shouldRefresh,omitempty"`
}

const RoleAssistant = "assistant"
