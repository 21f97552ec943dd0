package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ads-manager/internal/core/assistant"
	"ads-manager/internal/core/domain"
	"ads-manager/internal/core/port"
	"ads-manager/internal/metrics"
)

// ModelFailureReply is returned when the model call itself fails.
const ModelFailureReply = "I apologize, but I encountered an error. Please try again or contact support if the issue persists."

// ChatUseCase runs the assistant pipeline for one chat turn: compose the
// prompt, call the model, then either dispatch the requested tool and
// render its result or record the plain text answer in the history.
type ChatUseCase struct {
	llm        port.LanguageModel
	dispatcher *assistant.Dispatcher
	history    *assistant.History
	logger     *slog.Logger

	// timeout bounds a single model call. Zero leaves the request
	// context untouched.
	timeout time.Duration
	now     func() time.Time
}

func NewChatUseCase(llm port.LanguageModel, dispatcher *assistant.Dispatcher, history *assistant.History, logger *slog.Logger, timeout time.Duration) *ChatUseCase {
	return &ChatUseCase{
		llm:        llm,
		dispatcher: dispatcher,
		history:    history,
		logger:     logger,
		timeout:    timeout,
		now:        time.Now,
	}
}

// HandleMessage never returns an error. Tool failures are rendered with
// the context's error template and model failures with ModelFailureReply.
func (u *ChatUseCase) HandleMessage(ctx context.Context, req domain.ChatRequest, callerID string) domain.ChatReply {
	chatCtx := req.Context
	if chatCtx == "" {
		chatCtx = domain.ContextCampaigns
	}
	key := assistant.KeyFor(callerID)

	completion, err := u.complete(ctx, port.CompletionRequest{
		System:  assistant.SystemPrompt(chatCtx, req.ContextData, u.history.Entries(key)),
		Message: req.Message,
		Tools:   assistant.ToolsFor(chatCtx),
	})
	if err != nil {
		u.logger.Error("model completion failed", slog.String("context", string(chatCtx)), slog.Any("error", err))
		metrics.ChatTurnsTotal.WithLabelValues(string(chatCtx), metrics.OutcomeLLMError).Inc()
		return u.reply(ModelFailureReply)
	}

	if call := completion.ToolCall; call != nil {
		return u.runTool(ctx, chatCtx, call, callerID, key)
	}

	u.history.Append(key, "User: "+req.Message, "Assistant: "+completion.Text)
	metrics.ChatTurnsTotal.WithLabelValues(string(chatCtx), metrics.OutcomeText).Inc()
	return u.reply(completion.Text)
}

// ClearContext forgets the caller's history, or all history when callerID
// is empty.
func (u *ChatUseCase) ClearContext(callerID string) {
	if callerID == "" {
		u.history.Reset()
		return
	}
	u.history.Clear(callerID)
}

func (u *ChatUseCase) runTool(ctx context.Context, chatCtx domain.Context, call *port.ToolCall, callerID, key string) domain.ChatReply {
	log := u.logger.With(slog.String("tool", call.Name), slog.String("context", string(chatCtx)))

	result, err := u.execute(ctx, call, callerID)
	if err != nil {
		log.Warn("tool call failed", slog.Any("error", err))
		metrics.ToolDispatchTotal.WithLabelValues(call.Name, "error").Inc()
		metrics.ChatTurnsTotal.WithLabelValues(string(chatCtx), metrics.OutcomeToolError).Inc()
		return u.reply(assistant.RenderError(call.Name, chatCtx, err))
	}
	metrics.ToolDispatchTotal.WithLabelValues(call.Name, "success").Inc()
	metrics.ChatTurnsTotal.WithLabelValues(string(chatCtx), metrics.OutcomeTool).Inc()
	log.Debug("tool call succeeded")

	if assistant.IsCreation(call.Name) {
		u.history.Clear(key)
	}
	reply := u.reply(assistant.Render(call.Name, result, chatCtx))
	reply.ActionResult = result
	reply.ShouldRefresh = assistant.IsMutation(call.Name)
	return reply
}

func (u *ChatUseCase) execute(ctx context.Context, call *port.ToolCall, callerID string) (any, error) {
	req, err := assistant.DecodeRequest(call.Name, call.Arguments)
	if err != nil {
		return nil, err
	}
	return u.dispatcher.Execute(ctx, req, callerID)
}

func (u *ChatUseCase) complete(ctx context.Context, req port.CompletionRequest) (*port.Completion, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	start := u.now()
	completion, err := u.llm.Complete(ctx, req)
	status := "success"
	if err == nil && completion == nil {
		err = errors.New("empty completion")
	}
	if err != nil {
		status = "error"
	}
	metrics.LLMLatency.WithLabelValues(status).Observe(u.now().Sub(start).Seconds())
	return completion, err
}

func (u *ChatUseCase) reply(content string) domain.ChatReply {
	return domain.ChatReply{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   content,
		Timestamp: u.now(),
	}
}
