package httpadapter

import (
	"net/http"
	"strings"

	"ads-manager/internal/core/domain"
)

// handleChat runs one assistant turn. Failures inside the turn are part of
// the reply content, so the only error status is 400 for a blank message.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	reply := h.chat.HandleMessage(r.Context(), req, callerID(r.Context()))
	h.writeJSON(w, http.StatusOK, reply)
}

// handleClearContext forgets the caller's conversation, or every
// conversation for anonymous callers.
func (h *Handler) handleClearContext(w http.ResponseWriter, r *http.Request) {
	h.chat.ClearContext(callerID(r.Context()))
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Chat context cleared successfully"})
}
