package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ads-manager/internal/core/domain"
)

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorBody{Error: msg})
}

// decodeJSON reads the request body into v, answering 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

// fail maps a use case error onto a status code. Validation and lookup
// failures echo their message; anything else is logged and hidden.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, notFound string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEntityNotFound):
		h.writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrInvalidCredentials):
		h.writeError(w, http.StatusUnauthorized, authMessage(err))
	case errors.Is(err, domain.ErrEmailTaken):
		h.writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func authMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return domain.ErrInvalidCredentials.Error()
	}
	return "Authentication required"
}
