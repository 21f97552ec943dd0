package httpadapter

import (
	"net/http"

	"ads-manager/internal/core/domain"
)

type authResponse struct {
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if !h.decodeJSON(w, r, &reg) {
		return
	}
	res, err := h.auth.Register(r.Context(), reg)
	if err != nil {
		h.fail(w, r, "", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, authResponse{Message: "User created successfully", User: &res.User, Token: res.Token})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !h.decodeJSON(w, r, &creds) {
		return
	}
	res, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		h.fail(w, r, "", err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse{Message: "Login successful", User: &res.User, Token: res.Token})
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Profile(r.Context(), callerID(r.Context()))
	if err != nil {
		h.fail(w, r, "User not found", err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse{User: user})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := h.auth.Profile(ctx, callerID(ctx))
	if err != nil {
		h.fail(w, r, "User not found", err)
		return
	}
	token, err := h.auth.Refresh(ctx, user.ID)
	if err != nil {
		h.fail(w, r, "User not found", err)
		return
	}
	h.writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
