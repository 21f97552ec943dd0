package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

const campaignNotFound = "Campaign not found"

// handleListCampaigns returns the caller's campaigns, or all campaigns for
// anonymous callers.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.entities.ListCampaigns(r.Context(), callerID(r.Context()))
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.entities.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCreateCampaign stamps the caller as owner; anonymous callers get
// 401.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner := callerID(r.Context())
	if owner == "" {
		h.writeError(w, http.StatusUnauthorized, "Authentication required to create campaigns")
		return
	}
	var in domain.NewCampaign
	if !h.decodeJSON(w, r, &in) {
		return
	}
	in.UserID = owner
	c, err := h.entities.CreateCampaign(r.Context(), in)
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}
	c, err := h.entities.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.entities.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCampaignAdSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.entities.ListAdSets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sets)
}
