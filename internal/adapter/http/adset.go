package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

const adSetNotFound = "AdSet not found"

// handleListAdSets accepts an optional campaign_id query filter.
func (h *Handler) handleListAdSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.entities.ListAdSets(r.Context(), r.URL.Query().Get("campaign_id"))
	if err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sets)
}

func (h *Handler) handleGetAdSet(w http.ResponseWriter, r *http.Request) {
	s, err := h.entities.GetAdSet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleCreateAdSet(w http.ResponseWriter, r *http.Request) {
	var in domain.NewAdSet
	if !h.decodeJSON(w, r, &in) {
		return
	}
	s, err := h.entities.CreateAdSet(r.Context(), in)
	if err != nil {
		h.fail(w, r, campaignNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

func (h *Handler) handleUpdateAdSet(w http.ResponseWriter, r *http.Request) {
	var patch domain.AdSetPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}
	s, err := h.entities.UpdateAdSet(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleDeleteAdSet(w http.ResponseWriter, r *http.Request) {
	if err := h.entities.DeleteAdSet(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAdSetAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.entities.ListAds(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}
