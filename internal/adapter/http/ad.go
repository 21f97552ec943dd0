package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ads-manager/internal/core/domain"
)

const adNotFound = "Ad not found"

// handleListAds accepts an optional adset_id query filter.
func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.entities.ListAds(r.Context(), r.URL.Query().Get("adset_id"))
	if err != nil {
		h.fail(w, r, adNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ads)
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	a, err := h.entities.GetAd(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, adNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var in domain.NewAd
	if !h.decodeJSON(w, r, &in) {
		return
	}
	a, err := h.entities.CreateAd(r.Context(), in)
	if err != nil {
		h.fail(w, r, adSetNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	var patch domain.AdPatch
	if !h.decodeJSON(w, r, &patch) {
		return
	}
	a, err := h.entities.UpdateAd(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, adNotFound, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	if err := h.entities.DeleteAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, adNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
