package http

import (
	"net/http"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/utils"
)

// getProfile returns the authenticated user's own account. The user ID comes
// from the verified token in the request context, never from the request.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		renderError(w, r, apperr.New(apperr.Unauthorized, "User ID is required."))
		return
	}

	user, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Get profile successfully", map[string]any{
		"profile": user.PublicInfo(),
	})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		renderError(w, r, apperr.New(apperr.Unauthorized, "User ID is required."))
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), userID, payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Update profile successfully", map[string]any{
		"profile": user.PublicInfo(),
	})
}
