package http

import (
	"net/http"
)

// register handles POST /v1/auth/register. The raw payload goes to the auth
// service untouched; validation, uniqueness, and hashing all happen there.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Register(r.Context(), payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusCreated, "Register successfully", map[string]any{
		"user": registeredUser.PublicInfo(),
	})
}

// login handles POST /v1/auth/login and returns the user's public info
// together with a freshly issued access token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Login successfully", map[string]any{
		"user": user.PublicInfo(),
		"tokens": map[string]string{
			"accessToken": token.SignedString,
		},
	})
}
