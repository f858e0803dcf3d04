package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sweetrecords/storefront/internal/domain"
)

// RegisterRequest handles the first signup phase: it sends an OTP to the
// address and creates nothing else.
func (h *Handlers) RegisterRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	if err := h.authService.RegisterRequest(r.Context(), &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "OTP sent",
	})
}

// RegisterConfirm handles the second signup phase: code check and account
// creation.
func (h *Handlers) RegisterConfirm(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	user, err := h.authService.RegisterConfirm(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Registration successful",
		"user":    user.ToUserInfo(),
	})
}

// SignIn verifies credentials and sets the session cookie.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", CodeInvalidInput)
		return
	}

	token, user, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user.ToUserInfo(),
	})
}

// Me resolves the session cookie to the current identity.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized", CodeUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user.ToUserInfo(),
	})
}

// Logout clears the session cookie. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}
