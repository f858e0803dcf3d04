package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetrecords/storefront/internal/domain"
	"github.com/sweetrecords/storefront/internal/service"
	"github.com/sweetrecords/storefront/pkg/config"
	"github.com/sweetrecords/storefront/pkg/logger"
)

type Handlers struct {
	authService    service.AuthService
	cartService    service.CartService
	catalogService service.CatalogService
	orderService   service.OrderService
	config         *config.Config
}

func New(
	authService service.AuthService,
	cartService service.CartService,
	catalogService service.CatalogService,
	orderService service.OrderService,
	config *config.Config,
) *Handlers {
	return &Handlers{
		authService:    authService,
		cartService:    cartService,
		catalogService: catalogService,
		orderService:   orderService,
		config:         config,
	}
}

// Error codes surfaced to clients
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidOTP         = "INVALID_OTP"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeConflict           = "CONFLICT"
	CodeDuplicate          = "DUPLICATE"
	CodeNotFound           = "NOT_FOUND"
	CodeStoreUnavailable   = "STORE_UNAVAILABLE"
	CodeMailDelivery       = "MAIL_DELIVERY_FAILED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// sessionCookie is the HTTP-only cookie carrying the session token.
const sessionCookie = "token"

type contextKey string

const userContextKey contextKey = "user"

// RequireSession authenticates the session cookie and puts the resolved user
// on the request context.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized", CodeUnauthorized)
			return
		}

		// A store outage is not a dead session: map through the error
		// taxonomy so transient failures stay retryable.
		user, err := h.authService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		ctx = context.WithValue(ctx, logger.UserIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin restricts a route to admin users. It must run inside
// RequireSession.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r)
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized", CodeUnauthorized)
			return
		}
		if user.Role != domain.RoleAdmin {
			writeError(w, http.StatusForbidden, "Insufficient permissions", CodeForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func currentUser(r *http.Request) *domain.User {
	if user, ok := r.Context().Value(userContextKey).(*domain.User); ok {
		return user
	}
	return nil
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.Auth.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	response := map[string]string{
		"error": message,
		"code":  code,
	}
	writeJSON(w, statusCode, response)
}

// writeServiceError maps the service error taxonomy to HTTP. Anything
// outside the taxonomy is an internal error and its detail stays server-side.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
	case errors.Is(err, domain.ErrInvalidOTP):
		writeError(w, http.StatusBadRequest, "Invalid or expired OTP", CodeInvalidOTP)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "Email already exists", CodeConflict)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid Credentials", CodeInvalidCredentials)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized", CodeUnauthorized)
	case errors.Is(err, domain.ErrDuplicate):
		writeError(w, http.StatusConflict, "Already added", CodeDuplicate)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Item not found", CodeNotFound)
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Store unavailable, try again", CodeStoreUnavailable)
	case errors.Is(err, domain.ErrMailDelivery):
		writeError(w, http.StatusBadGateway, "Failed to send email", CodeMailDelivery)
	default:
		logger.ErrorContext(r.Context(), "Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", CodeInternalError)
	}
}
