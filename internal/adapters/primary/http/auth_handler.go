package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/lorrc/restaurant-console/internal/adapters/primary/http/middleware"
	"github.com/lorrc/restaurant-console/internal/adapters/primary/validation"
	"github.com/lorrc/restaurant-console/internal/auth"
	"github.com/lorrc/restaurant-console/internal/core/domain"
	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// AuthHandler handles sign-in, registration and token refresh
type AuthHandler struct {
	authService  ports.AuthService
	tokenManager *auth.TokenManager
	errorHandler *ErrorHandler
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService ports.AuthService,
	tokenManager *auth.TokenManager,
	errorHandler *ErrorHandler,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenManager: tokenManager,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "auth"),
	}
}

// RegisterRoutes sets up the routing for all auth endpoints. Login and
// register are public; logout, refresh and me need a bearer token.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.HandleLogin)
	r.Post("/register", h.HandleRegister)

	r.Group(func(r chi.Router) {
		r.Use(mw.JWTMiddleware(h.tokenManager))
		r.Post("/logout", h.HandleLogout)
		r.Post("/refresh", h.HandleRefresh)
		r.Get("/me", h.HandleMe)
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.LoginForm](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	account, err := h.authService.Login(r.Context(), req.Credentials())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	result, err := h.issue(account.User, "Login successful")
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "operator signed in", "user_id", account.User.ID)
	WriteSuccess(w, result)
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeAndValidate[validation.RegisterRequest](r)
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	account, err := h.authService.Register(r.Context(), req.Registration())
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	result, err := h.issue(account.User, "")
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	h.logger.InfoContext(r.Context(), "operator registered",
		"user_id", account.User.ID,
		"role", account.User.Role,
	)
	WriteCreated(w, result, "Registration successful")
}

// HandleLogout handles POST /auth/logout. Tokens are stateless, the
// console discards its copy.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	WriteMessage(w, "Logged out successfully")
}

// HandleRefresh handles POST /auth/refresh
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentAccount(w, r)
	if !ok {
		return
	}

	result, err := h.issue(account.User, "Token refreshed")
	if HandleError(w, r, err, h.errorHandler) {
		return
	}

	WriteSuccess(w, result)
}

// HandleMe handles GET /auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	account, ok := h.currentAccount(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, account.User)
}

func (h *AuthHandler) currentAccount(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	claims, ok := mw.ClaimsFromContext(r.Context())
	if !ok {
		h.errorHandler.Handle(w, r, apperrors.ErrUnauthorized)
		return nil, false
	}

	account, err := h.authService.GetAccount(r.Context(), claims.UserID)
	if err != nil {
		// A valid token for an account that no longer exists
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError("Account no longer exists"))
		return nil, false
	}

	return account, true
}

func (h *AuthHandler) issue(user domain.User, message string) (domain.AuthResult, error) {
	token, err := h.tokenManager.GenerateToken(user)
	if err != nil {
		return domain.AuthResult{}, apperrors.NewInternalError(err)
	}
	return domain.AuthResult{User: user, Token: token, Message: message}, nil
}
