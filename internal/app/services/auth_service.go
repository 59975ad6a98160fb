package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ssisdev/sisctl/internal/api"
	"github.com/ssisdev/sisctl/internal/app/models/dto"
	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/pkg/notify"
	"github.com/ssisdev/sisctl/internal/session"
)

// Fallback messages when the backend supplies no error of its own.
const (
	signupFallback = "Network error"
	loginFallback  = "Login failed"
)

// AuthResult is what the caller sees from every auth operation.
// Expected failures are values here, never Go errors.
type AuthResult struct {
	Success bool
	Error   string
}

// AuthService orchestrates the credential exchange with the backend and
// owns the Anonymous/Authenticated state transition. Notifications and
// navigation go through injected sinks so the service stays testable.
type AuthService struct {
	client        APIClient
	session       *session.Store
	notifier      notify.Notifier
	nav           navigation.Navigator
	validate      *validator.Validate
	logger        zerolog.Logger
	authenticated bool
}

// NewAuthService creates an AuthService. The initial authenticated
// state derives from the token persisted in the session store.
func NewAuthService(
	client APIClient,
	store *session.Store,
	notifier notify.Notifier,
	nav navigation.Navigator,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		client:        client,
		session:       store,
		notifier:      notifier,
		nav:           nav,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		logger:        logger,
		authenticated: store.Authenticated(),
	}
}

// Authenticated reports the current auth state.
func (s *AuthService) Authenticated() bool {
	return s.authenticated
}

// Signup registers a new account. A successful signup does not
// authenticate the session; the user logs in as a second step.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) AuthResult {
	req := dto.RegisterRequest{Username: username, Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		return AuthResult{Error: inputMessage(err)}
	}

	if err := s.client.Post(ctx, "/auth/register", req, nil); err != nil {
		s.logger.Debug().Err(err).Msg("signup rejected")
		return failure(err, signupFallback)
	}

	s.notifier.Success("Account created successfully! Please log in.")
	return AuthResult{Success: true}
}

// Login exchanges credentials for a token, persists the session, and
// navigates to the landing destination. On failure the session state is
// left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) AuthResult {
	req := dto.LoginRequest{Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		return AuthResult{Error: inputMessage(err)}
	}

	var resp dto.AuthResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		s.logger.Debug().Err(err).Msg("login rejected")
		return failure(err, loginFallback)
	}

	if err := s.session.Set(resp.AccessToken, &resp.User); err != nil {
		s.logger.Error().Err(err).Msg("persisting session failed")
		return AuthResult{Error: err.Error()}
	}
	s.authenticated = true

	s.notifier.Success("Login successful!")
	s.nav.Navigate(navigation.DestHome)
	return AuthResult{Success: true}
}

// Logout clears the session and navigates to login. It is local-only,
// makes no network call, and always succeeds.
func (s *AuthService) Logout() AuthResult {
	if err := s.session.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("clearing persisted session failed")
	}
	s.authenticated = false

	s.notifier.Info("Logged out successfully")
	s.nav.Navigate(navigation.DestLogin)
	return AuthResult{Success: true}
}

// VerifyToken asks the backend whether the stored token is still good.
// With no token present it answers false without touching the network.
// Any verify failure, transport included, tears the session down the
// same way an explicit logout would.
func (s *AuthService) VerifyToken(ctx context.Context) bool {
	if s.session.Token() == "" {
		return false
	}

	if err := s.client.Get(ctx, "/auth/verify", nil); err != nil {
		s.logger.Info().Err(err).Msg("token verification failed")
		s.Logout()
		return false
	}
	return true
}

// ForceLogout tears the session down without notifications. The
// transport's 401 hook lands here so stale sessions die at one point
// no matter which request exposed them.
func (s *AuthService) ForceLogout() {
	if err := s.session.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("clearing persisted session failed")
	}
	s.authenticated = false
	s.nav.Navigate(navigation.DestLogin)
}

// failure converts a transport error into a result, preferring the
// backend's own message over the generic fallback.
func failure(err error, fallback string) AuthResult {
	if msg := api.ServerMessage(err); msg != "" {
		return AuthResult{Error: msg}
	}
	return AuthResult{Error: fallback}
}

// inputMessage renders the first failed struct-tag check as a
// human-readable message.
func inputMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid input"
	}

	fe := verrs[0]
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Email address is not valid"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

// fieldLabel turns a struct field name into a display label.
func fieldLabel(name string) string {
	if name == "" {
		return name
	}
	lowered := strings.ToLower(name)
	return strings.ToUpper(lowered[:1]) + lowered[1:]
}
