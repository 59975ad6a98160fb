package session

import (
	"encoding/json"

	"github.com/ssisdev/sisctl/internal/app/models"
	"github.com/ssisdev/sisctl/internal/pkg/apperrors"
	"github.com/ssisdev/sisctl/internal/pkg/auth"
)

// Fixed keys in the persistent store.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Store holds the current authentication state: access token plus the
// decoded user record, mirrored to a persistent KV. Token and user are
// always written or cleared together, never one without the other.
type Store struct {
	kv    KV
	token string
	user  *models.User
}

// NewStore creates a Store over kv and loads any persisted session.
func NewStore(kv KV) *Store {
	s := &Store{kv: kv}
	s.Load()
	return s
}

// Load reads both keys from the persistent store. An absent token means
// anonymous. A missing or undecodable user record degrades to nil
// rather than failing; the pairing is best-effort on the client.
func (s *Store) Load() {
	token, ok := s.kv.Get(tokenKey)
	if !ok {
		s.token = ""
		s.user = nil
		return
	}
	s.token = token

	s.user = nil
	if raw, ok := s.kv.Get(userKey); ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.user = &user
		}
	}
}

// Set persists token and user and updates the in-memory state, both or
// neither. If the second write fails the first key is removed again and
// memory stays untouched.
func (s *Store) Set(token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return apperrors.NewSessionStoreError(err, "encoding user")
	}

	if err := s.kv.Set(tokenKey, token); err != nil {
		return apperrors.NewSessionStoreError(err, "storing token")
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		_ = s.kv.Remove(tokenKey)
		return apperrors.NewSessionStoreError(err, "storing user")
	}

	s.token = token
	s.user = user
	return nil
}

// Clear resets memory to the anonymous state and removes both keys.
// The in-memory reset happens first so this process is logged out even
// when the persistent store misbehaves. Clearing an already-anonymous
// store is a no-op.
func (s *Store) Clear() error {
	s.token = ""
	s.user = nil

	if err := s.kv.Remove(tokenKey); err != nil {
		return apperrors.NewSessionStoreError(err, "removing token")
	}
	if err := s.kv.Remove(userKey); err != nil {
		return apperrors.NewSessionStoreError(err, "removing user")
	}
	return nil
}

// Token returns the stored access token, empty when anonymous.
func (s *Store) Token() string {
	return s.token
}

// User returns the stored user record, nil when anonymous.
func (s *Store) User() *models.User {
	return s.user
}

// Authenticated reports whether a token is present. Presence of a token
// is what gates routes; only the backend can actually vouch for it.
func (s *Store) Authenticated() bool {
	return s.token != ""
}

// Claims decodes the stored token's claims for display. Returns an
// error when anonymous or when the token is not a well-formed JWT.
func (s *Store) Claims() (*auth.TokenClaims, error) {
	if s.token == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return auth.ParseClaims(s.token)
}
