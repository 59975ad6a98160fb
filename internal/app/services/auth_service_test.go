package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssisdev/sisctl/internal/api"
	"github.com/ssisdev/sisctl/internal/app/models"
	"github.com/ssisdev/sisctl/internal/app/models/dto"
	"github.com/ssisdev/sisctl/internal/app/navigation"
	"github.com/ssisdev/sisctl/internal/app/services"
	"github.com/ssisdev/sisctl/internal/session"
)

type authFixture struct {
	client   *fakeClient
	store    *session.Store
	notifier *fakeNotifier
	nav      *recordNav
	auth     *services.AuthService
}

func newAuthFixture(t *testing.T, kv session.KV) *authFixture {
	t.Helper()
	f := &authFixture{
		client:   &fakeClient{},
		store:    session.NewStore(kv),
		notifier: &fakeNotifier{},
		nav:      &recordNav{},
	}
	f.auth = services.NewAuthService(f.client, f.store, f.notifier, f.nav, zerolog.Nop())
	return f
}

func TestAuthServiceSignup(t *testing.T) {
	t.Run("success notifies but does not authenticate", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())

		res := f.auth.Signup(context.Background(), "newadmin", "admin@example.com", "hunter2hunter2")

		assert.True(t, res.Success)
		assert.Equal(t, []string{"/auth/register"}, f.client.posts)
		assert.Equal(t, []string{"Account created successfully! Please log in."}, f.notifier.successes)
		assert.False(t, f.auth.Authenticated())
		assert.Empty(t, f.store.Token())
		assert.Empty(t, f.nav.dests)
	})

	t.Run("server message wins over fallback", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())
		f.client.postFn = func(string, any, any) error {
			return &api.APIError{Status: 409, Message: "Username already taken"}
		}

		res := f.auth.Signup(context.Background(), "newadmin", "admin@example.com", "hunter2hunter2")

		assert.False(t, res.Success)
		assert.Equal(t, "Username already taken", res.Error)
	})

	t.Run("transport failure falls back to network error", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())
		f.client.postFn = func(string, any, any) error {
			return errors.New("dial tcp: connection refused")
		}

		res := f.auth.Signup(context.Background(), "newadmin", "admin@example.com", "hunter2hunter2")

		assert.False(t, res.Success)
		assert.Equal(t, "Network error", res.Error)
		assert.Empty(t, f.notifier.successes)
	})

	t.Run("invalid input never reaches the network", func(t *testing.T) {
		tests := []struct {
			name                      string
			username, email, password string
			wantError                 string
		}{
			{"blank username", "", "admin@example.com", "hunter2hunter2", "Username is required"},
			{"short username", "ab", "admin@example.com", "hunter2hunter2", "Username must be at least 3 characters"},
			{"bad email", "newadmin", "not-an-address", "hunter2hunter2", "Email address is not valid"},
			{"short password", "newadmin", "admin@example.com", "short", "Password must be at least 8 characters"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newAuthFixture(t, session.NewMemKV())

				res := f.auth.Signup(context.Background(), tt.username, tt.email, tt.password)

				assert.False(t, res.Success)
				assert.Equal(t, tt.wantError, res.Error)
				assert.Empty(t, f.client.posts)
			})
		}
	})
}

func TestAuthServiceLogin(t *testing.T) {
	loginOK := func(user models.User, token string) func(string, any, any) error {
		return func(_ string, _ any, out any) error {
			resp := out.(*dto.AuthResponse)
			*resp = dto.AuthResponse{AccessToken: token, User: user}
			return nil
		}
	}

	t.Run("success persists session and navigates home", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())
		user := models.User{UserID: 7, Username: "registrar", Email: "admin@example.com"}
		f.client.postFn = loginOK(user, "tok-123")

		res := f.auth.Login(context.Background(), "admin@example.com", "hunter2")

		require.True(t, res.Success)
		assert.Equal(t, []string{"/auth/login"}, f.client.posts)
		assert.True(t, f.auth.Authenticated())
		assert.Equal(t, "tok-123", f.store.Token())
		require.NotNil(t, f.store.User())
		assert.Equal(t, "registrar", f.store.User().Username)
		assert.Equal(t, []string{"Login successful!"}, f.notifier.successes)
		assert.Equal(t, []navigation.Destination{navigation.DestHome}, f.nav.dests)
	})

	t.Run("rejected credentials leave the session untouched", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())
		f.client.postFn = func(string, any, any) error {
			return &api.APIError{Status: 401, Message: "Invalid email or password"}
		}

		res := f.auth.Login(context.Background(), "admin@example.com", "wrong")

		assert.False(t, res.Success)
		assert.Equal(t, "Invalid email or password", res.Error)
		assert.False(t, f.auth.Authenticated())
		assert.Empty(t, f.store.Token())
		assert.Empty(t, f.nav.dests)
	})

	t.Run("transport failure falls back to login failed", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())
		f.client.postFn = func(string, any, any) error {
			return errors.New("dial tcp: connection refused")
		}

		res := f.auth.Login(context.Background(), "admin@example.com", "hunter2")

		assert.False(t, res.Success)
		assert.Equal(t, "Login failed", res.Error)
	})

	t.Run("persist failure reports instead of half-authenticating", func(t *testing.T) {
		kv := session.NewMemKV()
		kv.FailSet = "token"
		f := newAuthFixture(t, kv)
		f.client.postFn = loginOK(models.User{UserID: 7}, "tok-123")

		res := f.auth.Login(context.Background(), "admin@example.com", "hunter2")

		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.False(t, f.auth.Authenticated())
		assert.Empty(t, f.nav.dests)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	kv := session.NewMemKV()
	require.NoError(t, kv.Set("token", "tok-123"))
	f := newAuthFixture(t, kv)
	require.True(t, f.auth.Authenticated())

	res := f.auth.Logout()

	assert.True(t, res.Success)
	assert.False(t, f.auth.Authenticated())
	assert.Empty(t, f.store.Token())
	assert.Equal(t, []string{"Logged out successfully"}, f.notifier.infos)
	assert.Equal(t, []navigation.Destination{navigation.DestLogin}, f.nav.dests)

	_, stillThere := kv.Get("token")
	assert.False(t, stillThere)
}

func TestAuthServiceVerifyToken(t *testing.T) {
	t.Run("no token answers false without network", func(t *testing.T) {
		f := newAuthFixture(t, session.NewMemKV())

		assert.False(t, f.auth.VerifyToken(context.Background()))
		assert.Empty(t, f.client.gets)
	})

	t.Run("valid token answers true", func(t *testing.T) {
		kv := session.NewMemKV()
		require.NoError(t, kv.Set("token", "tok-123"))
		f := newAuthFixture(t, kv)

		assert.True(t, f.auth.VerifyToken(context.Background()))
		assert.Equal(t, []string{"/auth/verify"}, f.client.gets)
	})

	t.Run("rejected token logs out", func(t *testing.T) {
		kv := session.NewMemKV()
		require.NoError(t, kv.Set("token", "tok-expired"))
		f := newAuthFixture(t, kv)
		f.client.getFn = func(string, any) error {
			return &api.APIError{Status: 401, Message: "Token has expired"}
		}

		assert.False(t, f.auth.VerifyToken(context.Background()))
		assert.False(t, f.auth.Authenticated())
		assert.Empty(t, f.store.Token())
		assert.Equal(t, []string{"Logged out successfully"}, f.notifier.infos)
		assert.Equal(t, []navigation.Destination{navigation.DestLogin}, f.nav.dests)
	})
}

func TestAuthServiceForceLogout(t *testing.T) {
	kv := session.NewMemKV()
	require.NoError(t, kv.Set("token", "tok-123"))
	f := newAuthFixture(t, kv)

	f.auth.ForceLogout()

	assert.False(t, f.auth.Authenticated())
	assert.Empty(t, f.store.Token())
	assert.Empty(t, f.notifier.successes, "force logout is silent")
	assert.Empty(t, f.notifier.infos, "force logout is silent")
	assert.Equal(t, []navigation.Destination{navigation.DestLogin}, f.nav.dests)
}
