package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssisdev/sisctl/internal/app/navigation"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		requiresAuth  bool
		guestOnly     bool
		authenticated bool
		want          navigation.Decision
	}{
		{
			name:         "anonymous visitor to protected screen redirects to login",
			requiresAuth: true,
			want:         navigation.Decision{RedirectTo: navigation.DestLogin},
		},
		{
			name:          "authenticated visitor to protected screen passes",
			requiresAuth:  true,
			authenticated: true,
			want:          navigation.Decision{Allow: true},
		},
		{
			name:          "authenticated visitor to guest-only screen redirects home",
			guestOnly:     true,
			authenticated: true,
			want:          navigation.Decision{RedirectTo: navigation.DestHome},
		},
		{
			name:      "anonymous visitor to guest-only screen passes",
			guestOnly: true,
			want:      navigation.Decision{Allow: true},
		},
		{
			name: "unrestricted screen always passes",
			want: navigation.Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navigation.Decide(tt.requiresAuth, tt.guestOnly, tt.authenticated)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouteTable(t *testing.T) {
	t.Run("protected destinations require auth", func(t *testing.T) {
		for _, dest := range []navigation.Destination{
			navigation.DestDashboard,
			navigation.DestStudents,
			navigation.DestPrograms,
			navigation.DestColleges,
		} {
			route, ok := navigation.Lookup(dest)
			require.True(t, ok, "destination %q", dest)
			assert.True(t, route.RequiresAuth, "destination %q", dest)
			assert.False(t, route.GuestOnly, "destination %q", dest)
		}
	})

	t.Run("auth screens are guest-only", func(t *testing.T) {
		for _, dest := range []navigation.Destination{navigation.DestLogin, navigation.DestSignup} {
			route, ok := navigation.Lookup(dest)
			require.True(t, ok, "destination %q", dest)
			assert.True(t, route.GuestOnly, "destination %q", dest)
			assert.False(t, route.RequiresAuth, "destination %q", dest)
		}
	})

	t.Run("unknown destination", func(t *testing.T) {
		_, ok := navigation.Lookup("hallway")
		assert.False(t, ok)
	})

	t.Run("DecideRoute matches Decide", func(t *testing.T) {
		route, _ := navigation.Lookup(navigation.DestStudents)
		assert.Equal(t,
			navigation.Decide(route.RequiresAuth, route.GuestOnly, false),
			navigation.DecideRoute(route, false))
	})
}
