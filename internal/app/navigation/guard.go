package navigation

// Decision is the outcome of a guard check. RedirectTo is meaningful
// only when Allow is false.
type Decision struct {
	Allow      bool
	RedirectTo Destination
}

// Decide is the navigation-time authorization check, run synchronously
// before a destination is entered. Auth-required destinations bounce
// anonymous visitors to login; guest-only destinations bounce
// authenticated ones to the landing screen; everything else passes.
func Decide(requiresAuth, guestOnly, authenticated bool) Decision {
	if requiresAuth && !authenticated {
		return Decision{RedirectTo: DestLogin}
	}
	if guestOnly && authenticated {
		return Decision{RedirectTo: DestHome}
	}
	return Decision{Allow: true}
}

// DecideRoute applies Decide to a route table entry.
func DecideRoute(r Route, authenticated bool) Decision {
	return Decide(r.RequiresAuth, r.GuestOnly, authenticated)
}
