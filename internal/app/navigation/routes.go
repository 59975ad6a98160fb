package navigation

// Destination identifies a navigable screen of the admin tool.
type Destination string

const (
	DestDashboard Destination = "dashboard"
	DestStudents  Destination = "students"
	DestPrograms  Destination = "programs"
	DestColleges  Destination = "colleges"
	DestLogin     Destination = "login"
	DestSignup    Destination = "signup"
)

// DestHome is the authenticated landing destination.
const DestHome = DestDashboard

// Route is one entry of the route table.
type Route struct {
	Name         Destination
	Path         string
	RequiresAuth bool
	GuestOnly    bool
}

var routes = []Route{
	{Name: DestDashboard, Path: "/", RequiresAuth: true},
	{Name: DestStudents, Path: "/students", RequiresAuth: true},
	{Name: DestPrograms, Path: "/programs", RequiresAuth: true},
	{Name: DestColleges, Path: "/colleges", RequiresAuth: true},
	{Name: DestLogin, Path: "/login", GuestOnly: true},
	{Name: DestSignup, Path: "/signup", GuestOnly: true},
}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Lookup finds a route by destination name.
func Lookup(name Destination) (Route, bool) {
	for _, r := range routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}

// Navigator performs a one-way transition to a destination. The CLI
// implementation tells the user where they ended up; tests record it.
type Navigator interface {
	Navigate(dest Destination)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(dest Destination)

func (f NavigatorFunc) Navigate(dest Destination) { f(dest) }
