package session

import "context"

// LoginRoutePath is where unauthenticated users are sent
const LoginRoutePath = "/login"

// Route describes a screen and whether it needs a signed-in user
type Route struct {
	Name         string
	Path         string
	Title        string
	RequiresAuth bool
}

// Routes of the app
var (
	RouteHome          = Route{Name: "Home", Path: "/", Title: "Mala Lingo - Home"}
	RouteLogin         = Route{Name: "Login", Path: "/login", Title: "Mala Lingo - Login"}
	RouteSignup        = Route{Name: "Signup", Path: "/signup", Title: "Mala Lingo - Sign Up"}
	RouteDashboard     = Route{Name: "Dashboard", Path: "/dashboard", Title: "Mala Lingo - Dashboard", RequiresAuth: true}
	RouteMatchingWords = Route{Name: "MatchingWords", Path: "/matching-words", Title: "Mala Lingo - Word Matching"}
	RouteFlipTest      = Route{Name: "FlipTest", Path: "/flip-test", Title: "Mala Lingo - Flip Test"}
)

// DefaultTitle is used for routes without a title
const DefaultTitle = "Mala Lingo"

// DisplayTitle returns the route title or the default one
func (r Route) DisplayTitle() string {
	if r.Title == "" {
		return DefaultTitle
	}
	return r.Title
}

// Decision is the outcome of guarding a route
type Decision struct {
	Allowed  bool
	Redirect string
}

// Authorize decides whether the current session may open route.
// Without a loaded user the stored token is revalidated once first.
func (c *Client) Authorize(ctx context.Context, route Route) Decision {
	if !route.RequiresAuth {
		return Decision{Allowed: true}
	}

	if c.User() == nil {
		c.CheckAuth(ctx)
		if c.User() == nil {
			return Decision{Redirect: LoginRoutePath}
		}
	}

	return Decision{Allowed: true}
}
