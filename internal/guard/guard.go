// AngelaMos | 2026
// guard.go

package guard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// State is derived fresh from the flag source on every evaluation; it is
// never cached between navigations.
type State int

const (
	Unauthorized State = iota
	Authorized
)

func (s State) String() string {
	if s == Authorized {
		return "authorized"
	}
	return "unauthorized"
}

// FlagSource reports the persisted logged-in flag. Implementations must
// read the backing store at call time.
type FlagSource interface {
	LoggedIn(r *http.Request) bool
}

// Route tags a navigable path. A non-empty RedirectTo makes the route an
// unconditional redirect (the root path redirects to the login page).
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	RedirectTo   string
}

type Decision struct {
	Allow      bool
	RedirectTo string
}

type Guard struct {
	flag      FlagSource
	loginPath string
	routes    map[string]Route
}

func New(flag FlagSource, loginPath string, routes ...Route) *Guard {
	byPath := make(map[string]Route, len(routes))
	for _, route := range routes {
		byPath[route.Path] = route
	}

	return &Guard{
		flag:      flag,
		loginPath: loginPath,
		routes:    byPath,
	}
}

// State reads the flag now. The flag must be exactly the truthy value to
// authorize; anything else, including an absent flag, is unauthorized.
func (g *Guard) State(r *http.Request) State {
	if g.flag.LoggedIn(r) {
		return Authorized
	}
	return Unauthorized
}

// Evaluate decides whether a navigation proceeds or is redirected. A
// navigation to the login route itself always proceeds, so a redirect can
// never loop.
func (g *Guard) Evaluate(r *http.Request) Decision {
	route, ok := g.routes[r.URL.Path]
	if !ok {
		return Decision{Allow: true}
	}

	if route.RedirectTo != "" {
		return Decision{RedirectTo: route.RedirectTo}
	}

	if route.Path == g.loginPath {
		return Decision{Allow: true}
	}

	if route.RequiresAuth && g.State(r) != Authorized {
		return Decision{RedirectTo: g.loginPath}
	}

	return Decision{Allow: true}
}

// Middleware applies Evaluate before every request to the wrapped handler.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := g.Evaluate(r)
		if !decision.Allow {
			http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Mount registers every guarded route on the router, looking up views by
// route name. Redirect-only routes need no view.
func (g *Guard) Mount(r chi.Router, views map[string]http.HandlerFunc) {
	for _, route := range g.routes {
		if route.RedirectTo != "" {
			target := route.RedirectTo
			r.Get(route.Path, func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, target, http.StatusFound)
			})
			continue
		}

		view, ok := views[route.Name]
		if !ok {
			view = http.NotFound
		}

		r.Get(route.Path, g.Middleware(view).ServeHTTP)
	}
}
