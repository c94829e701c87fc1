// AngelaMos | 2026
// guard_test.go

package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFlag counts reads so tests can prove the flag is consulted on every
// evaluation rather than cached.
type stubFlag struct {
	loggedIn bool
	reads    int
}

func (s *stubFlag) LoggedIn(*http.Request) bool {
	s.reads++
	return s.loggedIn
}

func testRoutes() []Route {
	return []Route{
		{Path: "/", Name: "Root", RedirectTo: "/login"},
		{Path: "/login", Name: "Login"},
		{Path: "/home", Name: "Home", RequiresAuth: true},
		{Path: "/profile", Name: "Profile", RequiresAuth: true},
	}
}

func navRequest(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func TestEvaluate(t *testing.T) {
	t.Run("ProtectedWhileUnauthorized", func(t *testing.T) {
		g := New(&stubFlag{}, "/login", testRoutes()...)

		decision := g.Evaluate(navRequest("/home"))

		assert.False(t, decision.Allow)
		assert.Equal(t, "/login", decision.RedirectTo)
	})

	t.Run("ProtectedWhileAuthorized", func(t *testing.T) {
		g := New(&stubFlag{loggedIn: true}, "/login", testRoutes()...)

		decision := g.Evaluate(navRequest("/home"))

		assert.True(t, decision.Allow)
	})

	t.Run("LoginNeverRedirects", func(t *testing.T) {
		// Both states land on the login page so a redirect cannot loop.
		for _, loggedIn := range []bool{false, true} {
			g := New(&stubFlag{loggedIn: loggedIn}, "/login", testRoutes()...)

			decision := g.Evaluate(navRequest("/login"))

			assert.True(t, decision.Allow)
		}
	})

	t.Run("RootRedirectsToLogin", func(t *testing.T) {
		g := New(&stubFlag{loggedIn: true}, "/login", testRoutes()...)

		decision := g.Evaluate(navRequest("/"))

		assert.False(t, decision.Allow)
		assert.Equal(t, "/login", decision.RedirectTo)
	})

	t.Run("UnknownPathProceeds", func(t *testing.T) {
		g := New(&stubFlag{}, "/login", testRoutes()...)

		decision := g.Evaluate(navRequest("/about"))

		assert.True(t, decision.Allow)
	})

	t.Run("FlagReadPerEvaluation", func(t *testing.T) {
		flag := &stubFlag{}
		g := New(flag, "/login", testRoutes()...)

		decision := g.Evaluate(navRequest("/home"))
		assert.False(t, decision.Allow)

		// Logging in between navigations changes the outcome immediately.
		flag.loggedIn = true
		decision = g.Evaluate(navRequest("/home"))
		assert.True(t, decision.Allow)
		assert.Equal(t, 2, flag.reads)
	})
}

func TestState(t *testing.T) {
	flag := &stubFlag{}
	g := New(flag, "/login")

	assert.Equal(t, Unauthorized, g.State(navRequest("/")))

	flag.loggedIn = true
	assert.Equal(t, Authorized, g.State(navRequest("/")))

	assert.Equal(t, "authorized", Authorized.String())
	assert.Equal(t, "unauthorized", Unauthorized.String())
}

func TestMiddleware(t *testing.T) {
	flag := &stubFlag{}
	g := New(flag, "/login", testRoutes()...)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := g.Middleware(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, navRequest("/home"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	flag.loggedIn = true
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, navRequest("/home"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCookieFlag(t *testing.T) {
	t.Run("AbsentCookie", func(t *testing.T) {
		assert.False(t, CookieFlag{}.LoggedIn(navRequest("/")))
	})

	t.Run("ExactTruthyValueOnly", func(t *testing.T) {
		for value, want := range map[string]bool{
			"true":  true,
			"TRUE":  false,
			"1":     false,
			"false": false,
			"":      false,
		} {
			r := navRequest("/")
			r.AddCookie(&http.Cookie{Name: FlagCookie, Value: value})
			assert.Equal(t, want, CookieFlag{}.LoggedIn(r), "value %q", value)
		}
	})

	t.Run("SetThenClear", func(t *testing.T) {
		rec := httptest.NewRecorder()
		SetFlag(rec)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, FlagCookie, cookies[0].Name)
		assert.Equal(t, "true", cookies[0].Value)

		rec = httptest.NewRecorder()
		ClearFlag(rec)

		cookies = rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})
}
