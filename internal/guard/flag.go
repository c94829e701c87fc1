// AngelaMos | 2026
// flag.go

package guard

import (
	"net/http"
)

// FlagCookie is the fixed key holding the client-persisted logged-in flag.
// The flag is a UX convenience gate, not a security boundary: it is
// client-controlled and never validated server-side.
const FlagCookie = "isLoggedIn"

const flagTrue = "true"

// CookieFlag reads the flag from the request cookie on every call.
type CookieFlag struct{}

func (CookieFlag) LoggedIn(r *http.Request) bool {
	cookie, err := r.Cookie(FlagCookie)
	return err == nil && cookie.Value == flagTrue
}

// SetFlag marks the client as logged in. Called by the view layer's
// server-side counterpart on a successful login.
func SetFlag(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlagCookie,
		Value:    flagTrue,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearFlag removes the flag on logout or account deletion.
func ClearFlag(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlagCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
