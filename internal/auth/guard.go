package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storewatch/internal/model"
)

// Paths the guard protects and redirects to.
const (
	AdminPrefix     = "/admin"
	DashboardPrefix = "/dashboard"
	LoginPath       = "/login"
	LandingPath     = "/dashboard"
)

// Decision is the outcome of a guard check. An empty Redirect means allow.
type Decision struct {
	Redirect string
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// Protected reports whether path falls under a guarded prefix.
func Protected(path string) bool {
	return underPrefix(path, AdminPrefix) || underPrefix(path, DashboardPrefix)
}

// Decide applies the guard table. cookiePresent is whether a session cookie
// was sent; id is its decoded identity, nil when decoding failed.
func Decide(path string, cookiePresent bool, id *model.Identity) Decision {
	if !Protected(path) {
		return Decision{}
	}
	if !cookiePresent || id == nil {
		return Decision{Redirect: LoginPath}
	}
	if underPrefix(path, AdminPrefix) && !id.IsAdmin() {
		return Decision{Redirect: LandingPath}
	}
	return Decision{}
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Guard redirects page requests according to Decide. It reads only the
// request cookie. Allowed requests carry the identity under SessionKey.
func Guard(store *SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if !Protected(path) {
				return next(c)
			}
			token, present := store.Token(c)
			var id *model.Identity
			if present {
				id, _ = store.Codec().Decode(token)
			}
			d := Decide(path, present, id)
			if !d.Allowed() {
				return c.Redirect(http.StatusTemporaryRedirect, d.Redirect)
			}
			c.Set(SessionKey, id)
			return next(c)
		}
	}
}
