package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"storewatch/internal/model"
)

// CookieName is the session cookie set at sign-in.
const CookieName = "sessionToken"

// SessionStore keeps the session token in an HTTP-only cookie.
type SessionStore struct {
	codec  Codec
	secure bool
}

// NewSessionStore creates a store. secure adds the Secure flag and should
// only be set in production.
func NewSessionStore(codec Codec, secure bool) *SessionStore {
	return &SessionStore{codec: codec, secure: secure}
}

// Codec returns the codec used for the cookie value.
func (s *SessionStore) Codec() Codec {
	return s.codec
}

// Create encodes id and writes the session cookie. It returns the token.
func (s *SessionStore) Create(c echo.Context, id model.Identity) (string, error) {
	token, err := s.codec.Encode(id)
	if err != nil {
		return "", err
	}
	c.SetCookie(s.cookie(token, int(SessionTTL/time.Second)))
	return token, nil
}

// Token returns the raw cookie value, if any.
func (s *SessionStore) Token(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Read returns the session identity, or nil when the cookie is missing or
// cannot be decoded.
func (s *SessionStore) Read(c echo.Context) *model.Identity {
	token, ok := s.Token(c)
	if !ok {
		return nil
	}
	id, err := s.codec.Decode(token)
	if err != nil {
		return nil
	}
	return id
}

// Destroy expires the session cookie.
func (s *SessionStore) Destroy(c echo.Context) {
	c.SetCookie(s.cookie("", -1))
}

func (s *SessionStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
