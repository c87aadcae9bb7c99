package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "storewatch/internal/errors"
	"storewatch/internal/model"
)

// SessionKey is the echo context key holding the *model.Identity.
const SessionKey = "session"

// RequireSession rejects API requests without a valid, unrevoked session
// cookie with 401. The token is parsed by codec, so both codecs work.
func RequireSession(codec Codec, revocations RevocationStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + CookieName,
		ContextKey:  SessionKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			id, err := codec.Decode(token)
			if err != nil {
				return nil, err
			}
			if revocations != nil {
				if revoked, _ := revocations.IsRevoked(c.Request().Context(), token); revoked {
					return nil, apperrors.ErrInvalidToken
				}
			}
			return id, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "unauthorized",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireAdmin allows only ADMIN sessions through. It must run after
// RequireSession or Guard.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := SessionFrom(c)
			if !ok || !id.IsAdmin() {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// SessionFrom returns the identity stored by RequireSession or Guard.
func SessionFrom(c echo.Context) (*model.Identity, bool) {
	id, ok := c.Get(SessionKey).(*model.Identity)
	return id, ok && id != nil
}
