package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cinerate/rating-system/internal/core/domain"
	"github.com/cinerate/rating-system/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the signed session id.
const SessionCookie = "mr_session"

// Context keys populated for downstream handlers.
const (
	CtxUser      = "user"
	CtxRole      = "role"
	CtxSessionID = "session_id"
)

// Session resolves the caller's session, if any, into the request context.
// The cookie value is an HS256 token carrying only the session id; the
// signature makes the cookie tamper-evident while the {user, role} state
// stays server-side in the store. Requests without a valid cookie, or
// whose store entry has expired, proceed as anonymous. A store failure is
// not anonymity: it fails the request so the error page is rendered
// instead of silently dropping an authenticated identity.
func Session(store ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			id, ok := parseSessionToken(cookie.Value, secret)
			if !ok {
				return next(c)
			}

			sess, err := store.Get(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(CtxUser, sess.User)
			c.Set(CtxRole, string(sess.Role))
			c.Set(CtxSessionID, id)

			return next(c)
		}
	}
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// NewSessionCookie issues the signed cookie for a freshly created session id.
func NewSessionCookie(id, secret string, ttl time.Duration) (*http.Cookie, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ExpiredSessionCookie returns a cookie that clears the session cookie.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}

func parseSessionToken(token, secret string) (string, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}
	id, _ := claims["sid"].(string)
	return id, id != ""
}
