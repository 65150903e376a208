package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"sbweb/config"
	"sbweb/lmsapi"
	"sbweb/session"
)

const sessionLocal = "session"

// Auth glues the session store to the signed browser cookie. The cookie only
// carries the session ID; tokens and the user record stay server-side.
type Auth struct {
	Store *session.Store
}

func NewAuth(store *session.Store) *Auth {
	return &Auth{Store: store}
}

// signCookie issues the session cookie value as a signed JWT
func (a *Auth) signCookie(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

func (a *Auth) parseCookie(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session cookie")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sid"] == nil {
		return "", fmt.Errorf("invalid session cookie payload")
	}
	sid, ok := claims["sid"].(string)
	if !ok {
		return "", fmt.Errorf("invalid session cookie payload")
	}
	return sid, nil
}

// IssueCookie sets the session cookie on the response.
func (a *Auth) IssueCookie(c *fiber.Ctx, sess *session.Session) error {
	value, err := a.signCookie(sess.ID, sess.ExpiresAt)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     config.AppConfig.CookieName,
		Value:    value,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func (a *Auth) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     config.AppConfig.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// Teardown removes the session and its cookie. It never fails the request;
// a broken teardown must not keep a user logged in.
func (a *Auth) Teardown(c *fiber.Ctx) {
	if sess, ok := SessionFrom(c); ok {
		_ = a.Store.Delete(sess.ID)
	}
	a.clearCookie(c)
}

// Load restores the session from the cookie when present. Any failure
// (missing cookie, bad signature, expired or purged session) silently yields
// an anonymous request; this is a background check, never a surfaced error.
func (a *Auth) Load() fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := c.Cookies(config.AppConfig.CookieName)
		if value == "" {
			return c.Next()
		}
		sid, err := a.parseCookie(value)
		if err != nil {
			a.clearCookie(c)
			return c.Next()
		}
		sess, err := a.Store.Get(sid)
		if err != nil {
			a.clearCookie(c)
			return c.Next()
		}
		_ = a.Store.Touch(sess.ID)
		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// Required rejects anonymous requests.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := SessionFrom(c); !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", nil)
		}
		return c.Next()
	}
}

// RequireRole gates a route group on the session's role. Gating lives here,
// once, instead of scattered per-handler checks.
func (a *Auth) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in to continue.", nil)
		}
		for _, role := range roles {
			if sess.Role == role {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

// UpstreamError handles a failed upstream call. A 401 means the stored
// access token is no longer valid: the session is torn down and the browser
// is routed back to login. Everything else maps through RespondUpstreamError.
func (a *Auth) UpstreamError(c *fiber.Ctx, err error) error {
	if lmsapi.IsUnauthorized(err) {
		a.Teardown(c)
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Session expired. Please log in again.", nil)
	}
	return RespondUpstreamError(c, err)
}

// SessionFrom returns the session attached by Load, if any.
func SessionFrom(c *fiber.Ctx) (*session.Session, bool) {
	sess, ok := c.Locals(sessionLocal).(*session.Session)
	return sess, ok
}
