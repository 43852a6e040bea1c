package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the browser-side admin session cookie.
const CookieName = "admin_session"

var errInvalidCookie = errors.New("invalid session cookie")

// Cookies mints and verifies the signed browser cookie for the admin panel.
// The cookie never carries the backend token itself; it only proves the
// browser went through this service's login handler.
type Cookies struct {
	signingKey []byte
	ttl        time.Duration
}

func NewCookies(signingKey string, ttl time.Duration) Cookies {
	return Cookies{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue writes a fresh signed session cookie.
func (c Cookies) Issue(w http.ResponseWriter) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Verify checks the request's session cookie signature and expiry.
func (c Cookies) Verify(r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return errInvalidCookie
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidCookie
		}
		return c.signingKey, nil
	})
	if err != nil || !token.Valid {
		return errInvalidCookie
	}
	return nil
}

// Expire clears the session cookie in the browser.
func (c Cookies) Expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
