// Package session gates the admin surface. The gate has two states, logged
// out and logged in, derived purely from whether a backend token sits in the
// injected store: the token's validity is never checked up front, so a stale
// token reads as logged in until the first authenticated call fails. Such a
// failure does not clear the token (no forced logout on 401-class errors).
package session

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TokenStore is persistent storage for the single admin session token.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
}

type Gate struct {
	store  TokenStore
	logger zerolog.Logger
}

func New(store TokenStore) *Gate {
	return &Gate{
		store:  store,
		logger: log.With().Str("component", "sessionGate").Logger(),
	}
}

// Token returns the stored backend token, or "" when logged out. It satisfies
// the gateway's TokenSource; a store read failure is logged and treated as
// logged out rather than propagated into every request.
func (g *Gate) Token() string {
	token, err := g.store.Token()
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to read session token")
		return ""
	}
	return token
}

// LoggedIn reports whether a token is currently present (trust-on-presence).
func (g *Gate) LoggedIn() bool {
	return g.Token() != ""
}

// Establish transitions the gate to logged in by persisting the token the
// backend returned from a successful login.
func (g *Gate) Establish(token string) error {
	return g.store.SetToken(token)
}

// Clear transitions the gate to logged out.
func (g *Gate) Clear() error {
	return g.store.ClearToken()
}
