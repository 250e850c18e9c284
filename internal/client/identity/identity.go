// Package identity adapts the Waygate session API into an identity
// provider: it answers "who is signed in right now" and owns the cached
// token pair.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpovs/waygate/internal/client/models"
	"github.com/akarpovs/waygate/internal/client/session"
	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/logging"
)

// Identity is the authenticated subject of the current session.
type Identity struct {
	UserID   string
	Username string
}

// api is the slice of the Waygate client the provider needs.
type api interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	SetTokens(accessToken, refreshToken string)
	Tokens() (string, string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
}

// Provider verifies and mutates the cached session. It is constructed
// explicitly and handed to its consumers; there is no package-level
// instance.
type Provider struct {
	client api
	store  *session.Store
	logger logging.Logger
}

func NewProvider(client api, store *session.Store, logger logging.Logger) *Provider {
	p := &Provider{client: client, store: store, logger: logger}

	// When the transport rotates tokens mid-call, keep the cache current.
	// A failed write only costs the next restart a re-login.
	client.OnTokensRefreshed(func(accessToken, refreshToken string) {
		if err := store.SaveTokens(context.Background(), accessToken, refreshToken); err != nil {
			logger.Warn(context.Background(), "failed to persist refreshed tokens", "error", err)
		}
	})

	return p
}

// Restore seeds the transport with the cached token pair, if any. Called
// once at startup.
func (p *Provider) Restore(ctx context.Context) error {
	sess, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading cached session: %w", err)
	}
	if sess == nil {
		return nil
	}
	p.client.SetTokens(sess.AccessToken, sess.RefreshToken)
	return nil
}

// CurrentIdentity returns the authenticated subject for the cached
// session, verified against the server. No cached session yields
// common.ErrNoSession; an unreachable provider yields
// common.ErrUpstreamUnavailable. Callers treat both as "no identity".
func (p *Provider) CurrentIdentity(ctx context.Context) (*Identity, error) {
	sess, err := p.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading cached session: %w", err)
	}
	if sess == nil {
		return nil, common.ErrNoSession
	}

	profile, err := p.client.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, common.ErrNoSession
		}
		return nil, err
	}

	return &Identity{UserID: profile.ID, Username: sess.Username}, nil
}

// SignIn obtains a token pair for the credentials and persists the new
// session, replacing any previous one.
func (p *Provider) SignIn(ctx context.Context, username string, password []byte) error {
	if err := p.client.Login(ctx, username, password); err != nil {
		return err
	}

	profile, err := p.client.GetProfile(ctx)
	if err != nil {
		return err
	}

	access, refresh := p.client.Tokens()
	sess := &session.Session{
		UserID:       profile.ID,
		Username:     username,
		AccessToken:  access,
		RefreshToken: refresh,
	}
	if err := p.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("error caching session: %w", err)
	}
	return nil
}

// SignOut revokes the refresh token server-side and clears the local
// cache. Provider errors are logged and swallowed; from the caller's
// viewpoint the session is always terminated. Safe to call with no
// active session.
func (p *Provider) SignOut(ctx context.Context) {
	if err := p.client.Logout(ctx); err != nil {
		p.logger.Warn(ctx, "sign-out: server revocation failed", "error", err)
	}
	p.client.SetTokens("", "")
	if err := p.store.Clear(ctx); err != nil {
		p.logger.Warn(ctx, "sign-out: failed to clear cached session", "error", err)
	}
}
