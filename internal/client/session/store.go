package session

import (
	"context"
	"fmt"
)

// Keys under which the cached session is stored.
const (
	keyUserID       = "user_id"
	keyUsername     = "username"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// Session is the locally cached authentication state.
type Session struct {
	UserID       string
	Username     string
	AccessToken  string
	RefreshToken string
}

// Store is a typed view over the key/value repository.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Save persists a full session, replacing whatever was cached before.
func (s *Store) Save(ctx context.Context, sess *Session) error {
	pairs := map[string]string{
		keyUserID:       sess.UserID,
		keyUsername:     sess.Username,
		keyAccessToken:  sess.AccessToken,
		keyRefreshToken: sess.RefreshToken,
	}
	for k, v := range pairs {
		if err := s.repo.Set(ctx, k, []byte(v)); err != nil {
			return fmt.Errorf("error saving session: %w", err)
		}
	}
	return nil
}

// SaveTokens replaces just the token pair, keeping the cached subject.
func (s *Store) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.repo.Set(ctx, keyAccessToken, []byte(accessToken)); err != nil {
		return fmt.Errorf("error saving access token: %w", err)
	}
	if err := s.repo.Set(ctx, keyRefreshToken, []byte(refreshToken)); err != nil {
		return fmt.Errorf("error saving refresh token: %w", err)
	}
	return nil
}

// Load returns the cached session, or nil when no session is cached.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	access, err := s.repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	refresh, err := s.repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return nil, err
	}
	if len(access) == 0 && len(refresh) == 0 {
		return nil, nil
	}

	userID, err := s.repo.Get(ctx, keyUserID)
	if err != nil {
		return nil, err
	}
	username, err := s.repo.Get(ctx, keyUsername)
	if err != nil {
		return nil, err
	}

	return &Session{
		UserID:       string(userID),
		Username:     string(username),
		AccessToken:  string(access),
		RefreshToken: string(refresh),
	}, nil
}

// Clear wipes the cached session. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
