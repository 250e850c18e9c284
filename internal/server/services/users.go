// Package services contains server-side business logic. This file implements
// UserService, which handles login, token refresh and logout, profile lookup,
// and bulk account provisioning.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/akarpovs/waygate/internal/dbx"
	"github.com/akarpovs/waygate/internal/server/auth"
	"github.com/akarpovs/waygate/internal/server/config"
	"github.com/akarpovs/waygate/internal/server/models"
	"github.com/akarpovs/waygate/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AccountInput is one account in a bulk provisioning request. Role arrives
// as a wire string and is validated against the closed role set.
type AccountInput struct {
	Username string
	Password string
	Role     string
}

// UserService provides authentication-related operations:
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token (idempotent)
// - GetProfile: fetch the stored profile, including the current role
// - CreateAccounts: bulk account provisioning for admins
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login verifies the password against the stored argon2id hash and, on
// success, returns a new TokenPair. Unknown users and wrong passwords both
// yield ErrUnauthorized.
func (s *UserService) Login(ctx context.Context, username string, password []byte) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrInternal
	}

	if !auth.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	return s.generateTokenPair(ctx, user.ID, s.db)
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %v", err)
	}
	if token.Expires.Before(time.Now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.RefreshTokens(tx)
		if err := repoTx.Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %v", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the refresh token. Revoking a token that does not exist is
// not an error, so repeated logouts stay safe.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	repo := s.repomanager.RefreshTokens(s.db)
	if err := repo.Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %v", err)
	}
	return nil
}

// GetProfile returns the stored profile for userID. The role comes from the
// store, never from the token, so a role change applies on the next call.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// CreateAccounts provisions accounts in bulk. Each account is processed
// independently: invalid or duplicate entries are reported in the returned
// error list while the rest are still created. Only a store failure aborts
// the run.
func (s *UserService) CreateAccounts(ctx context.Context, accounts []AccountInput) (int64, []string, error) {
	repo := s.repomanager.Users(s.db)

	var created int64
	var errs []string
	for _, a := range accounts {
		if a.Username == "" || a.Password == "" {
			errs = append(errs, fmt.Sprintf("%s: username and password are required", a.Username))
			continue
		}
		role := common.ParseRole(a.Role)
		if role == common.RoleUnknown {
			errs = append(errs, fmt.Sprintf("%s: unknown role %q", a.Username, a.Role))
			continue
		}

		user, err := s.buildUser(a.Username, []byte(a.Password), role)
		if err != nil {
			return created, errs, common.ErrInternal
		}

		if _, err := repo.Create(ctx, user); err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				errs = append(errs, fmt.Sprintf("%s: already exists", a.Username))
				continue
			}
			return created, errs, fmt.Errorf("error creating user: %v", err)
		}
		created++
	}
	return created, errs, nil
}

// EnsureAdmin creates the bootstrap admin account on first startup. If a
// user with the given name already exists, nothing is changed.
func (s *UserService) EnsureAdmin(ctx context.Context, username string, password []byte) error {
	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("error checking admin account: %v", err)
	}

	user, err := s.buildUser(username, password, common.RoleAdmin)
	if err != nil {
		return common.ErrInternal
	}
	if _, err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating admin account: %v", err)
	}
	return nil
}

// --- helpers below ---

func (s *UserService) buildUser(username string, password []byte, role common.Role) (*models.User, error) {
	salt, err := auth.NewSalt()
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username:     username,
		PasswordHash: auth.HashPassword(password, salt),
		Salt:         salt,
		Role:         role,
	}, nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
