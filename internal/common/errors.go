// Package common defines shared constants and sentinel errors used across
// client and server layers of Waygate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Authorization outcomes. These are never shown to the end user
	// directly; the navigation layer converts them to redirects.
	ErrNoSession = errors.New("no session")
	ErrWrongRole = errors.New("wrong role")

	// Collaborator availability.
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrUpstreamUnavailable    = errors.New("upstream unavailable")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrInvalidScore = errors.New("score out of range")
	ErrValidation   = errors.New("validation error")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
