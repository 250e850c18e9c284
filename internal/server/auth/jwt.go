// Package auth provides JWT access-token handling and password hashing for
// the Waygate server. Access tokens carry only the subject id; roles are
// resolved from the profile store on every request so role changes take
// effect immediately.
package auth

import (
	"errors"
	"time"

	"github.com/akarpovs/waygate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs an HS256 access token for userID valid for
// validityDuration from now.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates tokenString and returns the embedded user id.
// Expired tokens map to common.ErrTokenExpired so the interceptor can signal
// the client to refresh; any other validation failure is common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
