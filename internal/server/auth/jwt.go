// Package auth issues and validates the self-contained access tokens used
// for authentication. Tokens are HS256-signed JWTs carrying the user ID and
// admin flag; they are never persisted and expire by elapsed time alone.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/miniblog/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in an access token: the standard
// registered claims plus the authenticated user's ID and admin flag.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}

// GenerateToken signs a new access token for the given user, valid for
// validityDuration from now.
func GenerateToken(userID int64, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the token signature and expiry and returns the
// embedded claims. It fails with common.ErrTokenExpired if the token is past
// its expiry and common.ErrInvalidToken for any other defect.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
