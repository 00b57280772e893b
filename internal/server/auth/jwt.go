package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/blogql/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var timeNow = time.Now

// Claims is the token payload: the standard claims plus the id of the user
// the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// GenerateToken signs an HS256 token for userID that expires validityDuration
// after issuance.
func GenerateToken(userID int64, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := timeNow()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies tokenString and returns the user id it carries.
// Expired tokens yield common.ErrTokenExpired; every other failure wraps
// common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
