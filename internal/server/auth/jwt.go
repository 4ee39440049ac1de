package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set embedded in issued tokens: the registered
// claims carry the account id (Subject) and the validity window, plus a
// custom username claim. Password material never appears here.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// GenerateToken issues a signed bearer token for the given account.
// The token is signed with HMAC-SHA-512 and expires validityDuration
// after issuance. An empty secret key is a configuration fault, not a
// per-request condition.
func GenerateToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("%w: empty signing secret", common.ErrorConfiguration)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of a token string and
// returns its claims. Expired tokens map to common.ErrorTokenExpired,
// everything else that fails validation to common.ErrorInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInvalidToken, err)
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	return claims, nil
}
