package tokens

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Claims is the bearer-token payload: the subject user id plus the
// registered expiry claim.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// Service issues and verifies stateless HS256 bearer tokens. Tokens are
// not revocable; expiry is the only termination mechanism.
type Service struct {
	Secret []byte
	TTL    time.Duration
}

func (s Service) Issue(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify strips an optional "Bearer " prefix, checks the signature and
// expiry and returns the subject user id. Failures are classified as
// ErrExpired or ErrInvalid, never returned raw.
func (s Service) Verify(raw string) (uint, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return s.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	if !tkn.Valid {
		return 0, ErrInvalid
	}

	return claims.UserID, nil
}
