// Package auth issues and verifies the stateless bearer tokens used on cart
// routes. Tokens carry no expiry claim: they stay valid until the signing
// secret changes. That matches the tokens already held by existing clients;
// adding an exp claim would invalidate them.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when no token was supplied at all.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken covers bad signatures and malformed payloads.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims embeds the user identity under a nested "user" object, the shape the
// previous backend signed.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// UserClaim is the identity payload inside the token.
type UserClaim struct {
	ID int64 `json:"id"`
}

// TokenService signs and verifies bearer tokens with a shared HS256 secret.
type TokenService struct {
	secret []byte
}

// NewTokenService returns a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for the user. Deterministic for a given user and secret.
func (s *TokenService) Issue(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: UserClaim{ID: userID},
	})
	return token.SignedString(s.secret)
}

// Verify checks the signature and returns the embedded user id.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, ErrMissingToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	if claims.User.ID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.User.ID, nil
}
