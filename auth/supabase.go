// Package auth verifies session tokens issued by the hosted auth provider
// and exposes the current caller's identity to the rest of the application.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNoToken      = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid access token")
)

// Identity is the authenticated caller as reported by the auth provider:
// the provider's user id plus the profile fields carried in the token.
type Identity struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Username  string
}

// Claims mirrors the payload of an access token issued by the auth provider.
// Profile fields ride along in the user_metadata object set at sign-up.
type Claims struct {
	jwt.RegisteredClaims
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// TokenVerifier validates provider-issued access tokens.
type TokenVerifier struct {
	secret   []byte
	audience string
}

// NewTokenVerifier creates a verifier for HS256 tokens signed with the
// project's JWT secret. audience may be empty to skip the audience check.
func NewTokenVerifier(secret []byte, audience string) *TokenVerifier {
	return &TokenVerifier{secret: secret, audience: audience}
}

// Verify parses and validates tokenString and returns the caller's identity.
func (v *TokenVerifier) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if v.audience != "" {
		found := false
		for _, aud := range claims.Audience {
			if aud == v.audience {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: wrong audience", ErrInvalidToken)
		}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	ident := &Identity{
		ID:        userID,
		Email:     claims.Email,
		FirstName: metadataString(claims.UserMetadata, "first_name"),
		LastName:  metadataString(claims.UserMetadata, "last_name"),
		Username:  metadataString(claims.UserMetadata, "username"),
	}
	return ident, nil
}

// Sign mints a token for ident, used by tests and local tooling. Production
// tokens come from the auth provider itself.
func (v *TokenVerifier) Sign(ident Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: ident.Email,
		Role:  "authenticated",
		UserMetadata: map[string]any{
			"first_name": ident.FirstName,
			"last_name":  ident.LastName,
			"username":   ident.Username,
		},
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func metadataString(metadata map[string]any, key string) string {
	if metadata == nil {
		return ""
	}
	if value, ok := metadata[key].(string); ok {
		return value
	}
	return ""
}
