package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a string that is not a decodable JWT.
var ErrInvalidToken = errors.New("invalid token")

// tokenClaims is the wire shape of an ArangoDB-issued token.
type tokenClaims struct {
	PreferredUsername string `json:"preferred_username,omitempty"`
	ServerID          string `json:"server_id,omitempty"`
	jwtlib.RegisteredClaims
}

// Claims holds the decoded claims of a server-issued token.
type Claims struct {
	Issuer            string
	PreferredUsername string
	ServerID          string
	IssuedAt          time.Time
	// ExpiresAt is zero when the token carries no exp claim.
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry has passed. Tokens without
// an exp claim never expire.
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// Decode extracts the claims of a token without verifying its signature.
// Only the issuing server holds the signing secret, so expiry and
// username read this way are informational, never proof of validity.
func Decode(token string) (*Claims, error) {
	parser := jwtlib.NewParser()
	var raw tokenClaims
	if _, _, err := parser.ParseUnverified(token, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := &Claims{
		Issuer:            raw.Issuer,
		PreferredUsername: raw.PreferredUsername,
		ServerID:          raw.ServerID,
	}
	if raw.IssuedAt != nil {
		claims.IssuedAt = raw.IssuedAt.Time
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims, nil
}
