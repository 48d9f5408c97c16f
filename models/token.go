package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID returns the user identifier stored in the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the body of a successful token request.
type TokenPair struct {
	// AccessToken is the bearer token attached to sync connections and REST
	// requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new access token.
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the expiry of AccessToken.
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenRequest exchanges a refresh token for a fresh [TokenPair].
type TokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}
