package utils

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-note-sync/models"
)

// RefreshAudience is the "aud" claim of refresh tokens. Access tokens carry
// no audience, so neither kind is accepted in place of the other.
const RefreshAudience = "refresh"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - Audience  (aud): only when audience is given
//
// issuer, userID and signKey are required, tokenDuration must be non-zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("my-service", "u-42", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string, audience ...string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	if len(audience) > 0 {
		claims.Audience = audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Audience (aud) check: the token must carry audience when it is given,
//     and must carry none otherwise
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service", "")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if audience == "" && len(parsed.Audience) > 0 {
		return models.Token{}, errors.New("unexpected token audience")
	}
	if audience != "" && !slices.Contains(parsed.Audience, audience) {
		return models.Token{}, errors.New("token audience mismatch")
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	parsed.UserID = userID

	return *parsed, nil
}

// TokenExpiresWithin reports whether tokenString expires within d. A token
// that cannot be parsed or has no expiry is treated as expired. The
// signature is not verified: the client only uses this to decide whether to
// refresh before dialing.
func TokenExpiresWithin(tokenString string, d time.Duration) bool {
	claims, err := parseUnverified(tokenString)
	if err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Until(exp.Time) <= d
}

func parseUnverified(tokenString string) (jwt.MapClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
