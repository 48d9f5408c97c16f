package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := "u-123"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID {
		t.Errorf("expected subject %q, got %s", userID, claims.Subject)
	}
	if len(claims.Audience) != 0 {
		t.Errorf("expected no audience, got %v", claims.Audience)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u", 0, "key"},
		{"empty key", "iss", "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u-456", 5*time.Minute, "secret-key")

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", "")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != "u-456" {
		t.Errorf("expected userID u-456, got %s", parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_Audience(t *testing.T) {
	access, _ := GenerateJWTToken("iss", "u", time.Hour, "key")
	refresh, _ := GenerateJWTToken("iss", "u", time.Hour, "key", RefreshAudience)

	if _, err := ValidateAndParseJWTToken(refresh.SignedString, "key", "iss", RefreshAudience); err != nil {
		t.Fatalf("expected refresh token to be valid, got %v", err)
	}
	if _, err := ValidateAndParseJWTToken(refresh.SignedString, "key", "iss", ""); err == nil {
		t.Error("expected refresh token to be rejected as an access token")
	}
	if _, err := ValidateAndParseJWTToken(access.SignedString, "key", "iss", RefreshAudience); err == nil {
		t.Error("expected access token to be rejected as a refresh token")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "u", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", "")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken("test-issuer", "u", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", "")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "u", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", "")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", "")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestTokenExpiresWithin(t *testing.T) {
	fresh, _ := GenerateJWTToken("iss", "u", time.Hour, "key")
	stale, _ := GenerateJWTToken("iss", "u", 10*time.Second, "key")

	if TokenExpiresWithin(fresh.SignedString, time.Minute) {
		t.Error("fresh token reported as expiring")
	}
	if !TokenExpiresWithin(stale.SignedString, time.Minute) {
		t.Error("stale token not reported as expiring")
	}
	if !TokenExpiresWithin("garbage", time.Minute) {
		t.Error("garbage token not reported as expired")
	}
}
