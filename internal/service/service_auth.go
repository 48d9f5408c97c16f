package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// refreshTokenDuration is the lifetime of a refresh token.
const refreshTokenDuration = 30 * 24 * time.Hour

// authService is the concrete implementation of AuthService.
// Access and refresh tokens are HS256 JWTs signed with the same key; a
// refresh token carries the [utils.RefreshAudience] audience, so neither
// kind is accepted in place of the other.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued access token remains
	// valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Email) == "" {
		log.Error().Any("user", user).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}
	return user, nil
}

// CreateTokens issues an access token and a refresh token for user.
func (a *authService) CreateTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, refreshTokenDuration, a.tokenSignKey, utils.RefreshAudience)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:  access.SignedString,
		RefreshToken: refresh.SignedString,
		ExpiresAt:    access.ExpiresAt.Time,
	}, nil
}

// RefreshTokens exchanges a valid refresh token of an existing user for a
// new token pair. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer, utils.RefreshAudience)
	if err != nil {
		log.Err(err).Msg("invalid refresh token")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUser(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("refresh token of unknown user")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	return a.CreateTokens(ctx, user)
}

// ParseToken validates and parses an access token. Any validation failure
// (expired, wrong issuer, refresh token, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, "")
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
