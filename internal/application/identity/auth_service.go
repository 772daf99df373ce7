package identity

import (
	"context"
	"strings"

	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// errInvalidCredentials deliberately does not reveal whether the email or
// the password was wrong
var errInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")

// AuthService handles login, logout and token refresh
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user by email and password and issues a token pair.
// Inactive and soft-deleted users cannot log in.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		s.logger.Info("Login failed: user not found", zap.String("email", email))
		return nil, errInvalidCredentials
	}

	if !user.CheckPassword(input.Password) {
		s.logger.Info("Login failed: bad password", zap.String("email", email))
		return nil, errInvalidCredentials
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to issue tokens")
	}

	s.logger.Info("User logged in",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return &LoginResult{User: *ToUserResponse(user), Tokens: tokens}, nil
}

// Logout revokes the presented tokens. Each token is blacklisted for its
// remaining lifetime; tokens that no longer parse are blacklisted for the
// refresh lifetime as a ceiling.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if err := s.revoke(ctx, accessToken, auth.TokenTypeAccess); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := s.revoke(ctx, refreshToken, auth.TokenTypeRefresh); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) revoke(ctx context.Context, token string, tokenType auth.TokenType) error {
	ttl := s.jwtService.GetRefreshTokenExpiration()

	var claims *auth.Claims
	var err error
	switch tokenType {
	case auth.TokenTypeRefresh:
		claims, err = s.jwtService.ValidateRefreshToken(token)
	default:
		claims, err = s.jwtService.ValidateAccessToken(token)
	}
	if err == nil {
		ttl = claims.GetRemainingTTL()
	}
	if ttl <= 0 {
		// already expired, nothing to revoke
		return nil
	}

	if err := s.blacklist.Revoke(ctx, token, ttl); err != nil {
		s.logger.Error("Failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL", "Failed to revoke token")
	}
	return nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The used
// refresh token is revoked so it cannot be replayed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	revoked, err := s.blacklist.IsRevoked(ctx, refreshToken)
	if err != nil {
		s.logger.Error("Blacklist lookup failed", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to verify token")
	}
	if revoked {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Token has been revoked")
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "User no longer exists")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("UNAUTHORIZED", "User is inactive")
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL", "Failed to issue tokens")
	}

	if ttl := claims.GetRemainingTTL(); ttl > 0 {
		if err := s.blacklist.Revoke(ctx, refreshToken, ttl); err != nil {
			s.logger.Warn("Failed to revoke used refresh token", zap.Error(err))
		}
	}

	s.logger.Info("Tokens refreshed", zap.Uint("user_id", user.ID))
	return tokens, nil
}

// CurrentUser loads the non-deleted user behind a set of validated claims
func (s *AuthService) CurrentUser(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}
