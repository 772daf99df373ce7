package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myvegiz/backend/internal/domain/identity"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/infrastructure/auth"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware
const (
	ContextClaims  = "auth_claims"
	ContextUserID  = "auth_user_id"
	ContextIsAdmin = "auth_is_admin"
	// ContextToken holds the raw bearer token so logout can revoke it
	ContextToken = "auth_token"
)

// UserFinder resolves token subjects so each request is checked against
// the current user record, not just the claims minted at login
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*identity.User, error)
}

// AuthMiddleware guards routes with JWT bearer tokens
type AuthMiddleware struct {
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	users      UserFinder
	logger     *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, blacklist auth.TokenBlacklist, users UserFinder, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		blacklist:  blacklist,
		users:      users,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores its claims in the
// context. The blacklist is consulted before the signature is checked, so
// a revoked token is rejected even if it would otherwise validate.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Authorization token is required")
			return
		}

		revoked, err := m.blacklist.IsRevoked(c.Request.Context(), token)
		if err != nil {
			m.logger.Error("Blacklist lookup failed", zap.Error(err))
			abortWithStatus(c, dto.StatusInternal, "Failed to verify token")
			return
		}
		if revoked {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		claims, err := m.jwtService.ValidateAccessToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		// Tokens outlive account changes, so the subject is re-checked
		// on every request. Deactivated or deleted users lose access
		// immediately instead of at token expiry.
		user, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				abortUnauthorized(c, "User not authorized")
				return
			}
			m.logger.Error("User lookup failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
			abortWithStatus(c, dto.StatusInternal, "Failed to verify token")
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, "User not authorized")
			return
		}

		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextIsAdmin, claims.IsAdmin)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// RequireAdmin allows only tokens carrying the admin flag. It must run
// after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ContextIsAdmin) {
			abortWithStatus(c, dto.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	abortWithStatus(c, dto.StatusUnauthorized, message)
}

func abortWithStatus(c *gin.Context, status int, message string) {
	c.Set(dto.ContextStatusKey, status)
	c.AbortWithStatusJSON(http.StatusOK, dto.NewErrorResponse(status, message))
}

// GetClaims returns the validated claims set by RequireAuth
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}

// GetUserID returns the authenticated user's internal id
func GetUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetToken returns the raw bearer token of the current request
func GetToken(c *gin.Context) string {
	return c.GetString(ContextToken)
}
