package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and sets userID and userRole
// on the request context. Validated token hashes are cached in Redis so the
// user store is only consulted on cache misses; cache failures degrade to a
// straight account lookup.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
			c.Abort()
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set("userID", userID)
					c.Set("userRole", role)
					c.Next()
					return
				}
				// A different token for this user is cached; fall through to
				// the account check rather than trusting the stale entry.
			} else if err != redis.Nil {
				logger.Warn("auth cache read failed, falling back to DB", zap.Error(err))
			}
		}

		// Cache miss: the token signature already passed, so the remaining
		// check is that the account still exists and is active.
		usr, err := users.GetByID(userID)
		if err != nil || usr == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication error")
			c.Abort()
			return
		}
		if usr.Status != models.UserStatusActive {
			utils.JSONError(c, http.StatusForbidden, "Account is deactivated. Please contact administrator.")
			c.Abort()
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("userRole", usr.Role)
		c.Next()
	}
}

// RequireRoles aborts unless the authenticated user carries one of the given
// roles. It must run after JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, ok := c.Get("userRole")
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization")
			c.Abort()
			return
		}
		role, _ := roleVal.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Insufficient permissions")
		c.Abort()
	}
}

// RequireSelfOrRoles aborts unless the authenticated user is operating on
// their own record (the :id route parameter) or carries one of the given
// roles. It must run after JWTAuthMiddleware.
func RequireSelfOrRoles(roles ...string) gin.HandlerFunc {
	requireRoles := RequireRoles(roles...)
	return func(c *gin.Context) {
		if userID := c.GetString("userID"); userID != "" && userID == c.Param("id") {
			c.Next()
			return
		}
		requireRoles(c)
	}
}
