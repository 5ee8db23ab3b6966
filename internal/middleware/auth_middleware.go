package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/pkg/util"
)

const authClaimsKey = "auth_claims"

// OptionalAuth parses a Bearer token when one is sent and stashes its claims
// for handlers that want them. It never rejects a request; identity in this
// API is carried by explicit parameters and tokens are informational.
func OptionalAuth(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if claims, err := util.ValidateToken(token, cfg.Secret); err == nil {
				c.Set(authClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetAuthClaims returns the parsed token claims, if a valid token was sent
func GetAuthClaims(c *gin.Context) (*util.Claims, bool) {
	if v, exists := c.Get(authClaimsKey); exists {
		if claims, ok := v.(*util.Claims); ok {
			return claims, true
		}
	}
	return nil, false
}
