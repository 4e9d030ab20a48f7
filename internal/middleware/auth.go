package middleware

import (
	"net/http"
	"strings"

	"ecomarket/internal/apierror"
	"ecomarket/internal/auth"

	"github.com/gin-gonic/gin"
)

const ClaimsKey = "claims"

// BearerAuth decodes the Authorization bearer token into Claims and aborts
// with 401 on any decode failure. Role and ownership checks are NOT done
// here — handlers call the permission guards explicitly.
func BearerAuth(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		claims, err := codec.Decode(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(apierror.StatusOf(err), apierror.Unauthenticated(err.Error()))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
// Returns nil on public routes where BearerAuth did not run.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
