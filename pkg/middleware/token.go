package middleware

import (
	"net/http"
	"strings"

	tokensvc "trainforum/internal/token"
	"trainforum/pkg/model"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware parses the bearer access token and stashes the caller's
// identity in the request context.
func AuthMiddleware(tokens *tokensvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Msg: "Invalid token format",
			})
			return
		}
		claims, err := tokens.ParseAccessToken(bearerToken[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Msg: "Invalid or expired token",
			})
			return
		}
		identity := &model.Identity{
			UserID:   claims.Subject,
			UserName: claims.Name,
			Roles:    claims.Roles,
		}
		c.Set("identity", identity)
		c.Next()
	}
}

// RequireRoles passes callers holding at least one of the given roles.
// Runs behind AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := mapset.NewSet(roles...)
	return func(c *gin.Context) {
		v, exists := c.Get("identity")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.Response{
				Msg: "Login Required",
			})
			return
		}
		identity := v.(*model.Identity)
		if !allowed.ContainsAny(identity.Roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, model.Response{
				Msg: "Insufficient role",
			})
			return
		}
		c.Next()
	}
}
