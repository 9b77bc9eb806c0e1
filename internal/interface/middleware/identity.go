package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// CtxUserIDKey is where handlers read the resolved subject from.
const CtxUserIDKey = "userID"

// Identity resolves the requesting subject from the access_token cookie or
// an Authorization bearer token, verifying the session is still live in
// Redis. It never aborts: an unresolved identity leaves the key unset and
// each handler decides whether that is a 401. List endpoints stay public
// this way while create endpoints deny.
func Identity(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("access_token")
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}
		if rdb != nil {
			n, err := rdb.Exists(c.Request.Context(), helpers.SessionKey(claims.UserID)).Result()
			if err != nil || n == 0 {
				c.Next()
				return
			}
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
