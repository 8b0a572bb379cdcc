package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atrium-inc/atrium/internal/shared/utils"
)

const (
	// UserIDHeader carries the authenticated user ID set by the edge gateway.
	// Authentication itself happens upstream; this service trusts the header.
	UserIDHeader = "X-User-ID"

	// UserIDKey is the gin context key handlers read the user ID from.
	UserIDKey = "user_id"
)

// Identity extracts the gateway-authenticated user ID into the request
// context. Requests without a valid header are rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing user identity")
			c.Abort()
			return
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid user identity")
			c.Abort()
			return
		}

		c.Set(UserIDKey, uint(userID))
		c.Next()
	}
}

// CurrentUserID returns the user ID placed in the context by Identity.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(UserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
