package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HeaderSharerUserID carries the caller's numeric user id. The value is
// trusted as-is; there is no authentication behind it.
const HeaderSharerUserID = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

// Identity requires the identity header on every route it guards.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "IDENTITY_REQUIRED",
					"message": "Missing " + HeaderSharerUserID + " header",
				},
			})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "IDENTITY_INVALID",
					"message": HeaderSharerUserID + " must be a positive integer",
				},
			})
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

// CallerID returns the user id stored by Identity, zero when absent.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserIDKey)
}
