package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/cafeorders/internal/server/http/dto"
)

// AdminKeyHeader carries the admin key.
const AdminKeyHeader = "X-Admin-Key"

// KeyVerifier checks admin keys.
type KeyVerifier interface {
	Enabled() bool
	Verify(key string) error
}

// AdminKeyRequired rejects requests without a valid admin key when verification is enabled.
func AdminKeyRequired(verifier KeyVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil || !verifier.Enabled() {
			c.Next()
			return
		}
		if err := verifier.Verify(c.GetHeader(AdminKeyHeader)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
			return
		}
		c.Next()
	}
}
