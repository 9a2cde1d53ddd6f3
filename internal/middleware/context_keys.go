package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey   = contextKey("userID")
	tenantIDKey = contextKey("tenantID")
)

// GetUserIDFromContext retrieves the authenticated user ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetTenantIDFromContext retrieves the pre-verified tenant ID. Every call
// into the core is scoped by this value.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, tenantIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		if s, ok := val.(string); ok {
			return s, true
		}
		return "", false
	}
	if val := c.Request.Context().Value(key); val != nil {
		if s, ok := val.(string); ok {
			return s, true
		}
	}
	return "", false
}
