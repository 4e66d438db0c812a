package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
)

// userIDKey and roleKey are the keys used to store the authenticated
// caller's identity and declared role in the request context.
const (
	userIDKey = contextKey("userID")
	roleKey   = contextKey("role")
)

// GetUserIDFromContext retrieves the authenticated caller's ID from the
// request context. It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetRoleFromContext retrieves the caller's declared role from the request
// context. It returns the role and a boolean indicating if it was found.
func GetRoleFromContext(c *gin.Context) (domain.Role, bool) {
	role, ok := c.Request.Context().Value(roleKey).(domain.Role)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
