package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecobridge/internal/responses"
)

// currentUserID pulls the authenticated user id set by the auth middleware.
// Responds 401 and returns false if it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userId")
	if !exists {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return uuid.Nil, false
	}

	return userID, true
}
