package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=user admin"`
}

// POST /auth/session
// Backchannel for the identity provider: after it verifies a login it
// exchanges the user identity for a session JWT here. Protected by the
// admin API key at the route level.
func CreateUserSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SessionRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		expiresAt := time.Now().Add(7 * 24 * time.Hour)
		token, err := issueToken(input.UserID, input.Role, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}
