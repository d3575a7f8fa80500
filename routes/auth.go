package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/auth"
	"github.com/artisanlearn/storefront-api/middleware"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestSession())

		// Identity-provider backchannel: exchanges a verified login for
		// a session JWT. Gated by the admin API key.
		authGroup.POST("/session", middleware.ValidateAPIKey, auth.CreateUserSession())
	}
}
