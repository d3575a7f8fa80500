package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupCheckoutFeed registers the websocket stream of completed
// checkouts.
func SetupCheckoutFeed(r *gin.Engine, deps Deps) {
	r.GET("/checkout/ws", deps.Hub.Handler)
}
