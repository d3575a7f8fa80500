package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/checkout"
	"github.com/artisanlearn/storefront-api/models"
	"github.com/artisanlearn/storefront-api/querycache"
)

func callerFromContext(c *gin.Context) checkout.Caller {
	caller := checkout.Caller{}
	if uid, ok := c.Get("user_id"); ok {
		caller.UserID, _ = uid.(string)
	}
	if role, ok := c.Get("role"); ok {
		if r, ok := role.(string); ok {
			caller.Role = models.UserRole(r)
		}
	}
	if sid, ok := c.Get("session_id"); ok {
		caller.SessionID, _ = sid.(string)
	}
	if caller.SessionID == "" {
		caller.SessionID = caller.UserID
	}
	return caller
}

// requestOrigin prefers the browser-sent Origin header; the gateway
// sends the shopper back to {origin}/payment-success or /payment-failure.
func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// statusFor maps the failure taxonomy onto HTTP statuses.
func statusFor(err *checkout.Error) int {
	switch err.Kind {
	case checkout.KindValidation:
		return http.StatusBadRequest
	case checkout.KindConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func renderFailure(c *gin.Context, err error) {
	var ckErr *checkout.Error
	if errors.As(err, &ckErr) {
		c.JSON(statusFor(ckErr), gin.H{
			"state": checkout.StateFailed,
			"kind":  ckErr.Kind,
			"error": ckErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"state": checkout.StateFailed, "error": err.Error()})
}

// POST /user/checkout/card
// On success the client navigates the browser to redirect_url; the cart
// survives until the gateway confirms payment via /user/checkout/confirm.
func CardCheckout(rec *checkout.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rec.CardCheckout(c.Request.Context(), callerFromContext(c), requestOrigin(c))
		if err != nil {
			renderFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /user/checkout/tokens
func TokenCheckout(rec *checkout.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := rec.TokenCheckout(c.Request.Context(), callerFromContext(c))
		if err != nil {
			renderFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"state":   result.State,
			"totals":  result.Totals,
			"message": fmt.Sprintf("Purchase completed! You've earned %d bonus tokens!", result.Totals.BonusTokens),
		})
	}
}

// POST /user/checkout/confirm
// Landing call for the gateway's success redirect: settles the cart and
// refreshes cached balance and history.
func ConfirmCardPayment(rec *checkout.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := callerFromContext(c)
		totals := rec.ConfirmCardPayment(caller.SessionID)
		c.JSON(http.StatusOK, gin.H{
			"state":   checkout.StateSuccess,
			"totals":  totals,
			"message": "Payment successful! You earned bonus tokens (5% of purchase).",
		})
	}
}

// POST /user/checkout/cancel
// Landing call for the failure redirect. The cart is left intact so the
// shopper can retry.
func CancelCardPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"state":   checkout.StateIdle,
			"message": "Payment was not completed. Your cart is unchanged.",
		})
	}
}

// GET /user/checkout/availability
// Lets the client decide which payment tabs to enable.
func Availability(gateway *backend.GatewayClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := cache.Get(querycache.KeyStripeConfigured, ""); ok {
			c.JSON(http.StatusOK, gin.H{"card_available": v.(bool)})
			return
		}
		configured, err := gateway.IsConfigured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to query payment gateway"})
			return
		}
		cache.Set(querycache.KeyStripeConfigured, "", configured)
		c.JSON(http.StatusOK, gin.H{"card_available": configured})
	}
}
