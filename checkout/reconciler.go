package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/models"
	"github.com/artisanlearn/storefront-api/querycache"
)

// Ledger is the slice of the external token ledger this package calls.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	SpendTokens(ctx context.Context, userID string, amount int64, description string) error
}

// Gateway is the payment gateway adapter contract.
type Gateway interface {
	IsConfigured(ctx context.Context) (bool, error)
	CreateCheckoutSession(ctx context.Context, items []models.LineItem, successURL, cancelURL string) (models.CheckoutSession, error)
}

// CartAccess is what the reconciler needs from the cart store.
type CartAccess interface {
	Items(sessionID string) []models.CartItem
	ClearCart(sessionID string)
}

// CacheInvalidator marks cached backend reads stale after a confirmed
// payment so the next read refetches.
type CacheInvalidator interface {
	Invalidate(keys ...string)
}

// State tracks one checkout attempt. Terminal states return to idle on
// the next attempt; nothing is carried between attempts.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Caller identifies who is checking out. Guests hold carts but cannot
// spend tokens.
type Caller struct {
	SessionID string
	UserID    string
	Role      models.UserRole
}

func (c Caller) IsAdmin() bool { return c.Role == models.RoleAdmin }

func (c Caller) Authenticated() bool {
	return c.UserID != "" && c.Role != models.RoleGuest
}

// Result is the outcome of a successful checkout attempt. RedirectURL
// is set only on the card path.
type Result struct {
	State       State                `json:"state"`
	Method      models.PaymentMethod `json:"method"`
	RedirectURL string               `json:"redirect_url,omitempty"`
	Totals      Totals               `json:"totals"`
}

// CompletedCheckout is broadcast to listeners once a payment is
// confirmed.
type CompletedCheckout struct {
	SessionID   string               `json:"session_id"`
	Method      models.PaymentMethod `json:"method"`
	Totals      Totals               `json:"totals"`
	Description string               `json:"description"`
	CompletedAt time.Time            `json:"completed_at"`
}

// Reconciler decides checkout eligibility per payment path, drives the
// external calls, and settles local state (cart, cache) afterwards. The
// cart is only ever cleared on confirmed success, so a failed or slow
// external call never loses the shopper's selections.
type Reconciler struct {
	carts   CartAccess
	ledger  Ledger
	gateway Gateway
	cache   CacheInvalidator
	notify  func(CompletedCheckout)
}

func NewReconciler(carts CartAccess, ledger Ledger, gateway Gateway, cache CacheInvalidator) *Reconciler {
	return &Reconciler{carts: carts, ledger: ledger, gateway: gateway, cache: cache}
}

// OnCompleted registers a hook for confirmed checkouts. Used for the
// websocket feed; delivery is fire-and-forget.
func (r *Reconciler) OnCompleted(fn func(CompletedCheckout)) {
	r.notify = fn
}

// CardCheckout requests a hosted checkout session for the caller's cart.
// On success the caller redirects the browser to Result.RedirectURL; the
// cart stays intact until the gateway sends the shopper back to the
// success URL (ConfirmCardPayment).
func (r *Reconciler) CardCheckout(ctx context.Context, caller Caller, origin string) (Result, error) {
	items := r.carts.Items(caller.SessionID)
	if len(items) == 0 {
		return failed(), failure(KindValidation, "Your cart is empty.", ErrEmptyCart)
	}

	configured, err := r.gateway.IsConfigured(ctx)
	if err != nil {
		return failed(), failure(KindExternal, friendlyCardMessage(err, caller.IsAdmin()), err)
	}
	if !configured {
		return failed(), failure(KindConfiguration, notConfiguredMessage(caller.IsAdmin()), backend.ErrGatewayNotConfigured)
	}

	session, err := r.gateway.CreateCheckoutSession(ctx,
		LineItems(items),
		origin+"/payment-success",
		origin+"/payment-failure",
	)
	if err != nil {
		if errors.Is(err, backend.ErrMissingRedirectURL) {
			return failed(), failure(KindMalformed, friendlyCardMessage(err, caller.IsAdmin()), err)
		}
		return failed(), failure(KindExternal, friendlyCardMessage(err, caller.IsAdmin()), err)
	}

	return Result{
		State:       StateSuccess,
		Method:      models.PaymentMethodCard,
		RedirectURL: session.URL,
		Totals:      ComputeTotals(items),
	}, nil
}

// TokenCheckout spends tokens for the caller's cart. Authentication and
// balance are checked before the ledger is ever called.
func (r *Reconciler) TokenCheckout(ctx context.Context, caller Caller) (Result, error) {
	items := r.carts.Items(caller.SessionID)
	if len(items) == 0 {
		return failed(), failure(KindValidation, "Your cart is empty.", ErrEmptyCart)
	}
	if !caller.Authenticated() {
		return failed(), failure(KindValidation, "You must be logged in to complete this purchase.", ErrNotAuthenticated)
	}

	totals := ComputeTotals(items)

	balance, err := r.ledger.Balance(ctx, caller.UserID)
	if err != nil {
		return failed(), failure(KindExternal, friendlyTokenMessage(err), err)
	}
	if balance < totals.TotalTokens {
		return failed(), failure(KindValidation, "Insufficient token balance to complete this purchase.", ErrInsufficientBalance)
	}

	description := PurchaseDescription(items)
	if err := r.ledger.SpendTokens(ctx, caller.UserID, totals.TotalTokens, description); err != nil {
		return failed(), failure(KindExternal, friendlyTokenMessage(err), err)
	}

	r.settle(caller.SessionID, models.PaymentMethodTokens, totals, description)

	return Result{
		State:  StateSuccess,
		Method: models.PaymentMethodTokens,
		Totals: totals,
	}, nil
}

// ConfirmCardPayment finishes the card path once the gateway has sent
// the shopper back to the success URL: clear the cart, refresh cached
// balance and history.
func (r *Reconciler) ConfirmCardPayment(sessionID string) Totals {
	items := r.carts.Items(sessionID)
	totals := ComputeTotals(items)
	r.settle(sessionID, models.PaymentMethodCard, totals, PurchaseDescription(items))
	return totals
}

func (r *Reconciler) settle(sessionID string, method models.PaymentMethod, totals Totals, description string) {
	r.cache.Invalidate(
		querycache.KeyTokenBalance,
		querycache.KeyTransactionHistory,
		querycache.KeyCurrentUserProfile,
	)
	r.carts.ClearCart(sessionID)
	if r.notify != nil {
		r.notify(CompletedCheckout{
			SessionID:   sessionID,
			Method:      method,
			Totals:      totals,
			Description: description,
			CompletedAt: time.Now(),
		})
	}
}

func failed() Result {
	return Result{State: StateFailed}
}
