package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind sorts checkout failures by what the user can do about
// them: fix configuration (admin), satisfy a precondition, or retry.
type FailureKind string

const (
	KindConfiguration FailureKind = "configuration"
	KindValidation    FailureKind = "validation"
	KindExternal      FailureKind = "external"
	KindMalformed     FailureKind = "malformed_response"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrNotAuthenticated    = errors.New("caller is not authenticated")
	ErrInsufficientBalance = errors.New("insufficient token balance")
)

// Error is a checkout failure carrying a user-facing message alongside
// the underlying cause. Every failure is retriable from the caller's
// side; nothing here is fatal to the process.
type Error struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("checkout: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("checkout: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func failure(kind FailureKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// notConfiguredMessage hides configuration detail from non-admins on
// purpose; shoppers get a generic unavailability notice.
func notConfiguredMessage(isAdmin bool) string {
	if isAdmin {
		return "Card payments are not configured. Set the gateway secret key and allowed countries in the admin panel before accepting payments."
	}
	return "Checkout is temporarily unavailable. Please try again later or use an alternative payment method."
}

// friendlyTokenMessage maps known ledger error text to friendlier
// wording, falling back to a generic retry prompt.
func friendlyTokenMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "Insufficient balance"):
		return "Insufficient token balance to complete this purchase."
	case strings.Contains(msg, "Unauthorized"):
		return "You must be logged in to complete this purchase."
	default:
		return "Failed to complete purchase. Please try again."
	}
}

// friendlyCardMessage does the same for gateway errors. Admins see the
// raw error; shoppers get generic text.
func friendlyCardMessage(err error, isAdmin bool) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not configured"):
		return notConfiguredMessage(isAdmin)
	case strings.Contains(msg, "Unauthorized"):
		return "You must be logged in to complete checkout."
	default:
		if isAdmin {
			return "Checkout failed: " + msg
		}
		return "Unable to process checkout. Please try again or contact support."
	}
}
