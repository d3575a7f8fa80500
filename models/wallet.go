package models

import "time"

type TransactionType string

const (
	TransactionEarn     TransactionType = "earn"
	TransactionMint     TransactionType = "mint"
	TransactionSpend    TransactionType = "spend"
	TransactionTransfer TransactionType = "transfer"
)

// TokenTransaction is one ledger entry as reported by the external
// ledger service.
type TokenTransaction struct {
	TransactionType TransactionType `json:"transaction_type"`
	Amount          int64           `json:"amount"`
	Description     string          `json:"description"`
	From            string          `json:"from,omitempty"`
	To              string          `json:"to,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// UserProfile is the slice of the backend profile record this service
// reads. The token balance here is a cached view; the ledger is
// authoritative.
type UserProfile struct {
	Username         string    `json:"username"`
	Bio              string    `json:"bio"`
	Role             UserRole  `json:"role"`
	TokenBalance     int64     `json:"token_balance"`
	PurchasedContent []string  `json:"purchased_content"`
	CreatedAt        time.Time `json:"created_at"`
}
