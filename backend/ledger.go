package backend

import (
	"context"
	"net/url"

	"github.com/artisanlearn/storefront-api/models"
)

// LedgerClient talks to the external token ledger. The ledger owns
// balances, transaction history, and every business rule around them;
// this client only relays calls.
type LedgerClient struct {
	*Client
}

func NewLedgerClient(baseURL string) *LedgerClient {
	return &LedgerClient{Client: newClient(baseURL)}
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type spendRequest struct {
	UserID      string `json:"user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type transferRequest struct {
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type mintRequest struct {
	Recipient   string `json:"recipient"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func (l *LedgerClient) Balance(ctx context.Context, userID string) (int64, error) {
	var resp balanceResponse
	if err := l.getJSON(ctx, "/balance/"+url.PathEscape(userID), &resp); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (l *LedgerClient) SpendTokens(ctx context.Context, userID string, amount int64, description string) error {
	return l.postJSON(ctx, "/spend", spendRequest{
		UserID:      userID,
		Amount:      amount,
		Description: description,
	}, nil)
}

func (l *LedgerClient) TransferTokens(ctx context.Context, fromUserID, toUserID string, amount int64, description string) error {
	return l.postJSON(ctx, "/transfer", transferRequest{
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      amount,
		Description: description,
	}, nil)
}

// MintTokens is admin-only; the ledger enforces that too.
func (l *LedgerClient) MintTokens(ctx context.Context, recipient string, amount int64, description string) error {
	return l.postJSON(ctx, "/mint", mintRequest{
		Recipient:   recipient,
		Amount:      amount,
		Description: description,
	}, nil)
}

func (l *LedgerClient) TransactionHistory(ctx context.Context, userID string) ([]models.TokenTransaction, error) {
	var history []models.TokenTransaction
	if err := l.getJSON(ctx, "/transactions/"+url.PathEscape(userID), &history); err != nil {
		return nil, err
	}
	return history, nil
}
