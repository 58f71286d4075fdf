package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// PostTransaction 套用交易，同一 TransactionID 只會入帳一次
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	// LoadAllAccounts 載入所有帳戶
	LoadAllAccounts(ctx context.Context) (map[int64]*domain.Account, error)
}
