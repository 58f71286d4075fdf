package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	default:
		return "unknown"
	}
}

// Transaction 交易
type Transaction struct {
	// Sequence: 帳本內唯一的順序號 (由帳本分配，1, 2, 3...)
	// 用於日誌重放確保順序一致
	Sequence uint64 `json:"sequence"`
	// To: 入帳帳戶 ID
	To int64 `json:"to"`
	// Amount: 金額
	Amount decimal.Decimal `json:"amount"`
	// CreatedAt: 交易時間 (UnixNano)
	CreatedAt int64 `json:"created_at"`
	// TransactionID: 外部追蹤號 (UUID)，同一 ID 只會入帳一次
	TransactionID uuid.UUID `json:"transaction_id"`
	// Type: 交易類型
	Type TransactionType `json:"type"`
}

// NewDeposit 建立一筆新的存款交易，分配新的 TransactionID
func NewDeposit(to int64, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TransactionID: uuid.New(),
		To:            to,
		Amount:        amount,
		Type:          TransactionTypeDeposit,
		CreatedAt:     time.Now().UnixNano(),
	}
}
