package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-chatbot/pkg/journal"
)

// Ledger 是單一 session 擁有的記憶體帳本
// 只在選單迴圈內依序存取，因此不加鎖
//
// 結構:
//
//	accounts: 帳戶資料 Map
//	processedTransactions: 已處理過的交易 Map
//	sequence: 最後分配的交易順序號
//	journal: 交易日誌
type Ledger struct {
	accounts map[int64]*domain.Account
	// 已處理過的交易
	processedTransactions map[uuid.UUID]time.Time
	sequence              uint64
	journal               *journal.Journal
	logger                *slog.Logger
}

// Option 設定 Ledger 的選項函數
type Option func(*Ledger)

// WithLogger 設定 Ledger 使用的 logger
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// NewLedger 建立一個新的 Ledger 實例
//
// 參數:
//
//	accounts: 初始帳戶資料 Map (由 Ledger 接手擁有)
//	j: 交易日誌，nil 時建立空日誌；非空日誌會先重放
//
// 回傳:
//
//	*Ledger: Ledger 實例
//	error: 初始化錯誤 (如日誌重放失敗)
func NewLedger(accounts map[int64]*domain.Account, j *journal.Journal, opts ...Option) (*Ledger, error) {
	if accounts == nil {
		accounts = make(map[int64]*domain.Account)
	}
	if j == nil {
		j = journal.New()
	}
	ledger := &Ledger{
		accounts:              accounts,
		processedTransactions: make(map[uuid.UUID]time.Time),
		journal:               j,
		logger:                slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ledger)
	}
	if err := ledger.recoverFromJournal(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// recoverFromJournal 從日誌恢復帳本狀態
//
// 回傳:
//
//	error: 恢復過程錯誤
func (l *Ledger) recoverFromJournal() error {
	tranHistory := make([]domain.Transaction, 0, l.journal.Len())

	err := l.journal.ReadAll(func(jsonRaw []byte) error {
		var tran domain.Transaction
		if err := json.Unmarshal(jsonRaw, &tran); err != nil {
			return err
		}
		tranHistory = append(tranHistory, tran)
		return nil
	})
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	now := time.Now()
	for i := range tranHistory {
		tran := &tranHistory[i]
		if err := l.apply(tran); err != nil {
			return fmt.Errorf("replay transaction %d: %w", tran.Sequence, err)
		}
		l.processedTransactions[tran.TransactionID] = now
		if tran.Sequence > l.sequence {
			l.sequence = tran.Sequence
		}
	}
	if len(tranHistory) > 0 {
		l.logger.Debug("ledger recovered from journal", slog.Int("transactions", len(tranHistory)))
	}
	return nil
}

// GetAccountBalance 取得指定帳戶的當前餘額
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//
// 回傳:
//
//	decimal.Decimal: 帳戶餘額
//	error: 查詢錯誤 (如帳戶不存在)
func (l *Ledger) GetAccountBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, ok := l.accounts[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance, nil
}

// LoadAllAccounts 回傳所有帳戶的快照 (值拷貝，不暴露內部指標)
func (l *Ledger) LoadAllAccounts(ctx context.Context) (map[int64]*domain.Account, error) {
	out := make(map[int64]*domain.Account, len(l.accounts))
	for id, account := range l.accounts {
		cp := *account
		out[id] = &cp
	}
	return out, nil
}

// PostTransaction 處理交易請求
// 已處理過的 TransactionID 直接回傳成功，不會重複入帳
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤
func (l *Ledger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	if _, ok := l.processedTransactions[tran.TransactionID]; ok {
		return nil
	}

	// 1. 先驗證，確保寫入日誌的交易一定能重放
	if err := l.validate(tran); err != nil {
		return err
	}

	// 2. 分配順序號並寫入日誌
	tran.Sequence = l.sequence + 1
	if err := l.journal.Write(tran); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrJournalWriteFailed, err)
	}
	l.sequence = tran.Sequence

	// 3. 更新帳戶
	if err := l.apply(tran); err != nil {
		return err
	}
	l.processedTransactions[tran.TransactionID] = time.Now()

	l.logger.Debug("transaction posted",
		slog.Uint64("sequence", tran.Sequence),
		slog.String("type", tran.Type.String()),
		slog.Int64("to", tran.To),
		slog.String("amount", tran.Amount.String()),
		slog.String("transaction_id", tran.TransactionID.String()),
	)
	return nil
}

// Journal 回傳帳本使用的交易日誌
func (l *Ledger) Journal() *journal.Journal {
	return l.journal
}

// validate 檢查交易是否可套用，不修改任何狀態
func (l *Ledger) validate(tran *domain.Transaction) error {
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		if _, ok := l.accounts[tran.To]; !ok {
			return domain.ErrAccountNotFound
		}
		if !tran.Amount.IsPositive() {
			return domain.ErrAmountMustBePositive
		}
		return nil
	default:
		return fmt.Errorf("unsupported transaction type %d", tran.Type)
	}
}

// apply 依交易類型分發
func (l *Ledger) apply(tran *domain.Transaction) error {
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		return l.handleDeposit(tran)
	default:
		return fmt.Errorf("unsupported transaction type %d", tran.Type)
	}
}

// handleDeposit 處理存款邏輯
func (l *Ledger) handleDeposit(tran *domain.Transaction) error {
	toAccount, ok := l.accounts[tran.To]
	if !ok {
		return domain.ErrAccountNotFound
	}
	return toAccount.Deposit(tran.Amount)
}

var _ usecase.Ledger = (*Ledger)(nil)
