package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
)

// Processor 是核心業務邏輯層: 驗證輸入、查詢餘額、存款
type Processor struct {
	ledger   Ledger
	currency string
}

// NewProcessor 建立 Processor，currency 為空時使用 domain.DefaultCurrency
func NewProcessor(ledger Ledger, currency string) *Processor {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Processor{
		ledger:   ledger,
		currency: currency,
	}
}

// ParseAccount 驗證使用者輸入的帳號
//
// 參數:
//
//	ctx: 上下文
//	raw: 使用者原始輸入
//
// 回傳:
//
//	int64: 已確認存在的帳號
//	error: ErrAccountFormat 或 ErrAccountNotFound
func (p *Processor) ParseAccount(ctx context.Context, raw string) (int64, error) {
	accountID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// 超出 int64 的整數不可能是帳號
		return 0, domain.ErrAccountNotFound
	}
	if err != nil {
		return 0, domain.ErrAccountFormat
	}
	if err := p.checkAccount(ctx, accountID); err != nil {
		return 0, err
	}
	return accountID, nil
}

// ParseAmount 驗證使用者輸入的存款金額
//
// 參數:
//
//	raw: 使用者原始輸入
//
// 回傳:
//
//	decimal.Decimal: 大於零的金額
//	error: ErrAmountFormat 或 ErrAmountMustBePositive
func (p *Processor) ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.ErrAmountFormat
	}
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrAmountMustBePositive
	}
	return amount, nil
}

// Balance 回傳帳戶餘額訊息，唯讀
func (p *Processor) Balance(ctx context.Context, accountID int64) (string, error) {
	balance, err := p.ledger.GetAccountBalance(ctx, accountID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Your current balance for account %d is %s.",
		accountID, domain.FormatMoney(balance, p.currency)), nil
}

// Deposit 存款並回傳確認訊息
// 入帳前會再次檢查帳戶與金額，驗證失敗時帳本不會被修改
func (p *Processor) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (string, error) {
	if err := p.checkAccount(ctx, accountID); err != nil {
		return "", err
	}
	if !amount.IsPositive() {
		return "", domain.ErrAmountMustBePositive
	}

	tran := domain.NewDeposit(accountID, amount)
	if err := p.ledger.PostTransaction(ctx, tran); err != nil {
		return "", err
	}
	return fmt.Sprintf("You have made a deposit of %s to account %d.",
		domain.FormatFixed(amount, p.currency), accountID), nil
}

// Accounts 回傳所有帳戶快照，依帳號排序
func (p *Processor) Accounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := p.ledger.LoadAllAccounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Currency 回傳顯示用幣別
func (p *Processor) Currency() string {
	return p.currency
}

func (p *Processor) checkAccount(ctx context.Context, accountID int64) error {
	_, err := p.ledger.GetAccountBalance(ctx, accountID)
	return err
}
