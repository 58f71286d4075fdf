package domain

import "github.com/shopspring/decimal"

type Account struct {
	ID      int64
	Balance decimal.Decimal
}

func NewAccount(id int64, balance decimal.Decimal) *Account {
	return &Account{
		ID:      id,
		Balance: balance,
	}
}

// Deposit 存款，金額必須大於零，餘額只增不減
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}
