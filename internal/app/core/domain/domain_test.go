package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseTask(t *testing.T) {
	tests := []struct {
		raw  string
		want Task
	}{
		{"balance", TaskBalance},
		{"BALANCE", TaskBalance},
		{"Deposit", TaskDeposit},
		{"exit", TaskExit},
		{"  eXiT ", TaskExit},
	}
	for _, tt := range tests {
		got, err := ParseTask(tt.raw)
		if err != nil {
			t.Fatalf("ParseTask(%q) err=%v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTask(%q)=%q want=%q", tt.raw, got, tt.want)
		}
	}
}

func TestParseTaskUnknown(t *testing.T) {
	for _, raw := range []string{"withdraw", "", "balances", "Transfer"} {
		_, err := ParseTask(raw)
		if !errors.Is(err, ErrInvalidTask) {
			t.Fatalf("ParseTask(%q) want ErrInvalidTask, got %v", raw, err)
		}
		want := fmt.Sprintf(`"%s" is an unknown task.`, raw)
		if err.Error() != want {
			t.Fatalf("message=%q want=%q", err.Error(), want)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
		msg  string
	}{
		{ErrAccountFormat, KindInvalidFormat, "Account number must be an int type."},
		{ErrAccountNotFound, KindNotFound, "Account number entered does not exist."},
		{ErrAmountFormat, KindInvalidFormat, "Amount must be a numeric type."},
		{ErrAmountMustBePositive, KindInvalidRange, "Amount must be a value greater than zero."},
		{NewUnknownTaskError("x"), KindInvalidTask, `"x" is an unknown task.`},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.kind {
			t.Fatalf("KindOf(%v)=%v want=%v", tt.err, got, tt.kind)
		}
		if tt.err.Error() != tt.msg {
			t.Fatalf("message=%q want=%q", tt.err.Error(), tt.msg)
		}
		// 包裝後仍可取得類別
		wrapped := fmt.Errorf("wrapped: %w", tt.err)
		if KindOf(wrapped) != tt.kind {
			t.Fatalf("KindOf(wrapped %v)=%v want=%v", tt.err, KindOf(wrapped), tt.kind)
		}
	}

	if !errors.Is(ErrAccountFormat, ErrInvalidFormat) || !errors.Is(ErrAmountFormat, ErrInvalidFormat) {
		t.Fatal("format errors should match ErrInvalidFormat")
	}
	if errors.Is(ErrAccountNotFound, ErrInvalidRange) {
		t.Fatal("NotFound must not match InvalidRange")
	}
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Fatal("plain errors should be KindUnknown")
	}
}

func TestAccountDeposit(t *testing.T) {
	a := NewAccount(1, decimal.RequireFromString("1000"))
	if err := a.Deposit(decimal.RequireFromString("500.50")); err != nil {
		t.Fatal(err)
	}
	if !a.Balance.Equal(decimal.RequireFromString("1500.50")) {
		t.Fatalf("balance=%s want=1500.50", a.Balance)
	}

	for _, amt := range []string{"0", "-1", "-0.01"} {
		if err := a.Deposit(decimal.RequireFromString(amt)); !errors.Is(err, ErrAmountMustBePositive) {
			t.Fatalf("amount %s want ErrAmountMustBePositive, got %v", amt, err)
		}
	}
	if !a.Balance.Equal(decimal.RequireFromString("1500.50")) {
		t.Fatalf("rejected deposits changed balance to %s", a.Balance)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1000", "$1,000.00"},
		{"1500.5", "$1,500.50"},
		{"2000.00", "$2,000.00"},
		{"0", "$0.00"},
		{"0.005", "$0.01"},
		{"1234567.891", "$1,234,567.89"},
		{"0.001", "$0.00"},
		{"0.004999", "$0.00"},
		// int64 最小單位上限附近
		{"92233720368547758.07", "$92,233,720,368,547,758.07"},
		{"92233720368547758.08", "$92,233,720,368,547,758.08"},
		{"100000000000000001000", "$100,000,000,000,000,001,000.00"},
		{"1e30", "$1,000,000,000,000,000,000,000,000,000,000.00"},
		{"123456789012345678901.235", "$123,456,789,012,345,678,901.24"},
		{"-100000000000000000000", "-$100,000,000,000,000,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.amount), "USD"); got != tt.want {
			t.Fatalf("FormatMoney(%s)=%q want=%q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"500.50", "$500.50"},
		{"500.5", "$500.50"},
		{"1500", "$1500.00"},
		{"0.1", "$0.10"},
		{"0.001", "$0.00"},
		{"1e20", "$100000000000000000000.00"},
	}
	for _, tt := range tests {
		if got := FormatFixed(decimal.RequireFromString(tt.amount), "USD"); got != tt.want {
			t.Fatalf("FormatFixed(%s)=%q want=%q", tt.amount, got, tt.want)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("USD"); err != nil {
		t.Fatal(err)
	}
	if err := ValidateCurrency("XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("want ErrUnknownCurrency, got %v", err)
	}
}

func TestNewDeposit(t *testing.T) {
	a := NewDeposit(123456, decimal.RequireFromString("10"))
	b := NewDeposit(123456, decimal.RequireFromString("10"))
	if a.TransactionID == b.TransactionID {
		t.Fatal("each deposit needs its own transaction id")
	}
	if a.Type != TransactionTypeDeposit || a.To != 123456 || a.CreatedAt == 0 {
		t.Fatalf("unexpected transaction: %+v", a)
	}
}
