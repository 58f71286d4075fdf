package domain

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency 預設幣別
const DefaultCurrency = money.USD

// maxMinorUnits go-money 以 int64 保存最小貨幣單位
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// ValidateCurrency 檢查幣別代碼是否為 go-money 所支援
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return ErrUnknownCurrency
	}
	return nil
}

// FormatMoney 以幣別格式輸出金額，含千分位與該幣別的小數位數
// 例: 1000 USD => "$1,000.00"
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := currency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().LessThanOrEqual(maxMinorUnits) {
		return cur.Formatter().Format(minor.IntPart())
	}
	return formatLarge(minor, cur)
}

// formatLarge 超出 int64 的金額自行分組，規則與 money.Formatter 相同
func formatLarge(minor decimal.Decimal, cur money.Currency) string {
	sa := minor.Abs().String()
	if len(sa) <= cur.Fraction {
		sa = strings.Repeat("0", cur.Fraction-len(sa)+1) + sa
	}
	if cur.Thousand != "" {
		for i := len(sa) - cur.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + cur.Thousand + sa[i:]
		}
	}
	if cur.Fraction > 0 {
		sa = sa[:len(sa)-cur.Fraction] + cur.Decimal + sa[len(sa)-cur.Fraction:]
	}
	sa = strings.Replace(cur.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// FormatFixed 輸出幣別符號加固定小數位數，不含千分位
// 例: 500.5 USD => "$500.50"
func FormatFixed(amount decimal.Decimal, code string) string {
	cur := currency(code)
	return cur.Grapheme + amount.StringFixed(int32(cur.Fraction))
}

func currency(code string) money.Currency {
	// 透過 money.New 取得一定非 nil 的幣別
	return *money.New(0, code).Currency()
}
