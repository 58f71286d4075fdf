package domain

import (
	"errors"
	"fmt"
)

// Kind 錯誤類別，選單迴圈依此決定如何回報
type Kind uint8

const (
	// KindUnknown 非驗證錯誤 (基礎設施或 I/O)
	KindUnknown Kind = iota
	// KindInvalidFormat 輸入型別錯誤
	KindInvalidFormat
	// KindNotFound 帳戶不存在
	KindNotFound
	// KindInvalidRange 金額不在合法範圍
	KindInvalidRange
	// KindInvalidTask 未知的選單任務
	KindInvalidTask
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindNotFound:
		return "NotFound"
	case KindInvalidRange:
		return "InvalidRange"
	case KindInvalidTask:
		return "InvalidTask"
	default:
		return "Unknown"
	}
}

// Error 是可直接顯示給使用者的驗證錯誤
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is 讓 errors.Is 以 Kind 比對，訊息不列入比較
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf 取出錯誤類別，非 *Error 一律回傳 KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var (
	// ErrInvalidFormat 任何型別錯誤 (用於 errors.Is 比對)
	ErrInvalidFormat = &Error{Kind: KindInvalidFormat, Message: "invalid format"}
	// ErrNotFound 任何找不到的錯誤
	ErrNotFound = &Error{Kind: KindNotFound, Message: "not found"}
	// ErrInvalidRange 任何範圍錯誤
	ErrInvalidRange = &Error{Kind: KindInvalidRange, Message: "invalid range"}
	// ErrInvalidTask 任何未知任務錯誤
	ErrInvalidTask = &Error{Kind: KindInvalidTask, Message: "invalid task"}

	// ErrAccountFormat 帳號必須是整數
	ErrAccountFormat = &Error{Kind: KindInvalidFormat, Message: "Account number must be an int type."}

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = &Error{Kind: KindNotFound, Message: "Account number entered does not exist."}

	// ErrAmountFormat 金額必須是數字
	ErrAmountFormat = &Error{Kind: KindInvalidFormat, Message: "Amount must be a numeric type."}

	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = &Error{Kind: KindInvalidRange, Message: "Amount must be a value greater than zero."}

	// ErrJournalWriteFailed 交易日誌寫入失敗
	ErrJournalWriteFailed = errors.New("journal write failed")

	// ErrUnknownCurrency 不支援的幣別
	ErrUnknownCurrency = errors.New("unknown currency")
)

// NewUnknownTaskError 建立未知任務錯誤，訊息保留使用者原始輸入
func NewUnknownTaskError(raw string) *Error {
	return &Error{Kind: KindInvalidTask, Message: fmt.Sprintf(`"%s" is an unknown task.`, raw)}
}
