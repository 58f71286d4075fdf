// Package console 是選單迴圈的 driving adapter，
// 讀取使用者輸入並把任務分派給 usecase.Processor。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/usecase"
)

const (
	// PromptTask 選擇任務的提示
	PromptTask = "What would you like to do (balance/deposit/exit)?: "
	// PromptAccount 輸入帳號的提示
	PromptAccount = "Please enter your account number: "
	// PromptAmount 輸入存款金額的提示
	PromptAmount = "Enter an amount: "

	// DefaultInstitution 預設機構名稱
	DefaultInstitution = "PiXELL River Financial"
)

// ErrInputClosed 輸入串流已關閉，session 無法繼續
var ErrInputClosed = errors.New("input stream closed")

// State session 狀態
type State uint8

const (
	// StateRunning 持續等待下一個任務
	StateRunning State = iota
	// StateTerminated 使用者已選擇 exit 或輸入中斷
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "Terminated"
	}
	return "Running"
}

// Session 是單一使用者的選單迴圈，擁有輸入輸出與帳本操作入口
type Session struct {
	processor   *usecase.Processor
	in          *bufio.Reader
	out         io.Writer
	institution string
	logger      *slog.Logger
	state       State
}

// Option 定義 Session 的配置選項函數
type Option func(*Session)

// WithInstitution 設定歡迎與道別訊息中的機構名稱
func WithInstitution(name string) Option {
	return func(s *Session) {
		s.institution = name
	}
}

// WithLogger 設定 Session 的 logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession 建立一個新的 Session，初始狀態為 StateRunning
func NewSession(processor *usecase.Processor, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		processor:   processor,
		in:          bufio.NewReader(in),
		out:         out,
		institution: DefaultInstitution,
		logger:      slog.New(slog.DiscardHandler),
		state:       StateRunning,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State 回傳目前狀態
func (s *Session) State() State {
	return s.state
}

// Run 執行選單迴圈直到使用者選擇 exit
// 驗證錯誤會印出 "Error found: ..." 後繼續；只有輸入串流關閉或基礎設施錯誤會中止
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome! I'm the %s Chatbot! Let's get chatting!\n", s.institution)

	for s.state == StateRunning {
		err := s.step(ctx)
		if err == nil {
			continue
		}
		switch kind := domain.KindOf(err); kind {
		case domain.KindInvalidFormat, domain.KindNotFound, domain.KindInvalidRange, domain.KindInvalidTask:
			s.logger.Debug("task failed", slog.String("kind", kind.String()), slog.String("error", err.Error()))
			fmt.Fprintf(s.out, "Error found: %s\n", err)
		default:
			s.state = StateTerminated
			return err
		}
	}
	return nil
}

// step 執行一次迴圈
func (s *Session) step(ctx context.Context) error {
	raw, err := s.prompt(PromptTask)
	if err != nil {
		return err
	}
	task, err := domain.ParseTask(raw)
	if err != nil {
		return err
	}

	switch task {
	case domain.TaskBalance:
		return s.balance(ctx)
	case domain.TaskDeposit:
		return s.deposit(ctx)
	case domain.TaskExit:
		s.state = StateTerminated
		fmt.Fprintf(s.out, "Thank you for banking with %s.\n", s.institution)
	}
	return nil
}

func (s *Session) balance(ctx context.Context) error {
	accountID, err := s.account(ctx)
	if err != nil {
		return err
	}
	msg, err := s.processor.Balance(ctx, accountID)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, msg)
	return nil
}

func (s *Session) deposit(ctx context.Context) error {
	accountID, err := s.account(ctx)
	if err != nil {
		return err
	}
	raw, err := s.prompt(PromptAmount)
	if err != nil {
		return err
	}
	amount, err := s.processor.ParseAmount(raw)
	if err != nil {
		return err
	}

	msg, err := s.processor.Deposit(ctx, accountID, amount)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, msg)

	msg, err = s.processor.Balance(ctx, accountID)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, msg)
	return nil
}

func (s *Session) account(ctx context.Context) (int64, error) {
	raw, err := s.prompt(PromptAccount)
	if err != nil {
		return 0, err
	}
	return s.processor.ParseAccount(ctx, raw)
}

// prompt 印出提示並讀取一行 (去除行尾 \r\n)
// 行長不設上限；最後一行即使沒有換行也會回傳
func (s *Session) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", ErrInputClosed, io.EOF)
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
