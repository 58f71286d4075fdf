package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-chatbot/internal/config"
	"github.com/JoeShih716/go-mem-chatbot/pkg/journal"
)

// CLI 生命週期很短，使用全域 flag 即可
var configPath = flag.String("config", "", "Path to a YAML config file (defaults to the built-in deployment)")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&chatCmd{}, "")
	commander.Register(&accountsCmd{}, "")

	flag.Parse()
	ctx := context.Background()

	// 未指定子命令時直接進入對話
	if flag.NArg() == 0 {
		os.Exit(int((&chatCmd{}).run(ctx, os.Stdin, os.Stdout, os.Stderr)))
	}
	os.Exit(int(commander.Execute(ctx)))
}

// app 組裝好的應用程式元件
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	processor *usecase.Processor
	ledger    *memory.Ledger
}

// bootstrap 載入設定並建立帳本與 Processor
//
// 參數:
//
//	logOut: log 輸出位置 (對話使用 stdout，log 一律寫到其他地方)
func bootstrap(logOut io.Writer) (*app, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	logger := setupLogger(cfg.Env, logOut)

	accounts, err := cfg.SeedAccounts()
	if err != nil {
		return nil, err
	}
	ledger, err := memory.NewLedger(accounts, journal.New(), memory.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}
	logger.Debug("ledger ready",
		slog.String("institution", cfg.Institution),
		slog.Int("accounts", len(accounts)),
	)
	return &app{
		cfg:       cfg,
		logger:    logger,
		processor: usecase.NewProcessor(ledger, cfg.Currency),
		ledger:    ledger,
	}, nil
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger
	switch env {
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		// local 與對話共用終端機，只輸出警告以上
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)
	}
	return log
}
