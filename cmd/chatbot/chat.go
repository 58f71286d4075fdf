package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/adapter/in/console"
)

type chatCmd struct {
	dumpJournal bool
}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start an interactive banking session (default)" }
func (*chatCmd) Usage() string {
	return `chat [-journal]

  Starts the menu loop: check a balance, make a deposit, or exit.
`
}

func (c *chatCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dumpJournal, "journal", false, "Print the session's transactions (JSON Lines) to stderr on exit")
}

func (c *chatCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, os.Stdin, os.Stdout, os.Stderr)
}

func (c *chatCmd) run(ctx context.Context, in io.Reader, out, errOut io.Writer) subcommands.ExitStatus {
	a, err := bootstrap(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Error starting chatbot: %v\n", err)
		return subcommands.ExitFailure
	}

	session := console.NewSession(a.processor, in, out,
		console.WithInstitution(a.cfg.Institution),
		console.WithLogger(a.logger),
	)
	err = session.Run(ctx)
	if c.dumpJournal {
		if _, werr := a.ledger.Journal().WriteTo(errOut); werr != nil {
			a.logger.Warn("journal dump failed", slog.String("error", werr.Error()))
		}
	}
	if err != nil {
		a.logger.Error("session aborted", slog.String("error", err.Error()))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
