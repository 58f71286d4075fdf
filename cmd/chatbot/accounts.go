package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/JoeShih716/go-mem-chatbot/internal/app/core/domain"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the seeded accounts and their opening balances" }
func (*accountsCmd) Usage() string {
	return `accounts

  Prints one account per line: the account number and its balance.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, os.Stdout, os.Stderr)
}

func (c *accountsCmd) run(ctx context.Context, out, errOut io.Writer) subcommands.ExitStatus {
	a, err := bootstrap(errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, err := a.processor.Accounts(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, account := range accounts {
		fmt.Fprintf(out, "%d\t%s\n", account.ID, domain.FormatMoney(account.Balance, a.processor.Currency()))
	}
	return subcommands.ExitSuccess
}
