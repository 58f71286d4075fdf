package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func withConfig(t *testing.T, path string) {
	t.Helper()
	old := *configPath
	*configPath = path
	t.Cleanup(func() { *configPath = old })
}

func TestChatCmdSession(t *testing.T) {
	withConfig(t, "")
	in := strings.NewReader("deposit\n123456\n500.50\nexit\n")
	var out, errOut bytes.Buffer

	status := (&chatCmd{}).run(context.Background(), in, &out, &errOut)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status=%v stderr=%s", status, errOut.String())
	}
	for _, want := range []string{
		"Welcome! I'm the PiXELL River Financial Chatbot! Let's get chatting!",
		"You have made a deposit of $500.50 to account 123456.",
		"Your current balance for account 123456 is $1,500.50.",
		"Thank you for banking with PiXELL River Financial.",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestChatCmdDumpJournal(t *testing.T) {
	withConfig(t, "")
	in := strings.NewReader("deposit\n789012\n12.34\nexit\n")
	var out, errOut bytes.Buffer

	status := (&chatCmd{dumpJournal: true}).run(context.Background(), in, &out, &errOut)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status=%v stderr=%s", status, errOut.String())
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("journal lines=%d want=1: %q", len(lines), errOut.String())
	}
	for _, want := range []string{`"sequence":1`, `"to":789012`, `"amount":"12.34"`} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("journal line missing %s: %s", want, lines[0])
		}
	}
}

func TestChatCmdInputClosed(t *testing.T) {
	withConfig(t, "")
	var out, errOut bytes.Buffer
	status := (&chatCmd{}).run(context.Background(), strings.NewReader("balance\n"), &out, &errOut)
	if status != subcommands.ExitFailure {
		t.Fatalf("status=%v want ExitFailure", status)
	}
	if !strings.Contains(errOut.String(), "session aborted") {
		t.Fatalf("expected error log, got %q", errOut.String())
	}
}

func TestChatCmdBadConfig(t *testing.T) {
	withConfig(t, filepath.Join(t.TempDir(), "missing.yaml"))
	var out, errOut bytes.Buffer
	status := (&chatCmd{}).run(context.Background(), strings.NewReader("exit\n"), &out, &errOut)
	if status != subcommands.ExitFailure {
		t.Fatalf("status=%v want ExitFailure", status)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be printed to stdout, got %q", out.String())
	}
}

func TestAccountsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "institution: Acme Bank\naccounts:\n  - id: 789012\n    balance: \"2500.5\"\n  - id: 42\n    balance: \"0\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfig(t, path)

	var out, errOut bytes.Buffer
	status := (&accountsCmd{}).run(context.Background(), &out, &errOut)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status=%v stderr=%s", status, errOut.String())
	}
	want := "42\t$0.00\n789012\t$2,500.50\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}
