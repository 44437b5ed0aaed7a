package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"

	"bisttakip"
	"bisttakip/date"
)

// useTempLedger points the app ledger file at a fresh temp file.
func useTempLedger(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "ledger.jsonl")
	old := *ledgerFile
	*ledgerFile = file
	t.Cleanup(func() { *ledgerFile = old })
	return file
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %s flags: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func TestBuyThenSellRoundTrip(t *testing.T) {
	useTempLedger(t)

	if got := run(t, &buyCmd{}, "-d", "2024-03-11", "-s", "thyao", "-q", "100", "-p", "32.5"); got != subcommands.ExitSuccess {
		t.Fatalf("buy: got exit status %v", got)
	}
	if got := run(t, &sellCmd{}, "-d", "2024-03-15", "-s", "THYAO", "-q", "40", "-p", "35"); got != subcommands.ExitSuccess {
		t.Fatalf("sell: got exit status %v", got)
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("got %d transactions, want 2", ledger.Len())
	}
	pos, err := ledger.Position("THYAO", date.New(2024, 3, 15))
	if err != nil {
		t.Fatal(err)
	}
	if !pos.Equal(bisttakip.Q(60)) {
		t.Errorf("position = %s, want 60", pos)
	}
}

func TestSellAllResolvesPosition(t *testing.T) {
	useTempLedger(t)

	run(t, &buyCmd{}, "-d", "2024-03-11", "-s", "GARAN", "-q", "80", "-p", "100")
	if got := run(t, &sellCmd{}, "-d", "2024-03-12", "-s", "GARAN", "-p", "110"); got != subcommands.ExitSuccess {
		t.Fatalf("sell all: got exit status %v", got)
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		t.Fatal(err)
	}
	pos, err := ledger.Position("GARAN", date.New(2024, 3, 12))
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsZero() {
		t.Errorf("position after sell all = %s, want 0", pos)
	}
}

func TestBuyRejectsBadArguments(t *testing.T) {
	useTempLedger(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing security", []string{"-q", "10", "-p", "5"}},
		{"zero quantity", []string{"-s", "THYAO", "-q", "0", "-p", "5"}},
		{"zero price", []string{"-s", "THYAO", "-q", "10", "-p", "0"}},
		{"bad date", []string{"-s", "THYAO", "-q", "10", "-p", "5", "-d", "not-a-date"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(t, &buyCmd{}, tc.args...); got != subcommands.ExitUsageError {
				t.Errorf("got exit status %v, want usage error", got)
			}
		})
	}
}

func TestFmtCanonicalizes(t *testing.T) {
	file := useTempLedger(t)

	// out of order on disk, with a blank line
	raw := `{"command":"sell","date":"2024-03-15","security":"THYAO","quantity":40,"price":35}

{"command":"deposit","date":"2024-03-01","amount":10000}
{"command":"buy","date":"2024-03-11","security":"THYAO","quantity":100,"price":32.5}
`
	if err := os.WriteFile(file, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	if got := run(t, &fmtCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("fmt: got exit status %v", got)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), content)
	}
	for i, want := range []string{`"deposit"`, `"buy"`, `"sell"`} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %s, want a %s transaction", i, lines[i], want)
		}
	}
}

func TestFmtReportsOffendingIndex(t *testing.T) {
	file := useTempLedger(t)

	raw := `{"command":"buy","date":"2024-03-11","security":"THYAO","quantity":10,"price":32.5}
{"command":"sell","date":"2024-03-12","security":"THYAO","quantity":40,"price":35}
`
	if err := os.WriteFile(file, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	if got := run(t, &fmtCmd{}, "-check"); got != subcommands.ExitFailure {
		t.Errorf("fmt -check on oversold ledger: got exit status %v, want failure", got)
	}
}
