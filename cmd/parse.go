package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"bisttakip/date"
	"bisttakip/message"
	"bisttakip/renderer"
)

// parseCmd turns broker notification text into ledger transactions.
type parseCmd struct {
	date string
	dry  bool
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "parse broker messages into ledger transactions" }
func (*parseCmd) Usage() string {
	return `parse [-d <date>] [-dry] [message...]

  Parses broker notification text (SMS, statement lines) into transactions
  and appends them to the ledger. The message is taken from the arguments,
  or read line by line from stdin when no argument is given. Messages that
  carry no date of their own are stamped with -d.
`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Fallback date for messages without one (YYYY-MM-DD)")
	f.BoolVar(&c.dry, "dry", false, "Parse and print only, do not write to the ledger")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fallback, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var texts []string
	if f.NArg() > 0 {
		texts = []string{strings.Join(f.Args(), " ")}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if len(texts) == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, text := range texts {
		tx, err := message.Parse(text, fallback)
		var noMatch *message.NoMatchError
		switch {
		case errors.As(err, &noMatch):
			fmt.Fprintf(os.Stderr, "Skipped: %v\n", err)
			status = subcommands.ExitFailure
			continue
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}

		fmt.Printf("%s %s\n", tx.When(), renderer.Transaction(tx))
		if c.dry {
			continue
		}
		if s := appendTransaction(tx); s != subcommands.ExitSuccess {
			return s
		}
	}
	return status
}
