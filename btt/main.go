// Command btt tracks a Borsa Istanbul portfolio from broker messages and
// manual entries, and reports cost basis, valuation and daily performance.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"bisttakip/cmd"
	"bisttakip/internal/logging"
)

func main() {
	completion().Complete("btt")

	logging.Setup(logging.DefaultConfig())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion.
func completion() *complete.Command {
	dated := map[string]complete.Predictor{"d": predict.Something, "s": predict.Something}
	trade := map[string]complete.Predictor{
		"d": predict.Something,
		"s": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
		"m": predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"par-value":   predict.Something,
			"strict-cash": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"buy":      {Flags: trade},
			"sell":     {Flags: trade},
			"dividend": {Flags: map[string]complete.Predictor{"d": predict.Something, "s": predict.Something, "r": predict.Something, "m": predict.Something}},
			"bonus":    {Flags: map[string]complete.Predictor{"d": predict.Something, "s": predict.Something, "r": predict.Something, "m": predict.Something}},
			"deposit":  {Flags: map[string]complete.Predictor{"d": predict.Something, "a": predict.Something, "m": predict.Something}},
			"withdraw": {Flags: map[string]complete.Predictor{"d": predict.Something, "a": predict.Something, "m": predict.Something}},
			"parse":    {Flags: map[string]complete.Predictor{"d": predict.Something, "dry": predict.Nothing}},
			"holding":  {Flags: map[string]complete.Predictor{"d": predict.Something, "offline": predict.Nothing}},
			"daily":    {Flags: dated},
			"tx":       {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
			"fmt":      {Flags: map[string]complete.Predictor{"check": predict.Nothing}},
		},
	}
}
