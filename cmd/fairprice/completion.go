package main

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors suggests values for flags with a known domain
var flagPredictors = map[string]complete.Predictor{
	"mode":     predict.Set{"DIRECT", "FIVE_YEAR_AVERAGE"},
	"sort":     predict.Set{"created_at", "ticker", "final_price"},
	"format":   predict.Set{"markdown", "html"},
	"currency": predict.Set{"BRL", "USD", "EUR", "GBP"},
	"json":     predict.Files("*.json"),
	"o":        predict.Files("*"),
}

// completion describes the command line for shell completion, built from the
// global flags and each subcommand's own flags
func completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}

	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}

	for _, c := range commands {
		fs := flag.NewFlagSet(c.cmd.Name(), flag.ContinueOnError)
		c.cmd.SetFlags(fs)
		root.Sub[c.cmd.Name()] = &complete.Command{Flags: predictFlags(fs)}
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
