package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	grpcadapter "github.com/simaogato/fairprice-backend/internal/adapter/grpc"
	"github.com/simaogato/fairprice-backend/internal/domain"
	"github.com/simaogato/fairprice-backend/internal/usecase/report"
	"github.com/simaogato/fairprice-backend/internal/usecase/valuation"
)

// computeCmd runs the valuation engine locally
type computeCmd struct {
	inputFlags
	currency string
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "compute the fair buy price of a stock locally" }
func (*computeCmd) Usage() string {
	return `fairprice compute [-json <file> [-prefix <path>]] [-ticker T] [-eps X | -mode FIVE_YEAR_AVERAGE -profits "a;b;c;d;e" -shares N] -bvps X -profit X -profit-5y X -dividends "a;b;c;d;e"

  Computes the Graham, growth-projected and dividend-yield values and the
  blended fair buy price. Nothing is sent to the server.
`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.currency, "currency", "BRL", "currency used to display amounts")
}

func (c *computeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	formatter, err := report.NewMoneyFormatter(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := c.input()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	domainInput, err := grpcadapter.ProtoInputToDomain(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	md, err := computeMarkdown(domainInput, formatter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}

// computeMarkdown runs the engine and renders the result table
func computeMarkdown(in domain.ValuationInput, formatter *report.MoneyFormatter) (string, error) {
	result, err := valuation.Compute(in)
	if err != nil {
		return "", err
	}
	logger.Debug().Interface("result", result).Msg("valuation computed")

	reports := report.NewReportService(nil, nil, formatter)
	return reports.ValuationMarkdown(domain.NormalizeTicker(in.Ticker), *result), nil
}
