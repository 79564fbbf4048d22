package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	fairpricev1 "github.com/simaogato/fairprice-backend/internal/adapter/grpc/fairprice/v1"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// JSON document paths, relative to the -prefix path
const (
	pathTicker             = "ticker"
	pathMode               = "earnings_per_share_mode"
	pathEarningsPerShare   = "earnings_per_share"
	pathAnnualProfits      = "annual_profits"
	pathShareCount         = "share_count"
	pathBookValuePerShare  = "book_value_per_share"
	pathCurrentProfit      = "current_profit"
	pathProfitFiveYearsAgo = "profit_five_years_ago"
	pathDividends          = "dividends"
)

// inputFlags holds the valuation inputs given on the command line
type inputFlags struct {
	ticker             string
	mode               string
	earningsPerShare   string
	annualProfits      string
	shareCount         string
	bookValuePerShare  string
	currentProfit      string
	profitFiveYearsAgo string
	dividends          string

	jsonFile string
	prefix   string
}

func (f *inputFlags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.ticker, "ticker", "", "ticker symbol")
	fs.StringVar(&f.mode, "mode", "", "EPS mode: DIRECT (default) or FIVE_YEAR_AVERAGE")
	fs.StringVar(&f.earningsPerShare, "eps", "", "earnings per share (DIRECT mode)")
	fs.StringVar(&f.annualProfits, "profits", "", "five annual net profits separated by ';' (FIVE_YEAR_AVERAGE mode)")
	fs.StringVar(&f.shareCount, "shares", "", "number of shares (FIVE_YEAR_AVERAGE mode)")
	fs.StringVar(&f.bookValuePerShare, "bvps", "", "book value per share")
	fs.StringVar(&f.currentProfit, "profit", "", "current annual net profit")
	fs.StringVar(&f.profitFiveYearsAgo, "profit-5y", "", "net profit five years ago")
	fs.StringVar(&f.dividends, "dividends", "", "five annual dividends per share separated by ';'")
	fs.StringVar(&f.jsonFile, "json", "", "read inputs from a JSON file; flags override its values")
	fs.StringVar(&f.prefix, "prefix", "", "gjson path of the object holding the inputs in the JSON file")
}

// input merges the JSON file (if any) with the flags
func (f *inputFlags) input() (*fairpricev1.ValuationInput, error) {
	in := &fairpricev1.ValuationInput{}

	if f.jsonFile != "" {
		data, err := os.ReadFile(f.jsonFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read inputs: %w", err)
		}
		in, err = inputFromJSON(data, f.prefix)
		if err != nil {
			return nil, err
		}
	}

	override := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	override(&in.Ticker, f.ticker)
	override(&in.EarningsPerShareMode, strings.ToUpper(f.mode))
	override(&in.EarningsPerShare, f.earningsPerShare)
	override(&in.ShareCount, f.shareCount)
	override(&in.BookValuePerShare, f.bookValuePerShare)
	override(&in.CurrentProfit, f.currentProfit)
	override(&in.ProfitFiveYearsAgo, f.profitFiveYearsAgo)
	if f.annualProfits != "" {
		in.AnnualProfits = splitSeries(f.annualProfits)
	}
	if f.dividends != "" {
		in.Dividends = splitSeries(f.dividends)
	}

	if in.EarningsPerShareMode == "" {
		in.EarningsPerShareMode = string(domain.EPSModeDirect)
	}
	return in, nil
}

// inputFromJSON reads the inputs from a JSON document. Values may be numbers
// or numeric strings.
func inputFromJSON(data []byte, prefix string) (*fairpricev1.ValuationInput, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to read inputs: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if prefix != "" {
		root = root.Get(prefix)
		if !root.Exists() {
			return nil, fmt.Errorf("failed to read inputs: path %q not found", prefix)
		}
	}

	str := func(path string) string {
		v := root.Get(path)
		if !v.Exists() || v.Type == gjson.Null {
			return ""
		}
		return v.String()
	}
	series := func(path string) []string {
		var out []string
		for _, v := range root.Get(path).Array() {
			if v.Type == gjson.Null {
				out = append(out, "")
				continue
			}
			out = append(out, v.String())
		}
		return out
	}

	return &fairpricev1.ValuationInput{
		Ticker:               str(pathTicker),
		EarningsPerShareMode: strings.ToUpper(str(pathMode)),
		EarningsPerShare:     str(pathEarningsPerShare),
		AnnualProfits:        series(pathAnnualProfits),
		ShareCount:           str(pathShareCount),
		BookValuePerShare:    str(pathBookValuePerShare),
		CurrentProfit:        str(pathCurrentProfit),
		ProfitFiveYearsAgo:   str(pathProfitFiveYearsAgo),
		Dividends:            series(pathDividends),
	}, nil
}

// splitSeries splits "a;b;c;d;e". Commas stay inside values as decimal separators.
func splitSeries(s string) []string {
	parts := strings.Split(s, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
