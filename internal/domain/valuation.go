package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// EPSMode selects how earnings per share is obtained for a valuation
type EPSMode string

const (
	EPSModeDirect          EPSMode = "DIRECT"
	EPSModeFiveYearAverage EPSMode = "FIVE_YEAR_AVERAGE"
)

// Years is the span covered by profit history and dividend history
const Years = 5

// ValuationInput holds the fundamentals entered for one computation request.
// A nil field means the value was not provided.
type ValuationInput struct {
	Ticker string

	EPSMode          EPSMode
	EarningsPerShare *float64        // DIRECT only
	AnnualProfits    [Years]*float64 // FIVE_YEAR_AVERAGE only
	ShareCount       *float64        // FIVE_YEAR_AVERAGE only

	BookValuePerShare  *float64
	CurrentProfit      *float64
	ProfitFiveYearsAgo *float64
	Dividends          [Years]*float64
}

// ValuationResult holds the three component valuations and the blended price.
// Values are unrounded; use Rounded for display.
type ValuationResult struct {
	EarningsPerShare         float64
	DerivedGrowthRatePercent float64
	GrahamValue              float64
	GrowthProjectedValue     float64
	DividendYieldValue       float64
	FinalBuyPrice            float64
}

// Rounded returns a copy with every value rounded half away from zero to two decimals
func (r ValuationResult) Rounded() ValuationResult {
	return ValuationResult{
		EarningsPerShare:         round2(r.EarningsPerShare),
		DerivedGrowthRatePercent: round2(r.DerivedGrowthRatePercent),
		GrahamValue:              round2(r.GrahamValue),
		GrowthProjectedValue:     round2(r.GrowthProjectedValue),
		DividendYieldValue:       round2(r.DividendYieldValue),
		FinalBuyPrice:            round2(r.FinalBuyPrice),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Present reports whether v was provided and holds a finite number
func Present(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// ParseField converts a raw text field into an input value.
// Empty, non-numeric or out of float64 range text yields nil. A single comma is accepted as the
// decimal separator.
func ParseField(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	v := Float(d.InexactFloat64())
	if !Present(v) {
		return nil
	}
	return v
}

// ParseSeries converts up to Years raw fields; missing positions stay absent.
// A longer series is an InvalidValue of field.
func ParseSeries(field string, raw []string) ([Years]*float64, error) {
	var out [Years]*float64
	if len(raw) > Years {
		return out, InvalidValue(field)
	}
	for i, r := range raw {
		out[i] = ParseField(r)
	}
	return out, nil
}

// FormatField is the inverse of ParseField; absent values yield ""
func FormatField(v *float64) string {
	if !Present(v) {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}
