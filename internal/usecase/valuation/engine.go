package valuation

import (
	"math"

	"github.com/simaogato/fairprice-backend/internal/domain"
)

// Formula constants. The blending policy and safety margin are fixed.
const (
	grahamMultiplier = 10.5

	growthBaseMultiple  = 7.0
	growthRateMultiple  = 2.0
	dividendYieldTarget = 0.3

	grahamWeight        = 1.0
	growthWeight        = 1.5
	dividendYieldWeight = 0.5
	blendDivisor        = 3.0
	safetyMargin        = 0.8 // 20% below the blended value
)

// Field names reported in validation errors
const (
	FieldEarningsPerShare     = "earningsPerShare"
	FieldEarningsPerShareMode = "earningsPerShareMode"
	FieldShareCount           = "shareCount"
	FieldBookValuePerShare    = "bookValuePerShare"
	FieldCurrentProfit        = "currentProfit"
	FieldProfitFiveYearsAgo   = "profitFiveYearsAgo"
	FieldDividends            = "dividends"
	FieldAnnualProfits        = "annualProfits"
	FieldGrahamInputs         = "grahamInputs"
)

// AnnualProfitField returns the field name of the i-th (0-based) annual profit
func AnnualProfitField(i int) string {
	return "annualProfit" + string(rune('1'+i))
}

// DividendField returns the field name of the i-th (0-based) dividend
func DividendField(i int) string {
	return "dividend" + string(rune('1'+i))
}

// fieldValidator checks one field and returns a non-nil error when it fails
type fieldValidator func() error

// firstFailure runs validators in order and returns the first error
func firstFailure(validators ...fieldValidator) error {
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func required(field string, v *float64) fieldValidator {
	return func() error {
		if !domain.Present(v) {
			return domain.MissingField(field)
		}
		return nil
	}
}

// finite rejects a derived value that overflowed float64
func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.InvalidValue(field)
	}
	return nil
}

func positive(field string, v *float64) fieldValidator {
	return func() error {
		if *v <= 0 {
			return domain.InvalidValue(field)
		}
		return nil
	}
}

// DeriveEarningsPerShare returns the EPS used by the valuation: the direct
// figure, or the five-year average profit divided by the share count.
func DeriveEarningsPerShare(in domain.ValuationInput) (float64, error) {
	switch in.EPSMode {
	case domain.EPSModeDirect:
		if err := required(FieldEarningsPerShare, in.EarningsPerShare)(); err != nil {
			return 0, err
		}
		return *in.EarningsPerShare, nil

	case domain.EPSModeFiveYearAverage:
		validators := make([]fieldValidator, 0, domain.Years+2)
		for i, p := range in.AnnualProfits {
			validators = append(validators, required(AnnualProfitField(i), p))
		}
		validators = append(validators,
			required(FieldShareCount, in.ShareCount),
			positive(FieldShareCount, in.ShareCount),
		)
		if err := firstFailure(validators...); err != nil {
			return 0, err
		}

		var sum float64
		for _, p := range in.AnnualProfits {
			sum += *p
		}
		eps := (sum / domain.Years) / *in.ShareCount
		if err := finite(FieldEarningsPerShare, eps); err != nil {
			return 0, err
		}
		return eps, nil

	default:
		return 0, domain.InvalidValue(FieldEarningsPerShareMode)
	}
}

// DeriveGrowthRate returns the five-year compound annual growth rate of
// profit, as a percentage.
func DeriveGrowthRate(currentProfit, profitFiveYearsAgo float64) (float64, error) {
	if profitFiveYearsAgo <= 0 {
		return 0, domain.InvalidValue(FieldProfitFiveYearsAgo)
	}
	if currentProfit < 0 {
		return 0, domain.InvalidValue(FieldCurrentProfit)
	}
	rate := (math.Pow(currentProfit/profitFiveYearsAgo, 1.0/domain.Years) - 1) * 100
	if err := finite(FieldCurrentProfit, rate); err != nil {
		return 0, err
	}
	return rate, nil
}

// ValidateDividends checks that all five dividends are present and non-negative
func ValidateDividends(dividends [domain.Years]*float64) error {
	for i, d := range dividends {
		if !domain.Present(d) {
			return domain.MissingField(DividendField(i))
		}
		if *d < 0 {
			return domain.InvalidValue(FieldDividends)
		}
	}
	return nil
}

// Compute validates the input and returns the three component valuations and
// the blended fair buy price. Any validation failure aborts with no result.
func Compute(in domain.ValuationInput) (*domain.ValuationResult, error) {
	// 1. Presence of the always-required fields
	if err := firstFailure(
		required(FieldBookValuePerShare, in.BookValuePerShare),
		required(FieldCurrentProfit, in.CurrentProfit),
		required(FieldProfitFiveYearsAgo, in.ProfitFiveYearsAgo),
	); err != nil {
		return nil, err
	}

	// 2. Dividends
	if err := ValidateDividends(in.Dividends); err != nil {
		return nil, err
	}

	// 3. Earnings per share
	eps, err := DeriveEarningsPerShare(in)
	if err != nil {
		return nil, err
	}

	// 4. Historical profit must be a usable base
	if err := positive(FieldProfitFiveYearsAgo, in.ProfitFiveYearsAgo)(); err != nil {
		return nil, err
	}

	// 5. Growth rate
	growthRate, err := DeriveGrowthRate(*in.CurrentProfit, *in.ProfitFiveYearsAgo)
	if err != nil {
		return nil, err
	}

	// 6. Component valuations. Finite inputs can still overflow float64.
	grahamProduct := grahamMultiplier * eps * *in.BookValuePerShare
	if grahamProduct < 0 {
		return nil, domain.InvalidValue(FieldGrahamInputs)
	}
	if err := finite(FieldGrahamInputs, grahamProduct); err != nil {
		return nil, err
	}
	graham := math.Sqrt(grahamProduct)

	growth := eps * (growthBaseMultiple + growthRateMultiple*(growthRate/100))
	if err := finite(FieldEarningsPerShare, growth); err != nil {
		return nil, err
	}

	var dividendSum float64
	for _, d := range in.Dividends {
		dividendSum += *d
	}
	dividendYield := dividendSum / dividendYieldTarget
	if err := finite(FieldDividends, dividendYield); err != nil {
		return nil, err
	}

	// 7. Blend and apply the safety margin
	final := ((graham*grahamWeight + growth*growthWeight + dividendYield*dividendYieldWeight) / blendDivisor) * safetyMargin
	if err := finite(FieldEarningsPerShare, final); err != nil {
		return nil, err
	}

	return &domain.ValuationResult{
		EarningsPerShare:         eps,
		DerivedGrowthRatePercent: growthRate,
		GrahamValue:              graham,
		GrowthProjectedValue:     growth,
		DividendYieldValue:       dividendYield,
		FinalBuyPrice:            final,
	}, nil
}
