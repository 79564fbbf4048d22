package report

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyFormatter renders valuation amounts in one currency
type MoneyFormatter struct {
	currency *money.Currency
}

// NewMoneyFormatter returns a formatter for an ISO 4217 currency code
func NewMoneyFormatter(code string) (*MoneyFormatter, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &MoneyFormatter{currency: cur}, nil
}

// Code returns the ISO 4217 code of the formatter's currency
func (f *MoneyFormatter) Code() string {
	return f.currency.Code
}

// Format rounds the amount to the currency's minor unit and renders it with
// the currency's symbol and separators. Amounts whose minor units exceed
// int64 are rendered as plain decimals after the currency code.
func (f *MoneyFormatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "-"
	}

	fraction := int32(f.currency.Fraction)
	rounded := decimal.NewFromFloat(amount).Round(fraction)
	minor := rounded.Shift(fraction).BigInt()
	if !minor.IsInt64() {
		return f.currency.Code + " " + rounded.StringFixed(fraction)
	}
	return money.New(minor.Int64(), f.currency.Code).Display()
}
