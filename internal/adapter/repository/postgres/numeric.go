package postgres

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/fairprice-backend/internal/domain"
)

// numericArg converts an optional input into a NUMERIC argument (nil for NULL).
// Non-finite values are stored as NULL.
func numericArg(v *float64) interface{} {
	if !domain.Present(v) {
		return nil
	}
	return decimal.NewFromFloat(*v).String()
}

// numericArray converts a five-year series into NUMERIC[] elements
func numericArray(values [domain.Years]*float64) []sql.NullString {
	out := make([]sql.NullString, len(values))
	for i, v := range values {
		if domain.Present(v) {
			out[i] = sql.NullString{String: decimal.NewFromFloat(*v).String(), Valid: true}
		}
	}
	return out
}

// parseNumeric parses a NUMERIC column scanned as a string
func parseNumeric(column, s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return d.InexactFloat64(), nil
}

// parseNullNumeric parses a nullable NUMERIC column
func parseNullNumeric(column string, s sql.NullString) (*float64, error) {
	if !s.Valid {
		return nil, nil
	}
	v, err := parseNumeric(column, s.String)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseNumericArray parses a NUMERIC[] column into a five-year series.
// A NULL array yields an all-nil series.
func parseNumericArray(column string, values []sql.NullString) ([domain.Years]*float64, error) {
	var out [domain.Years]*float64
	if values == nil {
		return out, nil
	}
	if len(values) != domain.Years {
		return out, fmt.Errorf("failed to parse %s: expected %d values, got %d", column, domain.Years, len(values))
	}
	for i, s := range values {
		v, err := parseNullNumeric(column, s)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
