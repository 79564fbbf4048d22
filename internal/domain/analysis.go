package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTickerLength = 12
	MaxNotesLength  = 10000
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]*$`)

// Analysis is a persisted snapshot of one valuation: the input as entered and
// the result the engine produced for it.
type Analysis struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Ticker    string
	Input     ValuationInput
	Result    ValuationResult
	Notes     string
	FolderID  *uuid.UUID // nil when the analysis is not filed in a folder
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeTicker trims and upper-cases a ticker symbol
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateTicker checks a normalized ticker symbol
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return MissingField("ticker")
	}
	if len(ticker) > MaxTickerLength || !tickerPattern.MatchString(ticker) {
		return InvalidValue("ticker")
	}
	return nil
}

// ValidateNotes checks the free-text notes of an analysis. The limit counts characters.
func ValidateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return InvalidValue("notes")
	}
	return nil
}

// Validate ensures the analysis adheres to domain rules
func (a *Analysis) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	if err := ValidateTicker(a.Ticker); err != nil {
		return err
	}
	return ValidateNotes(a.Notes)
}
