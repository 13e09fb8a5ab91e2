// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency represents a monetary currency using ISO 4217 codes.
type Currency string

// Supported currencies in the system.
const (
	CurrencyUSD Currency = "USD" // US Dollar
	CurrencyCAD Currency = "CAD" // Canadian Dollar
	CurrencyEUR Currency = "EUR" // Euro
	CurrencyGBP Currency = "GBP" // British Pound
)

// Money errors define domain-specific error conditions.
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// Money represents a monetary value with currency.
// It stores amounts in the smallest unit (cents) so a displayed cost never
// carries more than two decimals.
//
// Example usage:
//
//	cost := valueobject.NewMoneyFromFloat(1450.5, valueobject.CurrencyUSD)
//	cost.Format(language.AmericanEnglish) // "$1,450.5"
type Money struct {
	// Amount in smallest currency unit (e.g., cents for USD)
	Amount int64 `json:"amount"`

	// Currency using ISO 4217 code
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Amount in smallest unit (e.g., cents)
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount int64, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// maxCents is 2^63, the first cent count an int64 cannot hold.
const maxCents float64 = 1 << 63

// NewMoneyFromFloat creates a new Money from a decimal amount, rounding to
// the nearest cent (half away from zero). Amounts beyond the int64 cent
// range saturate instead of wrapping.
//
// Parameters:
//   - amount: Decimal amount (e.g., 1450.25)
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoneyFromFloat(amount float64, currency Currency) Money {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Zero(currency)
	}
	cents := math.Round(amount * 100)
	switch {
	case cents >= maxCents:
		return NewMoney(math.MaxInt64, currency)
	case cents <= -maxCents:
		return NewMoney(-math.MaxInt64, currency)
	}
	return NewMoney(int64(cents), currency)
}

// ParseCurrency validates an ISO 4217 code against the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	switch c {
	case CurrencyUSD, CurrencyCAD, CurrencyEUR, CurrencyGBP:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
}

// Zero returns a zero-value Money in the specified currency.
func Zero(currency Currency) Money {
	return NewMoney(0, currency)
}

// IsPositive checks if the Money amount is positive.
//
// Returns:
//   - bool: true if amount is greater than zero
func (m Money) IsPositive() bool {
	return m.Amount > 0
}

// ToFloat converts the Money amount to a float64 representation.
//
// Returns:
//   - float64: Decimal representation (e.g., 19.99)
func (m Money) ToFloat() float64 {
	return float64(m.Amount) / 100.0
}

// String returns a formatted string representation of the Money.
//
// Returns:
//   - string: Formatted string (e.g., "USD 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.Currency, m.ToFloat())
}

// Format returns the amount with its currency symbol and the digit grouping
// of the given locale. Trailing zero cents are dropped, so 1450.00 renders
// as "$1,450" and 1450.50 as "$1,450.5".
//
// Parameters:
//   - tag: locale used for grouping and decimal separators
//
// Returns:
//   - string: Formatted string with currency symbol (e.g., "$1,450")
func (m Money) Format(tag language.Tag) string {
	return FormatAmount(m.ToFloat(), m.Currency, tag)
}

// FormatAmount formats a decimal amount the way Money.Format does, without
// the int64 cent range limit. It rounds to cents first.
func FormatAmount(amount float64, currency Currency, tag language.Tag) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = math.Round(amount*100) / 100

	p := message.NewPrinter(tag)
	digits := p.Sprint(number.Decimal(math.Abs(amount), number.MaxFractionDigits(2)))
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + currencySymbol(currency) + digits
}

// currencySymbol returns the symbol for a given currency.
func currencySymbol(c Currency) string {
	symbols := map[Currency]string{
		CurrencyUSD: "$",
		CurrencyCAD: "$",
		CurrencyEUR: "€",
		CurrencyGBP: "£",
	}

	if symbol, ok := symbols[c]; ok {
		return symbol
	}
	return string(c) + " "
}
