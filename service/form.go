package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"investment-calculator/domain"
)

// Form field names shared by query strings, HTML forms and CLI flags.
const (
	FieldInitialInvestment = "initialInvestment"
	FieldAnnualInvestment  = "annualInvestment"
	FieldExpectedReturn    = "expectedReturn"
	FieldDuration          = "duration"
)

// FormFromValues reads the form fields from query or form-encoded values.
func FormFromValues(values url.Values) domain.InvestmentForm {
	return domain.InvestmentForm{
		InitialInvestment: values.Get(FieldInitialInvestment),
		AnnualInvestment:  values.Get(FieldAnnualInvestment),
		ExpectedReturn:    values.Get(FieldExpectedReturn),
		Duration:          values.Get(FieldDuration),
	}
}

// ParseInvestmentForm converts the textual form into numbers. Empty fields
// read as zero. Arithmetic only ever happens on the parsed values, so "202"
// and "101" add up to 303.
func ParseInvestmentForm(form domain.InvestmentForm) (domain.InvestmentInput, error) {
	initial, err := parseAmount(FieldInitialInvestment, form.InitialInvestment)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	annual, err := parseAmount(FieldAnnualInvestment, form.AnnualInvestment)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	expectedReturn, err := parseAmount(FieldExpectedReturn, form.ExpectedReturn)
	if err != nil {
		return domain.InvestmentInput{}, err
	}
	duration, err := parseYears(FieldDuration, form.Duration)
	if err != nil {
		return domain.InvestmentInput{}, err
	}

	return domain.InvestmentInput{
		InitialInvestment: initial,
		AnnualInvestment:  annual,
		ExpectedReturn:    expectedReturn,
		Duration:          duration,
	}, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", ErrInvalidNumber, field, raw)
	}
	// Conversions and comparisons expand the exponent into digits.
	if exp := d.Exponent(); exp < -maxDecimalExponent || exp > maxDecimalExponent {
		return decimal.Zero, fmt.Errorf("%w: %s %q is out of range", ErrInvalidNumber, field, raw)
	}
	return d, nil
}

func parseAmount(field, raw string) (float64, error) {
	d, err := parseDecimal(field, raw)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

func parseYears(field, raw string) (int, error) {
	d, err := parseDecimal(field, raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s must be a whole number of years, got %q", ErrInvalidNumber, field, strings.TrimSpace(raw))
	}
	// Every duration below one year renders the same empty result.
	if d.IsNegative() {
		return 0, nil
	}
	if d.GreaterThan(decimal.NewFromInt(MaxDurationYears * 10)) {
		return 0, fmt.Errorf("%w: %s %q is out of range", ErrInvalidNumber, field, strings.TrimSpace(raw))
	}
	return int(d.IntPart()), nil
}
