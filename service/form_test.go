package service

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-calculator/domain"
)

func TestParseInvestmentForm_AddsNumbersNotStrings(t *testing.T) {
	input, err := ParseInvestmentForm(domain.InvestmentForm{
		InitialInvestment: "202",
		AnnualInvestment:  "101",
		ExpectedReturn:    "0",
		Duration:          "1",
	})
	require.NoError(t, err)

	assert.Equal(t, 303.0, input.InitialInvestment+input.AnnualInvestment)

	snapshots := CalculateInvestmentResults(input)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 303.0, snapshots[0].ValueEndOfYear)
}

func TestParseInvestmentForm_TrimsAndDefaults(t *testing.T) {
	input, err := ParseInvestmentForm(domain.InvestmentForm{
		InitialInvestment: " 15000.50 ",
		AnnualInvestment:  "",
		ExpectedReturn:    "5.5",
		Duration:          "10",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.InvestmentInput{
		InitialInvestment: 15000.5,
		AnnualInvestment:  0,
		ExpectedReturn:    5.5,
		Duration:          10,
	}, input)
}

func TestParseInvestmentForm_NegativeDurationReadsAsZero(t *testing.T) {
	for _, raw := range []string{"-3", "-5000", "-99999999999999999999", "-1e20"} {
		input, err := ParseInvestmentForm(domain.InvestmentForm{Duration: raw})
		require.NoError(t, err, "duration %q", raw)
		assert.Zero(t, input.Duration, "duration %q", raw)
		assert.Empty(t, CalculateInvestmentResults(input))
	}
}

func TestParseInvestmentForm_HugeExponentsFailFast(t *testing.T) {
	forms := []domain.InvestmentForm{
		{Duration: "1e100000000"},
		{Duration: "1e-100000000"},
		{InitialInvestment: "1e100000000"},
		{AnnualInvestment: "1e-100000000"},
		{ExpectedReturn: "-1e2147483647"},
	}

	for _, form := range forms {
		done := make(chan error, 1)
		go func() {
			_, err := ParseInvestmentForm(form)
			done <- err
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, ErrInvalidNumber, "%+v", form)
		case <-time.After(2 * time.Second):
			t.Fatalf("parsing %+v did not return", form)
		}
	}
}

func TestParseInvestmentForm_Errors(t *testing.T) {
	tests := map[string]domain.InvestmentForm{
		"text amount":         {InitialInvestment: "lots"},
		"concatenated text":   {AnnualInvestment: "202101abc"},
		"text rate":           {ExpectedReturn: "six"},
		"fractional duration": {Duration: "2.5"},
		"huge duration":       {Duration: "99999999999999999999"},
		"huge exponent":       {Duration: "1e100000000"},
		"tiny exponent":       {Duration: "1e-100000000"},
		"huge amount":         {InitialInvestment: "1e100000000"},
		"tiny rate":           {ExpectedReturn: "1e-100000000"},
	}

	for name, form := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvestmentForm(form)
			assert.ErrorIs(t, err, ErrInvalidNumber)
		})
	}
}

func TestFormFromValues(t *testing.T) {
	values := url.Values{}
	values.Set(FieldInitialInvestment, "10000")
	values.Set(FieldAnnualInvestment, "1200")
	values.Set(FieldExpectedReturn, "6")
	values.Set(FieldDuration, "10")

	assert.Equal(t, domain.InvestmentForm{
		InitialInvestment: "10000",
		AnnualInvestment:  "1200",
		ExpectedReturn:    "6",
		Duration:          "10",
	}, FormFromValues(values))
}
