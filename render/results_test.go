package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"investment-calculator/domain"
)

// snapshots for 10,000 initial, 1,200 yearly, 6% return.
var twoYears = []domain.YearlySnapshot{
	{Year: 1, ValueEndOfYear: 11800, Interest: 600, AnnualInvestment: 1200},
	{Year: 2, ValueEndOfYear: 13708, Interest: 708, AnnualInvestment: 1200},
}

func TestBuildResults_EmptyShowsMessage(t *testing.T) {
	for _, snapshots := range [][]domain.YearlySnapshot{nil, {}} {
		var view domain.ResultsView
		require.NotPanics(t, func() { view = BuildResults(snapshots) })

		assert.False(t, view.Valid)
		assert.Equal(t, InvalidInputMessage, view.Message)
		assert.Empty(t, view.Rows)
		assert.Contains(t, Table(view), InvalidInputMessage)
	}
}

func TestBuildResults_DerivesInitialInvestment(t *testing.T) {
	view := BuildResults(twoYears)

	require.True(t, view.Valid)
	assert.Empty(t, view.Message)
	assert.Equal(t, 10000.0, view.InitialInvestment)
	require.Len(t, view.Rows, 2)

	assert.Equal(t, domain.ResultRow{
		Year:            1,
		InvestmentValue: 11800,
		InterestYear:    600,
		TotalInterest:   600,
		InvestedCapital: 11200,
	}, view.Rows[0])
	assert.Equal(t, domain.ResultRow{
		Year:            2,
		InvestmentValue: 13708,
		InterestYear:    708,
		TotalInterest:   1308,
		InvestedCapital: 12400,
	}, view.Rows[1])
}

func TestBuildResults_Summary(t *testing.T) {
	view := BuildResults(twoYears)
	assert.Equal(t,
		"After 2 years your investment is worth $13,708: $12,400 invested capital plus $1,308 total interest.",
		view.Summary)

	single := BuildResults(twoYears[:1])
	assert.Contains(t, single.Summary, "After 1 year your")
}

func TestTable(t *testing.T) {
	out := Table(BuildResults(twoYears))

	for _, want := range append(tableHeaders,
		"Initial investment: $10,000",
		"$11,800",
		"$13,708",
		"$1,308",
		"$12,400",
	) {
		assert.Contains(t, out, want)
	}
}

func TestFormatCurrency(t *testing.T) {
	p := newPrinter()

	assert.Equal(t, "$0", formatCurrency(p, 0))
	assert.Equal(t, "$0", formatCurrency(p, -0.2))
	assert.Equal(t, "$1,235", formatCurrency(p, 1234.5))
	assert.Equal(t, "-$2,500", formatCurrency(p, -2500))
	assert.Equal(t, "$1,000,000", formatCurrency(p, 1_000_000))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, BuildResults(twoYears), FormatJSON))

	var decoded domain.ResultsView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.Valid)
	assert.Len(t, decoded.Rows, 2)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, BuildResults(nil), FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, false, decoded["valid"])
	assert.Equal(t, InvalidInputMessage, decoded["message"])
}

func TestWrite_TableIsDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, BuildResults(twoYears), ""))
	assert.Contains(t, buf.String(), "Investment Value")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, BuildResults(twoYears), "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
