// Package render turns yearly snapshots into the results view shown to users
// and writes that view as a text table, JSON or YAML.
package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"investment-calculator/domain"
)

// InvalidInputMessage is shown instead of a table when there is nothing to
// tabulate.
const InvalidInputMessage = "Please enter a duration greater than zero."

// BuildResults derives the table rows from the snapshots. The initial
// investment is recovered from the first year, so an empty sequence is
// reported as invalid input before anything is indexed.
func BuildResults(snapshots []domain.YearlySnapshot) domain.ResultsView {
	if len(snapshots) == 0 {
		return domain.ResultsView{
			Valid:   false,
			Message: InvalidInputMessage,
			Rows:    []domain.ResultRow{},
		}
	}

	first := snapshots[0]
	initialInvestment := first.ValueEndOfYear - first.Interest - first.AnnualInvestment

	rows := make([]domain.ResultRow, 0, len(snapshots))
	for _, snapshot := range snapshots {
		totalInterest := snapshot.ValueEndOfYear -
			snapshot.AnnualInvestment*float64(snapshot.Year) -
			initialInvestment
		investedCapital := snapshot.ValueEndOfYear - totalInterest

		rows = append(rows, domain.ResultRow{
			Year:            snapshot.Year,
			InvestmentValue: roundTo2Decimals(snapshot.ValueEndOfYear),
			InterestYear:    roundTo2Decimals(snapshot.Interest),
			TotalInterest:   roundTo2Decimals(totalInterest),
			InvestedCapital: roundTo2Decimals(investedCapital),
		})
	}

	return domain.ResultsView{
		Valid:             true,
		InitialInvestment: roundTo2Decimals(initialInvestment),
		Rows:              rows,
		Summary:           summarize(newPrinter(), rows[len(rows)-1]),
	}
}

func summarize(p *message.Printer, last domain.ResultRow) string {
	years := "years"
	if last.Year == 1 {
		years = "year"
	}
	return p.Sprintf(
		"After %d %s your investment is worth %s: %s invested capital plus %s total interest.",
		last.Year, years,
		formatCurrency(p, last.InvestmentValue),
		formatCurrency(p, last.InvestedCapital),
		formatCurrency(p, last.TotalInterest),
	)
}

// newPrinter returns a fresh printer per render; printers carry formatting
// buffers and are not safe for concurrent use.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// formatCurrency renders whole US dollars with grouping, e.g. $11,800.
func formatCurrency(p *message.Printer, value float64) string {
	value = math.Round(value)
	if value == 0 {
		value = 0 // drop the sign of -0
	}
	if value < 0 {
		return "-$" + p.Sprintf("%.0f", -value)
	}
	return "$" + p.Sprintf("%.0f", value)
}

func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
