package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"investment-calculator/domain"
)

// Output formats accepted by Write.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned by Write for formats other than table, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

var tableHeaders = []string{
	"Year",
	"Investment Value",
	"Interest (Year)",
	"Total Interest",
	"Invested Capital",
}

// Table renders the view as a bordered text table, or just the message when
// the view is invalid.
func Table(view domain.ResultsView) string {
	if !view.Valid {
		return lipgloss.NewStyle().Bold(true).Render(view.Message)
	}

	p := newPrinter()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...)

	for _, row := range view.Rows {
		t.Row(
			strconv.Itoa(row.Year),
			formatCurrency(p, row.InvestmentValue),
			formatCurrency(p, row.InterestYear),
			formatCurrency(p, row.TotalInterest),
			formatCurrency(p, row.InvestedCapital),
		)
	}

	var b strings.Builder
	b.WriteString("Initial investment: ")
	b.WriteString(formatCurrency(p, view.InitialInvestment))
	b.WriteString("\n")
	b.WriteString(t.String())
	if view.Summary != "" {
		b.WriteString("\n")
		b.WriteString(view.Summary)
	}
	return b.String()
}

// Write encodes the view to w in the requested format.
func Write(w io.Writer, view domain.ResultsView, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatTable:
		_, err := fmt.Fprintln(w, Table(view))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
