package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"investment-calculator/domain"
	"investment-calculator/render"
	"investment-calculator/service"
)

func newCalcCmd(c *cli) *cobra.Command {
	var (
		form   domain.InvestmentForm
		output string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Print the yearly results table",
		Example: `  investcalc calc --initial 15000 --contribution 900 --rate 5.5 --duration 10
  investcalc calc --initial 10000 --duration 5 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.calc(cmd.Context(), cmd.OutOrStdout(), form, output)
		},
	}

	// Flags stay textual and go through the same coercion as the form fields.
	cmd.Flags().StringVar(&form.InitialInvestment, "initial", "10000", "initial investment")
	cmd.Flags().StringVar(&form.AnnualInvestment, "contribution", "1200", "contribution added at the end of every year")
	cmd.Flags().StringVar(&form.ExpectedReturn, "rate", "6", "expected yearly return in percent")
	cmd.Flags().StringVar(&form.Duration, "duration", "10", "duration in years")
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "output format: table, json or yaml")
	return cmd
}

func (c *cli) calc(ctx context.Context, w io.Writer, form domain.InvestmentForm, output string) error {
	input, err := service.ParseInvestmentForm(form)
	if err != nil {
		return err
	}

	a, err := newApp(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer a.closeLogged(c.logger)

	snapshots, err := a.service.Calculate(ctx, input)
	if err != nil {
		return err
	}

	c.logger.Debug("calculated projection", zap.Int("years", len(snapshots)))
	return render.Write(w, render.BuildResults(snapshots), output)
}

func newHistoryCmd(c *cli) *cobra.Command {
	var (
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent calculations",
		Long:  "Lists recent calculations. History survives restarts only when INVESTCALC_SQLITE_PATH is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.history(cmd.Context(), cmd.OutOrStdout(), limit, output)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", service.DefaultHistoryLimit, "maximum number of calculations to list")
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatJSON, "output format: json or yaml")
	return cmd
}

func (c *cli) history(ctx context.Context, w io.Writer, limit int, output string) error {
	a, err := newApp(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer a.closeLogged(c.logger)

	records, err := a.service.History(ctx, limit)
	if err != nil {
		return err
	}

	switch output {
	case render.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case render.FormatYAML:
		return yaml.NewEncoder(w).Encode(records)
	default:
		return fmt.Errorf("%w: %q", render.ErrUnknownFormat, output)
	}
}
