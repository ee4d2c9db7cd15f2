package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/analytics"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/config"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/model"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/runlog"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/statement"
)

type analyzeOptions struct {
	transactionsPath string
	balancesPath     string
	asOf             string
	configPath       string
	format           string
	logDir           string
}

func newAnalyzeCommand() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute cash-flow risk metrics from statement CSVs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.transactionsPath, "transactions", "", "classified transactions CSV (required)")
	_ = cmd.MarkFlagRequired("transactions")
	cmd.Flags().StringVar(&opts.balancesPath, "balances", "", "daily balances CSV (required)")
	_ = cmd.MarkFlagRequired("balances")
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "reference date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "cashflow.yaml with windows and thresholds")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&opts.logDir, "log-dir", "", "directory to append an analysis log entry under")

	return cmd
}

func runAnalyze(out io.Writer, opts analyzeOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	cfg := analytics.DefaultConfig()
	if opts.configPath != "" {
		fileCfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.Analytics()
	}

	asOf := time.Now().UTC()
	if opts.asOf != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", opts.asOf)
		if err != nil {
			return fmt.Errorf("parsing --as-of %q: %w", opts.asOf, err)
		}
	}

	txns, err := readTransactionsFile(opts.transactionsPath)
	if err != nil {
		return err
	}
	if errs := statement.ValidateTransactions(txns); len(errs) > 0 {
		return validationFailure("transactions", errs)
	}

	balances, err := readBalancesFile(opts.balancesPath)
	if err != nil {
		return err
	}
	if errs := statement.ValidateBalances(balances); len(errs) > 0 {
		return validationFailure("balances", errs)
	}

	summary, analyzeErr := analytics.Analyze(txns, balances, asOf, cfg)

	if opts.logDir != "" {
		entry := runlog.Entry{
			Timestamp:    time.Now().UTC(),
			AsOf:         asOf,
			Transactions: len(txns),
			Balances:     len(balances),
			Outcome:      "ok",
		}
		if analyzeErr != nil {
			entry.Outcome = analyzeErr.Error()
		} else {
			entry.RedFlags = len(summary.RedFlags)
			entry.Warnings = len(summary.Warnings)
			entry.Trend = string(summary.Trend)
		}
		if err := runlog.Append(opts.logDir, []runlog.Entry{entry}); err != nil {
			return fmt.Errorf("appending analysis log: %w", err)
		}
	}

	if analyzeErr != nil {
		return analyzeErr
	}

	if opts.format == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	renderText(out, summary)
	return nil
}

func readTransactionsFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()

	txns, err := statement.ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txns, nil
}

func readBalancesFile(path string) ([]model.DailyBalance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening balances: %w", err)
	}
	defer f.Close()

	balances, err := statement.ReadBalances(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return balances, nil
}

func validationFailure(name string, errs []statement.ValidationError) error {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("%s failed validation:\n  %s", name, strings.Join(lines, "\n  "))
}
