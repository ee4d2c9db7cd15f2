package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/config"
	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/statement"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new cash-flow analysis project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(dir, name string) error {
	for _, d := range []string{"data", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write cashflow.yaml.
	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, "cashflow.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write header-only statement CSVs.
	txnsPath := filepath.Join(dir, cfg.Data.Transactions)
	if err := os.WriteFile(txnsPath, []byte(statement.TransactionsHeader+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing transactions CSV: %w", err)
	}
	balancesPath := filepath.Join(dir, cfg.Data.Balances)
	if err := os.WriteFile(balancesPath, []byte(statement.BalancesHeader+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing balances CSV: %w", err)
	}

	// Write .gitignore.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("logs/\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized cash-flow project at %s\n", dir)
	return nil
}
