package main

import (
	"os"

	"github.com/silv-mt-holdings/cashflow-analytics-toolkit/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
