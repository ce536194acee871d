package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "rentctl",
		Short:        "Operator tool for the rentroll billing engine",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		MigrateCmd(),
		RefreshCmd(),
		RegenerateCmd(),
		SettlementCmd(),
		TerminateCmd(),
		LedgerCmd(),
		ShareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
