// Package main provides the CLI entry point for extrato-go.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/extrato-go/internal/buildinfo"
	"github.com/ukaji3/extrato-go/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extrato",
		Short: "Turn bank statement spreadsheets into a clean ledger",
		Long: `extrato-go removes merged-cell formatting from a bank statement workbook
and rebuilds it as a ledger: one row per transaction with forward-filled dates,
joined descriptions, an entry type and an import flag.`,
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logger.FormatConsole, "Log format: console or json")

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newUnmergeCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

func newLogger() zerolog.Logger {
	return logger.New(logLevel, logFormat)
}
