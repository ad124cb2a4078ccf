package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/extrato-go/pkg/extrato"
	"github.com/ukaji3/extrato-go/pkg/extrato/models"
	"github.com/ukaji3/extrato-go/pkg/extrato/output"
)

var (
	processOutput   string
	processFormat   string
	processPretty   bool
	processPassword string
	keepUnmerged    bool
)

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [input.xlsx]",
		Short: "Unmerge a statement and write the processed ledger",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}

	cmd.Flags().StringVarP(&processOutput, "output", "o", "", "Output file path (default: <input>_processed.<format>)")
	cmd.Flags().StringVar(&processFormat, "format", "xlsx", "Output format: xlsx or json")
	cmd.Flags().BoolVar(&processPretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&processPassword, "password", "", "Password for encrypted workbooks")
	cmd.Flags().BoolVar(&keepUnmerged, "keep-unmerged", false, "Also save the unmerged workbook as <input>_unmerged.xlsx")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	log := newLogger()
	opts := extrato.Options{Password: processPassword, Logger: &log}

	if processFormat != "xlsx" && processFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be xlsx or json)", processFormat)
	}

	data, err := extrato.ReadFile(inputPath)
	if err != nil {
		return err
	}

	flat, err := extrato.Unmerge(data, opts)
	if err != nil {
		return fmt.Errorf("unmerge failed: %w", err)
	}
	if keepUnmerged {
		path := extrato.OutputPath(inputPath, extrato.SuffixUnmerged, ".xlsx")
		if err := extrato.WriteFile(path, flat); err != nil {
			return fmt.Errorf("failed to write unmerged workbook: %w", err)
		}
		log.Info().Str("path", path).Msg("unmerged workbook saved")
	}

	l, err := extrato.Extract(flat, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	out, err := serialize(l)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	outputPath := processOutput
	if outputPath == "" {
		outputPath = extrato.OutputPath(inputPath, extrato.SuffixProcessed, "."+processFormat)
	}
	if err := extrato.WriteFile(outputPath, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows, total %s\n", outputPath, len(l.Rows), l.Total().StringFixed(2))
	return nil
}

func serialize(l *models.Ledger) ([]byte, error) {
	if processFormat == "json" {
		return output.ToJSON(l, processPretty)
	}
	return output.ToXLSX(l)
}
