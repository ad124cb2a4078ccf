package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/extrato-go/pkg/extrato"
)

var (
	unmergeOutput   string
	unmergePassword string
)

func newUnmergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unmerge [input.xlsx]",
		Short: "Split every merged cell range of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runUnmerge,
	}

	cmd.Flags().StringVarP(&unmergeOutput, "output", "o", "", "Output file path (default: <input>_unmerged.xlsx)")
	cmd.Flags().StringVar(&unmergePassword, "password", "", "Password for encrypted workbooks")

	return cmd
}

func runUnmerge(cmd *cobra.Command, args []string) error {
	log := newLogger()
	opts := extrato.Options{Password: unmergePassword, Logger: &log}

	if unmergeOutput == "" {
		path, err := extrato.UnmergeFile(args[0], opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	data, err := extrato.ReadFile(args[0])
	if err != nil {
		return err
	}
	flat, err := extrato.Unmerge(data, opts)
	if err != nil {
		return err
	}
	if err := extrato.WriteFile(unmergeOutput, flat); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), unmergeOutput)
	return nil
}
