// File: scan.go
// Title: Scan Command
// Description: Scans template directories for script usage and prints
//              the aggregated report.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lokalog "github.com/lokascript/semantic-go/core/log"
	"github.com/lokascript/semantic-go/scanner"
)

func newScanCmd(root *rootOptions) *cobra.Command {
	var extensions []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan [directories...]",
		Short: "Scan template directories for script usage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scanner.New(scanner.Options{
				IncludeExtensions: extensions,
				Logger:            lokalog.GetDefault(),
			})

			aggregate, err := s.ScanDirectories(args)
			if err != nil {
				return err
			}
			report := aggregate.Report()

			out := cmd.OutOrStdout()
			if asJSON {
				encoded, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(encoded))
				return nil
			}

			fmt.Fprintf(out, "Files with usage: %d\n", report.FileCount)
			fmt.Fprintf(out, "Commands:   %s\n", strings.Join(report.Commands, ", "))
			fmt.Fprintf(out, "Blocks:     %s\n", strings.Join(report.Blocks, ", "))
			fmt.Fprintf(out, "Positional: %t\n", report.Positional)
			if len(report.Languages) > 0 {
				fmt.Fprintf(out, "Languages:  %s (bundle: %s)\n", strings.Join(report.Languages, ", "), report.Region)
			}
			if warnings := scanner.Validate(aggregate.Total); len(warnings) > 0 {
				for _, warning := range warnings {
					fmt.Fprintf(out, "Warning: %s\n", warning)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions to scan (default: common template extensions)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
