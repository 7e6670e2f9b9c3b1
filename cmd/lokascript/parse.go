// File: parse.go
// Title: Parse Command
// Description: Resolves command text in a given language and prints
//              the resulting command record as JSON.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go/semantic"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var language string
	var commands []string

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Resolve command text into a command record",
		Example: `  lokascript parse -l en "toggle .active on #button"
  lokascript parse -l ja ".active を 切り替え"
  lokascript parse -l ko -c toggle "#button 에서 .active 를 토글"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := semantic.Default()
			if err != nil {
				return err
			}

			record, err := engine.Resolve(language, strings.Join(args, " "), commands...)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "language code of the input")
	cmd.Flags().StringSliceVarP(&commands, "command", "c", nil, "candidate commands to try, in order")

	return cmd
}
