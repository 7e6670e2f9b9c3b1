// File: tokenize.go
// Title: Tokenize Command
// Description: Tokenizes command text in a given language and prints
//              the token stream, including any skipped spans.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go/semantic"
)

func newTokenizeCmd(root *rootOptions) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "tokenize [text]",
		Short: "Tokenize command text and print the token stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := semantic.Default()
			if err != nil {
				return err
			}

			stream, err := engine.Tokenize(language, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, tok := range stream.Tokens() {
				if tok.Normalized != "" && tok.Normalized != tok.Text {
					fmt.Fprintf(out, "%-12s %q -> %q [%d:%d]\n", tok.Kind, tok.Text, tok.Normalized, tok.Start, tok.End)
					continue
				}
				fmt.Fprintf(out, "%-12s %q [%d:%d]\n", tok.Kind, tok.Text, tok.Start, tok.End)
			}
			if skipped := stream.SkippedSpans(); len(skipped) > 0 {
				fmt.Fprintf(out, "skipped %d span(s)\n", len(skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "language code of the input")

	return cmd
}
