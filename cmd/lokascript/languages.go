// File: languages.go
// Title: Languages Command
// Description: Lists the built-in languages with their grammar
//              characteristics and supported commands.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lokascript/semantic-go/semantic"
)

func newLanguagesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the built-in languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := semantic.Default()
			if err != nil {
				return err
			}
			registry := engine.Registry()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tORDER\tMARKING\tCOMMANDS")
			for _, code := range registry.Languages() {
				prof, err := registry.Profile(code)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "%s\t%s (%s)\t%s\t%s\t%s\n",
					prof.Code, prof.Name, prof.NativeName,
					prof.WordOrder, prof.Marking,
					strings.Join(registry.Commands(code), ", "))
			}
			return w.Flush()
		},
	}
}
