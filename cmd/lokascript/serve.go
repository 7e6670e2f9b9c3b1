// File: serve.go
// Title: Serve Command
// Description: Runs the HTTP API server for parsing, validation and
//              template scanning.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"github.com/spf13/cobra"

	lokalog "github.com/lokascript/semantic-go/core/log"
	"github.com/lokascript/semantic-go/internal/server"
	"github.com/lokascript/semantic-go/semantic"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := semantic.Default()
			if err != nil {
				return err
			}

			if addr == "" {
				addr = root.getString("server.addr", ":8080")
			}

			srv := server.New(server.Options{
				Engine:  engine,
				Addr:    addr,
				Version: version,
				Logger:  lokalog.GetDefault(),
			})
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")

	return cmd
}
