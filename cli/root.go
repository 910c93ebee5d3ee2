// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cli implements the ductolator command line interface
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options shared by all commands
type globals struct {
	debug bool
	log   *slog.Logger
}

// NewRootCmd returns the root command with all subcommands
func NewRootCmd() *cobra.Command {
	g := new(globals)
	cmd := &cobra.Command{
		Use:          "ductolator",
		Short:        "Ductolator -- duct and pipe sizing",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if g.debug {
				level = slog.LevelDebug
			}
			g.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log every run to stderr")
	cmd.AddCommand(runCmd(g), airCmd(), mixCmd(), ductCmd(g), pipeCmd(g), chartCmd())
	return cmd
}
