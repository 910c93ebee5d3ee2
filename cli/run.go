// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ductolator/ductolator/calc"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/out"
	"github.com/spf13/cobra"
)

func runCmd(g *globals) *cobra.Command {
	var save bool
	var format string
	var workers int

	c := &cobra.Command{
		Use:   "run <job.yaml|job.json>",
		Short: "Size all duct and pipe runs of a job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := inp.ReadJob(args[0])
			if err != nil {
				return err
			}
			runner := calc.NewRunner(g.log)
			runner.Workers = workers
			rep, err := runner.Run(cmd.Context(), job)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err = enc.Encode(rep); err != nil {
					return err
				}
			case "pretty", "":
				fmt.Fprint(w, out.Format(rep))
			default:
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}
			if save {
				if err = rep.Save(job.Design.DirOut); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "report saved in %s\n", job.Design.DirOut)
			}
			if n := rep.Notes(); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d run(s) with notes\n", n)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&save, "save", false, "save the report as JSON in the output directory of the job")
	c.Flags().StringVar(&format, "format", "pretty", "output format: pretty|json")
	c.Flags().IntVar(&workers, "workers", 0, "maximum number of concurrent runs (0 = number of CPUs)")
	return c
}
