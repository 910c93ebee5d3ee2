// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/ductolator/ductolator/duct"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/mdl/mat"
	"github.com/ductolator/ductolator/out"
	"github.com/spf13/cobra"
)

func chartCmd() *cobra.Command {
	var d inp.Design
	var dirout string
	var split bool
	var np int
	c := &cobra.Command{
		Use:   "chart",
		Short: "Draw friction, Moody, air density, pipe and fluid charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amdl, err := d.AirModel()
			if err != nil {
				return err
			}
			fmdl, err := d.FluidModel()
			if err != nil {
				return err
			}
			model, err := friction.NewDuct(d.Friction)
			if err != nil {
				return err
			}
			st := amdl.State()
			charts := []*out.Chart{
				out.FrictionChart(st, duct.Options{Model: model, Roughness: duct.Galvanized}, np),
				out.MoodyChart(model, []float64{0, 1e-5, 1e-4, 1e-3, 1e-2, 5e-2}, np),
				out.DensityChart([]float64{0, 2500, 5000, 7500}, np),
			}
			db := mat.Default()
			_, pipes, _ := db.Names()
			for _, name := range pipes {
				p, err := db.Pipe(name)
				if err != nil {
					return err
				}
				if len(p.Sizes) > 0 && p.C > 0 {
					charts = append(charts, out.PipeChart(p, fmdl.State(), np))
				}
			}
			out.Draw(dirout, "charts", split, charts...)
			fmdl.Plot(dirout, "fluid_"+fmdl.Name(), np)
			fmt.Fprintf(cmd.OutOrStdout(), "%d charts saved in %s\n", len(charts)+1, dirout)
			return nil
		},
	}
	designFlags(c, &d)
	c.Flags().StringVar(&dirout, "dir", "/tmp/ductolator", "output directory")
	c.Flags().BoolVar(&split, "split", true, "save each chart in its own figure")
	c.Flags().IntVar(&np, "np", 51, "number of points per curve")
	return c
}
