// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ductolator/ductolator/calc"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/out"
	"github.com/spf13/cobra"
)

// designFlags binds the design conditions to flags of c
func designFlags(c *cobra.Command, d *inp.Design) {
	d.SetDefault()
	c.Flags().Float64Var(&d.Temp, "temp", d.Temp, "air dry-bulb temperature [F]")
	c.Flags().Float64Var(&d.Alt, "alt", d.Alt, "altitude [ft]")
	c.Flags().StringVar(&d.Friction, "model", d.Friction, "friction correlation: "+strings.Join(friction.Names(), "|"))
	c.Flags().StringVar(&d.Fluid, "fluid", d.Fluid, "liquid: "+strings.Join(fluid.Names(), "|"))
	c.Flags().Float64Var(&d.FluidTemp, "fluid-temp", d.FluidTemp, "liquid temperature [F]")
	c.Flags().Float64Var(&d.Glycol, "glycol", d.Glycol, "glycol concentration [%]")
}

// single runs a job with one run and prints the report
func single(cmd *cobra.Command, g *globals, job *inp.Job) error {
	job.Key = cmd.Name()
	if err := job.Validate(); err != nil {
		return err
	}
	rep, err := calc.NewRunner(g.log).Run(cmd.Context(), job)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out.Format(rep))
	return nil
}

func airCmd() *cobra.Command {
	var d inp.Design
	c := &cobra.Command{
		Use:   "air",
		Short: "Print the properties of air at design conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mdl, err := d.AirModel()
			if err != nil {
				return err
			}
			st := mdl.State()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "temperature    = %g F\n", st.TempF)
			fmt.Fprintf(w, "altitude       = %g ft\n", st.AltFt)
			fmt.Fprintf(w, "pressure       = %.4f psia\n", st.Pressure)
			fmt.Fprintf(w, "density        = %.5f lbm/ft³\n", st.Density)
			fmt.Fprintf(w, "density ratio  = %.4f\n", st.DensityRatio())
			fmt.Fprintf(w, "viscosity      = %.4e lbm/(ft·s)\n", st.Mu)
			fmt.Fprintf(w, "kinematic visc = %.4e ft²/s\n", st.Nu)
			return nil
		},
	}
	designFlags(c, &d)
	return c
}

func mixCmd() *cobra.Command {
	var oa, ra []string
	var alt float64
	c := &cobra.Command{
		Use:   "mix",
		Short: "Mix outdoor and return air streams",
		Long: `Compute the mixed flow and dry-bulb temperature of outdoor air (--oa) and
return air (--ra) streams given as cfm:temp; e.g. --oa 2000:95 --ra 8000:75.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oaStreams, err := parseStreams(oa)
			if err != nil {
				return err
			}
			raStreams, err := parseStreams(ra)
			if err != nil {
				return err
			}
			cfm, tMix := air.Mix(append(oaStreams, raStreams...)...)
			if cfm <= 0 {
				return fmt.Errorf("mixing needs at least one stream with positive flow")
			}
			cfmOA, tOA := air.Mix(oaStreams...)
			_, tRA := air.Mix(raStreams...)
			frac := air.OutdoorFraction(tMix, tOA, tRA)
			if math.IsNaN(frac) {
				frac = cfmOA / cfm
			}
			mdl, err := (inp.Design{Temp: tMix, Alt: alt}).AirModel()
			if err != nil {
				return err
			}
			st := mdl.State()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mixed flow     = %.1f cfm\n", cfm)
			fmt.Fprintf(w, "mixed temp     = %.2f F\n", tMix)
			fmt.Fprintf(w, "outdoor frac   = %.4f\n", frac)
			fmt.Fprintf(w, "density        = %.5f lbm/ft³\n", st.Density)
			fmt.Fprintf(w, "kinematic visc = %.4e ft²/s\n", st.Nu)
			return nil
		},
	}
	c.Flags().StringSliceVar(&oa, "oa", nil, "outdoor air stream cfm:temp")
	c.Flags().StringSliceVar(&ra, "ra", nil, "return air stream cfm:temp")
	c.Flags().Float64Var(&alt, "alt", 0, "altitude [ft]")
	return c
}

func ductCmd(g *globals) *cobra.Command {
	r := new(inp.DuctRun)
	job := &inp.Job{Ducts: []*inp.DuctRun{r}}
	var fittings []string
	c := &cobra.Command{
		Use:   "duct",
		Short: "Size or check one duct run",
		Long: `Size a duct for a friction rate (--friction) or a velocity (--velocity),
or check a given section (--diameter, or --width and --height).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r.Name = "duct"
			if r.Diameter > 0 || r.Width > 0 {
				r.Mode = "check"
			}
			var err error
			if r.Fittings, err = parseFittings(fittings); err != nil {
				return err
			}
			r.SetDefault()
			return single(cmd, g, job)
		},
	}
	designFlags(c, &job.Design)
	c.Flags().Float64Var(&r.Cfm, "cfm", 0, "air flow [ft³/min]")
	c.Flags().StringVar(&r.Shape, "shape", "round", "shape: round|rect|oval")
	c.Flags().Float64Var(&r.Friction, "friction", 0, "target friction rate [in. w.g./100 ft]")
	c.Flags().Float64Var(&r.Velocity, "velocity", 0, "target velocity [ft/min]")
	c.Flags().Float64Var(&r.Aspect, "aspect", 1, "aspect ratio of rect/oval")
	c.Flags().Float64Var(&r.Diameter, "diameter", 0, "round diameter to check [in]")
	c.Flags().Float64Var(&r.Width, "width", 0, "long side or major axis to check [in]")
	c.Flags().Float64Var(&r.Height, "height", 0, "short side or minor axis [in]")
	c.Flags().BoolVar(&r.Nominal, "nominal", false, "round up to standard sizes")
	c.Flags().StringVar(&r.Material, "material", "galvanized", "duct material")
	c.Flags().Float64Var(&r.Length, "length", 0, "run length [ft]")
	c.Flags().StringSliceVar(&fittings, "fitting", nil, "fitting name, optionally followed by :count; e.g. elbow-90:2")
	c.Flags().StringVar(&r.LossMode, "loss", "", "fitting loss mode: k|leq")
	return c
}

func pipeCmd(g *globals) *cobra.Command {
	r := new(inp.PipeRun)
	job := &inp.Job{Pipes: []*inp.PipeRun{r}}
	var fittings []string
	c := &cobra.Command{
		Use:   "pipe",
		Short: "Size or check one pipe run",
		Long: `Size a pipe for a friction rate (--friction), check a trade size (--size)
or an inside diameter (--diameter), or size a gravity drain (--slope).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r.Name = "pipe"
			switch {
			case r.Slope > 0:
				r.Mode = "manning"
			case r.Size != "" || r.Diameter > 0:
				r.Mode = "check"
			}
			var err error
			if r.Fittings, err = parseFittings(fittings); err != nil {
				return err
			}
			r.SetDefault()
			return single(cmd, g, job)
		},
	}
	designFlags(c, &job.Design)
	c.Flags().Float64Var(&r.Gpm, "gpm", 0, "flow [gal/min]")
	c.Flags().StringVar(&r.Method, "method", "hw", "friction method: hw|dw")
	c.Flags().Float64Var(&r.Friction, "friction", 0, "target friction rate [psi/100 ft]")
	c.Flags().StringVar(&r.Size, "size", "", "trade size to check; e.g. 2 or 1-1/2")
	c.Flags().Float64Var(&r.Diameter, "diameter", 0, "inside diameter to check [in]")
	c.Flags().StringVar(&r.Material, "material", "", "pipe material (default copper-l, or cast-iron for drains)")
	c.Flags().Float64Var(&r.Length, "length", 0, "developed length [ft]")
	c.Flags().Float64Var(&r.Slope, "slope", 0, "drain slope [ft/ft]")
	c.Flags().Float64Var(&r.Depth, "depth", 1, "drain depth ratio y/D")
	c.Flags().StringSliceVar(&fittings, "fitting", nil, "fitting name, optionally followed by :count; e.g. elbow-90:2")
	c.Flags().StringVar(&r.LossMode, "loss", "", "fitting loss mode: k|leq")
	return c
}

// parseStreams converts "cfm:temp" items into air streams
func parseStreams(items []string) (res []air.Stream, err error) {
	for _, item := range items {
		a, b, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("stream %q: expected cfm:temp", item)
		}
		var s air.Stream
		if s.Cfm, err = strconv.ParseFloat(a, 64); err != nil {
			return nil, fmt.Errorf("stream %q: invalid flow", item)
		}
		if s.TempF, err = strconv.ParseFloat(b, 64); err != nil {
			return nil, fmt.Errorf("stream %q: invalid temperature", item)
		}
		res = append(res, s)
	}
	return
}

// parseFittings converts "name[:count]" items into fittings
func parseFittings(items []string) (res []*inp.FittingData, err error) {
	for _, item := range items {
		f := &inp.FittingData{Name: strings.TrimSpace(item)}
		if name, count, ok := strings.Cut(f.Name, ":"); ok {
			f.Name = name
			if f.Count, err = strconv.Atoi(count); err != nil || f.Count < 1 {
				return nil, fmt.Errorf("fitting %q: count must be a positive integer", item)
			}
		}
		res = append(res, f)
	}
	return
}
