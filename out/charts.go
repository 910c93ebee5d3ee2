// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/ductolator/ductolator/duct"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/mdl/mat"
	"github.com/ductolator/ductolator/pipe"
	"github.com/ductolator/ductolator/sec"
)

// chart diameters [in]
var ChartDiameters = []float64{4, 6, 8, 10, 12, 16, 20, 24, 30, 36, 48}

// logSpace returns n values from a to b evenly spaced in log scale
func logSpace(a, b float64, n int) []float64 {
	e := utl.LinSpace(math.Log10(a), math.Log10(b), n)
	for i := range e {
		e[i] = math.Pow(10, e[i])
	}
	return e
}

// FrictionChart returns the duct friction chart: flow versus friction rate for
// round ducts of constant diameter
func FrictionChart(st air.State, opts duct.Options, np int) (o *Chart) {
	o = &Chart{
		Id:    "friction",
		Title: io.Sf("round duct, %g F, %g ft", st.TempF, st.AltFt),
		Xlbl:  texLabel("rate", "in.\\,w.g."),
		Ylbl:  texLabel("cfm", "cfm"),
		Xlog:  true,
		Ylog:  true,
	}
	Q := logSpace(10, 1e5, np)
	for _, d := range ChartDiameters {
		var X, Y []float64
		for _, q := range Q {
			V := duct.Velocity(q, sec.Round{D: d})
			if V < 100 || V > 8000 {
				continue
			}
			X = append(X, duct.DpPer100(V, d, st, opts))
			Y = append(Y, q)
		}
		o.Add(X, Y, plt.A{L: io.Sf("%g in", d)})
	}
	return
}

// MoodyChart returns the friction factor versus Reynolds number for relative roughness values
func MoodyChart(mdl friction.Model, relRough []float64, np int) (o *Chart) {
	o = &Chart{
		Id:    "moody",
		Title: mdl.Name(),
		Xlbl:  texLabel("Re", ""),
		Ylbl:  texLabel("f", ""),
		Xlog:  true,
		Ylog:  true,
	}
	Re := logSpace(600, 1e8, np)
	for _, r := range relRough {
		F := make([]float64, np)
		for i, re := range Re {
			F[i] = friction.Factor(mdl, re, 1, r)
		}
		o.Add(Re, F, plt.A{L: io.Sf("ε/D=%g", r)})
	}
	return
}

// DensityChart returns the density of air versus temperature for altitudes
func DensityChart(altitudes []float64, np int) (o *Chart) {
	o = &Chart{
		Id:    "density",
		Title: "air",
		Xlbl:  texLabel("T", "F"),
		Ylbl:  texLabel("rho", "lbm/ft^3"),
	}
	T := utl.LinSpace(-20, 140, np)
	for _, z := range altitudes {
		R := make([]float64, np)
		for i, t := range T {
			R[i] = air.At(t, z).Density
		}
		o.Add(T, R, plt.A{L: io.Sf("%g ft", z)})
	}
	return
}

// PipeChart returns the Hazen-Williams friction rate versus flow for all sizes of a pipe material
func PipeChart(m mat.Pipe, st fluid.State, np int) (o *Chart) {
	o = &Chart{
		Id:    "pipe-" + m.Name,
		Title: io.Sf("%s, %s %g F", m.Name, st.Fluid, st.TempF),
		Xlbl:  texLabel("rate", "psi"),
		Ylbl:  texLabel("gpm", "gpm"),
		Xlog:  true,
		Ylog:  true,
	}
	C := st.ApplyC(m.C)
	Q := logSpace(0.5, 5000, np)
	for _, s := range m.Sizes {
		var X, Y []float64
		for _, q := range Q {
			V := pipe.Velocity(q, s.ID)
			if V < 0.5 || V > 12 {
				continue
			}
			X = append(X, pipe.HazenWilliams(q, C, s.ID, st.SpecificGravity()).PsiPer100)
			Y = append(Y, q)
		}
		o.Add(X, Y, plt.A{L: s.Nominal})
	}
	return
}
