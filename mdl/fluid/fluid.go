// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements properties of liquids flowing in hydronic and plumbing pipes
//  Density and kinematic viscosity are interpolated bilinearly over temperature and
//  glycol concentration. Temperatures are clamped to [TempMin, TempMax] and glycol
//  percentages to [0, GlycolMax] before lookup. Multipliers adjust a base material's
//  Hazen-Williams C factor and absolute roughness for non-water fluids.
package fluid

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/interp"
)

// limits and constants
const (
	TempMin     = 40.0      // lowest tabulated temperature [°F]
	TempMax     = 200.0     // highest tabulated temperature [°F]
	GlycolMax   = 60.0      // highest glycol concentration [%]
	WaterRef    = 62.37     // density of water at 60 °F [lbm/ft³]
	centistokes = 1.0764e-5 // ft²/s per cSt
)

// State holds the properties of a liquid
type State struct {
	Fluid     string  // fluid name
	TempF     float64 // temperature used for lookup (clamped) [°F]
	Glycol    float64 // glycol concentration used for lookup (clamped) [%]
	Density   float64 // ρ [lbm/ft³]
	Nu        float64 // kinematic viscosity [ft²/s]
	HwMult    float64 // multiplier applied to Hazen-Williams C
	RoughMult float64 // multiplier applied to absolute roughness
}

// SpecificGravity returns ρ/ρwater(60 °F)
func (o State) SpecificGravity() float64 {
	return o.Density / WaterRef
}

// ApplyC returns the C factor of a material adjusted for this fluid
func (o State) ApplyC(c float64) float64 {
	return c * o.HwMult
}

// ApplyRoughness returns the roughness of a material adjusted for this fluid
func (o State) ApplyRoughness(ε float64) float64 {
	return ε * o.RoughMult
}

// Model implements a tabulated liquid
type Model struct {

	// design conditions
	TempF  float64 // temperature [°F]
	Glycol float64 // glycol concentration [%]

	// table
	tab *table
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.TempF, o.Glycol = 60, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "temp":
			o.TempF = p.V
		case "glycol":
			o.Glycol = p.V
		default:
			return chk.Err("%s: parameter named %q is incorrect\n", o.tab.name, p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		glycol := 0.0
		if len(o.tab.glycols) > 1 {
			glycol = 30
		}
		return dbf.Params{
			&dbf.P{N: "temp", V: 60},       // [°F]
			&dbf.P{N: "glycol", V: glycol}, // [%]
		}
	}
	return dbf.Params{
		&dbf.P{N: "temp", V: o.TempF},
		&dbf.P{N: "glycol", V: o.Glycol},
	}
}

// Name returns the name of the fluid
func (o Model) Name() string {
	return o.tab.name
}

// Calc computes the state at temperature tempF and glycol concentration glycol
func (o Model) Calc(tempF, glycol float64) (s State) {
	s.Fluid = o.tab.name
	s.TempF = clamp(tempF, TempMin, TempMax)
	s.Glycol = clamp(glycol, 0, GlycolMax)
	if len(o.tab.glycols) == 1 {
		s.Glycol = 0
	}
	s.Density = o.tab.lookup(o.tab.density, s.TempF, s.Glycol)
	s.Nu = o.tab.lookup(o.tab.nu, s.TempF, s.Glycol) * centistokes
	s.HwMult = o.tab.across(o.tab.hwMult, s.Glycol)
	s.RoughMult = o.tab.across(o.tab.roughMult, s.Glycol)
	return
}

// State computes the state at design conditions
func (o Model) State() State {
	return o.Calc(o.TempF, o.Glycol)
}

// Plot plots density and viscosity versus temperature for all tabulated concentrations
func (o Model) Plot(dirout, fnkey string, np int) {
	T := utl.LinSpace(TempMin, TempMax, np)
	R := make([]float64, np)
	V := make([]float64, np)
	for _, g := range o.tab.glycols {
		for i, t := range T {
			s := o.Calc(t, g)
			R[i], V[i] = s.Density, s.Nu/centistokes
		}
		lbl := io.Sf("%s %g%%", o.tab.name, g)
		plt.Subplot(2, 1, 1)
		plt.Plot(T, R, &plt.A{L: lbl})
		plt.Gll("$T\\,[F]$", "$\\rho\\,[lbm/ft^3]$", nil)
		plt.Subplot(2, 1, 2)
		plt.Plot(T, V, &plt.A{L: lbl})
		plt.Gll("$T\\,[F]$", "$\\nu\\,[cSt]$", nil)
	}
	plt.Save(dirout, fnkey)
}

// table holds tabulated properties
//  density and nu are indexed as [glycol][temperature]
type table struct {
	name      string
	temps     []float64   // temperatures [°F]
	glycols   []float64   // concentrations [%]
	density   [][]float64 // [lbm/ft³]
	nu        [][]float64 // [cSt]
	hwMult    []float64   // per concentration
	roughMult []float64   // per concentration
}

// lookup interpolates vals along temperature for each concentration and then across concentrations
func (o *table) lookup(vals [][]float64, tempF, glycol float64) float64 {
	row := make([]float64, len(o.glycols))
	for i := range o.glycols {
		row[i] = predict(o.temps, vals[i], tempF)
	}
	return o.across(row, glycol)
}

// across interpolates vals across concentrations
func (o *table) across(vals []float64, glycol float64) float64 {
	if len(o.glycols) == 1 {
		return vals[0]
	}
	return predict(o.glycols, vals, glycol)
}

// predict evaluates a piecewise linear fit of (xs, ys) at x
func predict(xs, ys []float64, x float64) float64 {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		chk.Panic("fluid: cannot fit table: %v", err)
	}
	return pl.Predict(clamp(x, xs[0], xs[len(xs)-1]))
}

// clamp limits x to [lo, hi]
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}
