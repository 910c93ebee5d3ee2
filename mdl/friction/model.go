// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package friction implements correlations for the Darcy friction factor
//  All models take the Reynolds number (Re), the hydraulic diameter (D) and the
//  absolute roughness (ε); D and ε must be given in the same units.
//  References:
//   [1] Colebrook CF (1939) Turbulent flow in pipes, with particular reference to the
//       transition region between the smooth and rough pipe laws. J. ICE 11(4) 133-156
//   [2] Haaland SE (1983) Simple and explicit formulas for the friction factor in
//       turbulent pipe flow. J. Fluids Eng. 105(1) 89-90
//   [3] Churchill SW (1977) Friction-factor equation spans all fluid-flow regimes.
//       Chemical Engineering 84(24) 91-92
//   [4] Swamee PK and Jain AK (1976) Explicit equations for pipe-flow problems.
//       J. Hydraulics Division ASCE 102(5) 657-664
package friction

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// validity envelope
const (
	ReMin       = 1.0  // smallest Reynolds number accepted by the turbulent correlations
	ReMax       = 1e8  // largest Reynolds number accepted by the turbulent correlations
	RelRoughMax = 0.05 // largest relative roughness ε/D
)

// Model defines a Darcy friction factor correlation
type Model interface {
	Name() string                  // name of correlation
	Laminar() float64              // Reynolds number below which f = 64/Re
	F(Re, relRough float64) Result // computes f for Re ≥ Laminar(); relRough = ε/D
}

// Result holds the friction factor and diagnostics
type Result struct {
	F         float64 // Darcy friction factor
	Iter      int     // number of iterations (iterative models only)
	Converged bool    // false if an iterative model fell back to its seed
	Laminar   bool    // laminar short-circuit was used
	Clamped   bool    // Re or ε/D were clamped into the validity envelope
}

// Calc computes the friction factor
//  Note: returns a zero Result if Re ≤ 0 or D ≤ 0 (no flow); negative ε is taken as zero
func Calc(mdl Model, Re, D, ε float64) (res Result) {
	if Re <= 0 || D <= 0 || math.IsNaN(Re) {
		return
	}
	if Re < mdl.Laminar() {
		return Result{F: 64.0 / Re, Converged: true, Laminar: true}
	}
	if ε < 0 {
		ε = 0
	}
	relRough := ε / D
	clamped := false
	if Re > ReMax {
		Re, clamped = ReMax, true
	}
	if relRough > RelRoughMax {
		relRough, clamped = RelRoughMax, true
	}
	res = mdl.F(Re, relRough)
	res.Clamped = clamped
	return
}

// Factor returns the friction factor only
func Factor(mdl Model, Re, D, ε float64) float64 {
	return Calc(mdl, Re, D, ε).F
}

// Check returns an error if (Re, ε/D) lies outside the validated envelope
func Check(Re, relRough float64) error {
	if Re < ReMin || Re > ReMax || math.IsNaN(Re) {
		return chk.Err("Reynolds number %g is outside [%g, %g]", Re, ReMin, ReMax)
	}
	if relRough < 0 || relRough > RelRoughMax || math.IsNaN(relRough) {
		return chk.Err("relative roughness %g is outside [0, %g]", relRough, RelRoughMax)
	}
	return nil
}

// New returns a new friction model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'friction' database", name)
	}
	return allocator(), nil
}

// Default returns the reference correlation (Colebrook-White)
func Default() Model {
	return new(Colebrook)
}

// Names returns the names of the duct-side models; all of them are laminar below Re = 2300
//  Note: "swamee" (laminar below 2000) is the liquid-side model and is not listed
func Names() []string {
	return []string{"colebrook", "haaland", "churchill"}
}

// NewDuct returns a new duct-side model; see Names
func NewDuct(name string) (model Model, err error) {
	for _, n := range Names() {
		if n == name {
			return New(name)
		}
	}
	return nil, chk.Err("model %q is not a duct correlation; options are %v", name, Names())
}

// allocators holds all available models
var allocators = map[string]func() Model{}
