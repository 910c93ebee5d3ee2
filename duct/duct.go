// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package duct implements friction and pressure-drop calculations for air ducts
//  Units: flow [ft³/min], velocity [ft/min], sizes [in], roughness [ft],
//  pressure [in. w.g.], friction rate [in. w.g. per 100 ft].
//  Non-positive flow, velocity, size or viscosity give zero results.
package duct

import (
	"math"

	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/sec"
)

// constants
const (
	Galvanized = 0.0003 // absolute roughness of galvanized steel duct [ft]
	fpmPerFps  = 60.0   // ft/min per ft/s
	inPerFt    = 12.0   // in per ft
	psfPerInWg = 5.202  // lbf/ft² per in. w.g.
	gc         = 32.174 // lbm·ft/(lbf·s²)
)

// Options holds the friction settings of a calculation
type Options struct {
	Model     friction.Model // friction correlation; nil means Colebrook-White
	Roughness float64        // absolute roughness [ft]
}

// DefaultOptions returns Colebrook-White with galvanized steel roughness
func DefaultOptions() Options {
	return Options{Model: friction.Default(), Roughness: Galvanized}
}

// model returns the friction model
func (o Options) model() friction.Model {
	if o.Model == nil {
		return friction.Default()
	}
	return o.Model
}

// Velocity returns the mean velocity [ft/min] of cfm through section s
func Velocity(cfm float64, s sec.Section) float64 {
	A := s.Area()
	if cfm <= 0 || A <= 0 {
		return 0
	}
	return cfm / A
}

// Reynolds returns Re = V・D/ν for velocity fpm [ft/min], diameter dIn [in] and ν [ft²/s]
func Reynolds(fpm, dIn, ν float64) float64 {
	if fpm <= 0 || dIn <= 0 || ν <= 0 {
		return 0
	}
	return (fpm / fpmPerFps) * (dIn / inPerFt) / ν
}

// VelocityPressure returns VP = ρ・V²/(2・gc) [in. w.g.] for velocity fpm and density ρ [lbm/ft³]
func VelocityPressure(fpm, ρ float64) float64 {
	if fpm <= 0 || ρ <= 0 {
		return 0
	}
	v := fpm / fpmPerFps
	return ρ * v * v / (2 * gc) / psfPerInWg
}

// DpPer100 returns the Darcy-Weisbach friction rate f・(100/D)・VP [in. w.g./100 ft]
// for velocity fpm in a round duct of diameter dIn
func DpPer100(fpm, dIn float64, state air.State, opts Options) float64 {
	Re := Reynolds(fpm, dIn, state.Nu)
	if Re <= 0 {
		return 0
	}
	D := dIn / inPerFt
	f := friction.Factor(opts.model(), Re, D, opts.Roughness)
	return f * (100 / D) * VelocityPressure(fpm, state.Density)
}

// Flow holds the results of a flow evaluation
type Flow struct {
	Cfm      float64 // flow [ft³/min]
	Velocity float64 // mean velocity in the actual section [ft/min]
	VP       float64 // velocity pressure at Velocity [in. w.g.]
	De       float64 // equal-friction diameter [in]
	Re       float64 // Reynolds number based on De
	F        float64 // Darcy friction factor
	Rate     float64 // friction rate [in. w.g./100 ft]
}

// Evaluate computes velocity, velocity pressure and friction rate of cfm through s
//  Non-round sections use the round duct of equal-friction diameter carrying the
//  same flow, as friction charts do.
func Evaluate(cfm float64, s sec.Section, state air.State, opts Options) (o Flow) {
	o.Cfm = cfm
	o.Velocity = Velocity(cfm, s)
	o.VP = VelocityPressure(o.Velocity, state.Density)
	o.De = s.EquivalentDiameter()
	vr := Velocity(cfm, sec.Round{D: o.De})
	o.Re = Reynolds(vr, o.De, state.Nu)
	if o.Re <= 0 {
		return
	}
	o.F = friction.Factor(opts.model(), o.Re, o.De/inPerFt, opts.Roughness)
	o.Rate = DpPer100(vr, o.De, state, opts)
	return
}

// Run holds a straight duct run with fittings
type Run struct {
	Rate     float64        // friction rate [in. w.g./100 ft]
	VP       float64        // velocity pressure [in. w.g.]
	Length   float64        // length [ft]
	Fittings []loss.Fitting // fittings
	Mode     loss.Mode      // minor-loss method
}

// TotalPressureDrop returns the friction and fitting losses of a run [in. w.g.]
func TotalPressureDrop(r Run) loss.Breakdown {
	return loss.Total(r.Rate, r.Length, r.VP, r.Fittings, r.Mode)
}

// DiameterForVelocity returns the round diameter [in] carrying cfm at velocity fpm
func DiameterForVelocity(cfm, fpm float64) float64 {
	if cfm <= 0 || fpm <= 0 {
		return 0
	}
	A := cfm / fpm
	return math.Sqrt(4*A/math.Pi) * inPerFt
}
