// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pipe implements friction and pressure-drop calculations for liquid pipes
//  Units: flow [gal/min], inside diameter [in], velocity [ft/s], roughness [ft],
//  head [ft], pressure [psi], friction rates per 100 ft of pipe.
//  Two friction methods are available:
//   Hazen-Williams:  h = 1044・Q^1.85 / (C^1.85・d^4.87)  [ft/100 ft], Q in gpm, d in in
//   Darcy-Weisbach:  h = f・(100/D)・V²/(2g)             [ft/100 ft], Swamee-Jain f
//  Head is converted to pressure with 0.4331 psi per foot of water scaled by the
//  specific gravity of the fluid. Non-positive inputs give zero results.
package pipe

import (
	"math"

	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
)

// constants
const (
	HwK       = 1044.0 // Hazen-Williams coefficient for [ft/100 ft] with gpm and in
	PsiPerFt  = 0.4331 // psi per ft of water head (SG = 1)
	GpmPerCfs = 448.83 // gal/min per ft³/s
	velK      = 0.4085 // ft/s per gpm/in²
	grav      = 32.174 // ft/s²
	inPerFt   = 12.0   // in per ft
	psfPerPsi = 144.0  // lbf/ft² per psi
	hwExpQ    = 1.85   // exponent of Q and C
	hwExpD    = 4.87   // exponent of d
)

// Loss holds a friction rate
type Loss struct {
	FtPer100  float64 // head loss [ft/100 ft]
	PsiPer100 float64 // pressure loss [psi/100 ft]
}

// Velocity returns the mean velocity [ft/s] of gpm through inside diameter dIn
func Velocity(gpm, dIn float64) float64 {
	if gpm <= 0 || dIn <= 0 {
		return 0
	}
	return velK * gpm / (dIn * dIn)
}

// Reynolds returns Re = V・D/ν for velocity fps [ft/s], diameter dIn [in] and ν [ft²/s]
func Reynolds(fps, dIn, ν float64) float64 {
	if fps <= 0 || dIn <= 0 || ν <= 0 {
		return 0
	}
	return fps * (dIn / inPerFt) / ν
}

// VelocityHead returns V²/(2g) [ft]
func VelocityHead(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return fps * fps / (2 * grav)
}

// VelocityPressure returns ρ/gc・V²/2 [psi] for velocity fps and density ρ [lbm/ft³]
func VelocityPressure(fps, ρ float64) float64 {
	if ρ <= 0 {
		return 0
	}
	return ρ * VelocityHead(fps) / psfPerPsi
}

// HeadToPsi converts head [ft] of a fluid with specific gravity sg into psi
//  Note: sg ≤ 0 is taken as water
func HeadToPsi(ft, sg float64) float64 {
	if sg <= 0 {
		sg = 1
	}
	return ft * PsiPerFt * sg
}

// HazenWilliams returns the friction rate of gpm in a pipe of inside diameter dIn
// with Hazen-Williams factor C and fluid specific gravity sg
func HazenWilliams(gpm, C, dIn, sg float64) (o Loss) {
	if gpm <= 0 || C <= 0 || dIn <= 0 {
		return
	}
	o.FtPer100 = HwK * math.Pow(gpm, hwExpQ) / (math.Pow(C, hwExpQ) * math.Pow(dIn, hwExpD))
	o.PsiPer100 = HeadToPsi(o.FtPer100, sg)
	return
}

// FlowHW returns the flow [gpm] giving friction rate psiPer100 in a pipe of
// inside diameter dIn; closed-form inverse of HazenWilliams
func FlowHW(dIn, C, psiPer100, sg float64) float64 {
	if dIn <= 0 || C <= 0 || psiPer100 <= 0 {
		return 0
	}
	ft := psiPer100 / HeadToPsi(1, sg)
	return math.Pow(ft*math.Pow(C, hwExpQ)*math.Pow(dIn, hwExpD)/HwK, 1/hwExpQ)
}

// DarcyWeisbach returns the friction rate of gpm in a pipe of inside diameter dIn
// and absolute roughness ε [ft] carrying a fluid in state st
//  The friction factor is computed with Swamee-Jain (laminar below Re = 2000).
func DarcyWeisbach(gpm, dIn, ε float64, st fluid.State) (o Loss) {
	V := Velocity(gpm, dIn)
	Re := Reynolds(V, dIn, st.Nu)
	if Re <= 0 {
		return
	}
	D := dIn / inPerFt
	f := friction.Factor(friction.SwameeJain{}, Re, D, ε)
	o.FtPer100 = f * (100 / D) * VelocityHead(V)
	o.PsiPer100 = HeadToPsi(o.FtPer100, st.SpecificGravity())
	return
}

// MinorLoss returns the fitting losses [psi] for friction rate psiPer100 and
// velocity pressure vp [psi]
func MinorLoss(fittings []loss.Fitting, mode loss.Mode, psiPer100, vp float64) float64 {
	return loss.Total(psiPer100, 0, vp, fittings, mode).Minor
}

// Run holds a straight pipe run with fittings
type Run struct {
	Rate     float64        // friction rate [psi/100 ft]
	VP       float64        // velocity pressure [psi]
	Length   float64        // developed length [ft]
	Fittings []loss.Fitting // fittings and valves
	Mode     loss.Mode      // minor-loss method
}

// TotalPressureDrop returns the friction and fitting losses of a run [psi]
func TotalPressureDrop(r Run) loss.Breakdown {
	return loss.Total(r.Rate, r.Length, r.VP, r.Fittings, r.Mode)
}
