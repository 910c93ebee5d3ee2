// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions of flow in ducts and pipes
//  These are independent of the numerical solvers and serve as reference
//  values when verifying them.
package ana

import "math"

// units
const (
	grav      = 32.174 // ft/s²
	inPerFt   = 12.0   // in per ft
	gpmPerCfs = 448.83 // gal/min per ft³/s
	psiPerFt  = 0.4331 // psi per ft of water head
	fpsPerGpm = 0.4085 // ft/s per gpm/in²
)

// HazenWilliamsDiameter returns the inside diameter [in] of a pipe carrying gpm
// at friction rate psiPer100 [psi/100 ft]
//
//    d = (1044・Q^1.85 / (C^1.85・h))^(1/4.87)    with h in [ft/100 ft]
//
func HazenWilliamsDiameter(gpm, C, psiPer100, sg float64) float64 {
	if sg <= 0 {
		sg = 1
	}
	h := psiPer100 / (psiPerFt * sg)
	return math.Pow(1044*math.Pow(gpm, 1.85)/(math.Pow(C, 1.85)*h), 1/4.87)
}

// ManningFullDiameter returns the diameter [in] of a pipe flowing full with gpm
//
//    A・R^(2/3) = π/4^(5/3)・D^(8/3)   thus   D = (Q・n・4^(5/3) / (1.486・π・√S))^(3/8)
//
func ManningFullDiameter(gpm, slope, n float64) float64 {
	Q := gpm / gpmPerCfs
	D := math.Pow(Q*n*math.Pow(4, 5.0/3.0)/(1.486*math.Pi*math.Sqrt(slope)), 3.0/8.0)
	return D * inPerFt
}

// LaminarRate returns the Hagen-Poiseuille head loss [ft/100 ft] of gpm through
// inside diameter dIn for a liquid with kinematic viscosity ν [ft²/s]
//
//    f = 64/Re   thus   h = 3200・ν・V / (g・D²)
//
func LaminarRate(gpm, dIn, ν float64) float64 {
	V := fpsPerGpm * gpm / (dIn * dIn)
	D := dIn / inPerFt
	return 3200 * ν * V / (grav * D * D)
}

// FullyRough returns the von Kármán friction factor of the fully rough regime
//
//    1/√f = 2・log10(3.7/(ε/D))
//
func FullyRough(relRough float64) float64 {
	a := 2 * math.Log10(3.7/relRough)
	return 1 / (a * a)
}

// Blasius returns the friction factor of smooth pipes for 4000 < Re < 1e5
func Blasius(Re float64) float64 {
	return 0.3164 / math.Pow(Re, 0.25)
}
