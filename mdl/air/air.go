// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package air implements the state of dry air at duct conditions
//  The model combines:
//   barometric power law:  P = P0・(1 - 6.8754e-6・z)^5.2559
//   ideal gas:             ρ = P / (R・T)
//   Sutherland's law:      μ = μ0・(T/T0)^1.5・(T0+S)/(T+S)
//  Units: °F, ft, psia, lbm/ft³, ft²/s. The barometric term is only meaningful from
//  about -2,000 ft to +30,000 ft and turns non-positive above ~145,000 ft; callers must
//  stay inside the troposphere.
package air

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	P0         = 14.696    // standard sea level pressure [psia]
	Rgas       = 53.35     // specific gas constant of dry air [ft·lbf/(lbm·R)]
	Rankine    = 459.67    // °F to °R offset
	Mu0        = 1.2233e-5 // dynamic viscosity at 70 °F [lbm/(ft·s)]
	T0         = 70.0      // reference temperature of Mu0 [°F]
	Sutherland = 198.72    // Sutherland constant [R]
	StdTemp    = 70.0      // standard air temperature [°F]
	lapse      = 6.8754e-6 // barometric coefficient [1/ft]
	expo       = 5.2559    // barometric exponent
	psfPerPsi  = 144.0     // lbf/ft² per psi
)

// State holds the properties of air
type State struct {
	TempF    float64 // dry-bulb temperature [°F]
	AltFt    float64 // altitude [ft]
	Pressure float64 // absolute pressure [psia]
	Density  float64 // ρ [lbm/ft³]
	Mu       float64 // dynamic viscosity [lbm/(ft·s)]
	Nu       float64 // kinematic viscosity [ft²/s]
}

// At computes the state of air at temperature tempF and altitude altFt
func At(tempF, altFt float64) (o State) {
	T := tempF + Rankine
	o.TempF = tempF
	o.AltFt = altFt
	o.Pressure = Pressure(altFt)
	o.Density = o.Pressure * psfPerPsi / (Rgas * T)
	Tref := T0 + Rankine
	o.Mu = Mu0 * math.Pow(T/Tref, 1.5) * (Tref + Sutherland) / (T + Sutherland)
	o.Nu = o.Mu / o.Density
	return
}

// Standard returns the state of standard air (70 °F, sea level)
func Standard() State {
	return At(StdTemp, 0)
}

// Pressure returns the absolute pressure [psia] at altitude altFt
func Pressure(altFt float64) float64 {
	return P0 * math.Pow(1.0-lapse*altFt, expo)
}

// SpecificVolume returns 1/ρ [ft³/lbm]
func (o State) SpecificVolume() float64 {
	if o.Density <= 0 {
		return 0
	}
	return 1.0 / o.Density
}

// DensityRatio returns ρ/ρstd, used to correct standard-air fan and friction data
func (o State) DensityRatio() float64 {
	return o.Density / Standard().Density
}

// Model holds design conditions given as parameters
type Model struct {
	TempF float64 // dry-bulb temperature [°F]
	AltFt float64 // altitude [ft]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	o.TempF, o.AltFt = StdTemp, 0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "temp":
			o.TempF = p.V
		case "alt":
			o.AltFt = p.V
		default:
			return chk.Err("air: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.TempF <= -Rankine {
		return chk.Err("air: temperature %g °F is below absolute zero\n", o.TempF)
	}
	if 1.0-lapse*o.AltFt <= 0 {
		return chk.Err("air: altitude %g ft is outside the barometric model\n", o.AltFt)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "temp", V: StdTemp}, // [°F]
			&dbf.P{N: "alt", V: 0},        // [ft]
		}
	}
	return dbf.Params{
		&dbf.P{N: "temp", V: o.TempF},
		&dbf.P{N: "alt", V: o.AltFt},
	}
}

// State returns the state of air at the design conditions
func (o Model) State() State {
	return At(o.TempF, o.AltFt)
}
