// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import "math"

// Haaland implements Haaland's explicit approximation
//   1/√f = -1.8・log10( (ε/(3.7・D))^1.11 + 6.9/Re )
type Haaland struct{}

// Churchill implements Churchill's all-regime equation
type Churchill struct{}

// SwameeJain implements the Swamee-Jain explicit approximation used for liquids
//   f = 0.25 / log10( ε/(3.7・D) + 5.74/Re^0.9 )²
type SwameeJain struct{}

// add models to factory
func init() {
	allocators["haaland"] = func() Model { return new(Haaland) }
	allocators["churchill"] = func() Model { return new(Churchill) }
	allocators["swamee"] = func() Model { return new(SwameeJain) }
}

// Name returns the name of this model
func (o Haaland) Name() string { return "haaland" }

// Laminar returns the laminar threshold
func (o Haaland) Laminar() float64 { return 2300 }

// F computes the friction factor
func (o Haaland) F(Re, relRough float64) Result {
	return Result{F: haaland(Re, relRough), Converged: true}
}

// Name returns the name of this model
func (o Churchill) Name() string { return "churchill" }

// Laminar returns the laminar threshold
func (o Churchill) Laminar() float64 { return 2300 }

// F computes the friction factor
func (o Churchill) F(Re, relRough float64) Result {
	return Result{F: ChurchillAllRegime(Re, relRough), Converged: true}
}

// Name returns the name of this model
func (o SwameeJain) Name() string { return "swamee" }

// Laminar returns the laminar threshold. Pipe practice uses 2000
func (o SwameeJain) Laminar() float64 { return 2000 }

// F computes the friction factor
func (o SwameeJain) F(Re, relRough float64) Result {
	l := math.Log10(relRough/3.7 + 5.74/math.Pow(Re, 0.9))
	return Result{F: 0.25 / (l * l), Converged: true}
}

// ChurchillAllRegime evaluates Churchill's equation without a laminar cutoff
//   f = 8・[ (8/Re)¹² + (A+B)^(-3/2) ]^(1/12)
//   A = [ 2.457・ln( 1/((7/Re)^0.9 + 0.27・ε/D) ) ]¹⁶
//   B = (37530/Re)¹⁶
func ChurchillAllRegime(Re, relRough float64) float64 {
	if Re <= 0 {
		return 0
	}
	a := 2.457 * math.Log(1.0/(math.Pow(7.0/Re, 0.9)+0.27*relRough))
	A := math.Pow(a, 16)
	B := math.Pow(37530.0/Re, 16)
	return 8.0 * math.Pow(math.Pow(8.0/Re, 12)+math.Pow(A+B, -1.5), 1.0/12.0)
}

// haaland computes Haaland's friction factor
func haaland(Re, relRough float64) float64 {
	x := -1.8 * math.Log10(math.Pow(relRough/3.7, 1.11)+6.9/Re)
	return 1.0 / (x * x)
}
