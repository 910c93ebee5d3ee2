// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec implements duct cross-sections and their equal-friction equivalence
//  All sizes are given in inches. Area() returns ft² (for velocity in ft/min from
//  ft³/min); Perimeter, HydraulicDiameter and EquivalentDiameter return inches.
//  The equal-friction equivalent diameter is Huebscher's empirical fit:
//   rectangle:  De = 1.30・(a・b)^0.625 / (a+b)^0.25
//   flat oval:  De = 1.55・A^0.625 / P^0.25        (A in in², P in in)
//  It is not the hydraulic diameter 4・A/P.
//  Non-positive sizes give zero results.
package sec

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// in² per ft²
const in2PerFt2 = 144.0

// Section defines a duct cross-section
type Section interface {
	Area() float64               // flow area [ft²]
	Perimeter() float64          // wetted perimeter [in]
	HydraulicDiameter() float64  // 4・A/P [in]
	EquivalentDiameter() float64 // equal-friction equivalent round diameter [in]
	String() string              // description; e.g. 24x12
}

// Round implements a round duct
type Round struct {
	D float64 // diameter [in]
}

// Rect implements a rectangular duct; Long ≥ Short
type Rect struct {
	Long  float64 // long side [in]
	Short float64 // short side [in]
}

// FlatOval implements a flat-oval duct (rectangle with semicircular ends); Major ≥ Minor
type FlatOval struct {
	Major float64 // major axis [in]
	Minor float64 // minor axis [in]
}

// NewRect returns a rectangle with sides sorted
func NewRect(a, b float64) Rect {
	if a < b {
		a, b = b, a
	}
	return Rect{Long: a, Short: b}
}

// NewFlatOval returns a flat oval with axes sorted
func NewFlatOval(a, b float64) FlatOval {
	if a < b {
		a, b = b, a
	}
	return FlatOval{Major: a, Minor: b}
}

// Round ///////////////////////////////////////////////////////////////////////////////////////////

// Area returns π・(D/24)² [ft²]
func (o Round) Area() float64 {
	if o.D <= 0 {
		return 0
	}
	r := o.D / 24.0
	return math.Pi * r * r
}

// Perimeter returns π・D [in]
func (o Round) Perimeter() float64 {
	if o.D <= 0 {
		return 0
	}
	return math.Pi * o.D
}

// HydraulicDiameter returns D [in]
func (o Round) HydraulicDiameter() float64 {
	if o.D <= 0 {
		return 0
	}
	return o.D
}

// EquivalentDiameter returns D [in]
func (o Round) EquivalentDiameter() float64 {
	return o.HydraulicDiameter()
}

// String returns a description
func (o Round) String() string {
	return io.Sf("%gø", o.D)
}

// Rect ////////////////////////////////////////////////////////////////////////////////////////////

func (o Rect) ok() bool { return o.Long > 0 && o.Short > 0 }

// Area returns a・b [ft²]
func (o Rect) Area() float64 {
	if !o.ok() {
		return 0
	}
	return o.Long * o.Short / in2PerFt2
}

// Perimeter returns 2・(a+b) [in]
func (o Rect) Perimeter() float64 {
	if !o.ok() {
		return 0
	}
	return 2 * (o.Long + o.Short)
}

// HydraulicDiameter returns 4・A/P [in]
func (o Rect) HydraulicDiameter() float64 {
	if !o.ok() {
		return 0
	}
	return 4 * o.Long * o.Short / o.Perimeter()
}

// EquivalentDiameter returns Huebscher's 1.30・(a・b)^0.625 / (a+b)^0.25 [in]
func (o Rect) EquivalentDiameter() float64 {
	if !o.ok() {
		return 0
	}
	return 1.30 * math.Pow(o.Long*o.Short, 0.625) / math.Pow(o.Long+o.Short, 0.25)
}

// AspectRatio returns Long/Short
func (o Rect) AspectRatio() float64 {
	if !o.ok() {
		return 0
	}
	return o.Long / o.Short
}

// String returns a description
func (o Rect) String() string {
	return io.Sf("%gx%g", o.Long, o.Short)
}

// FlatOval ////////////////////////////////////////////////////////////////////////////////////////

func (o FlatOval) ok() bool { return o.Major >= o.Minor && o.Minor > 0 }

// areaIn2 returns minor・(major-minor) + π・(minor/2)² [in²]
func (o FlatOval) areaIn2() float64 {
	r := o.Minor / 2
	return o.Minor*(o.Major-o.Minor) + math.Pi*r*r
}

// Area returns the flow area [ft²]
func (o FlatOval) Area() float64 {
	if !o.ok() {
		return 0
	}
	return o.areaIn2() / in2PerFt2
}

// Perimeter returns 2・(major-minor) + π・minor [in]
func (o FlatOval) Perimeter() float64 {
	if !o.ok() {
		return 0
	}
	return 2*(o.Major-o.Minor) + math.Pi*o.Minor
}

// HydraulicDiameter returns 4・A/P [in]
func (o FlatOval) HydraulicDiameter() float64 {
	if !o.ok() {
		return 0
	}
	return 4 * o.areaIn2() / o.Perimeter()
}

// EquivalentDiameter returns Huebscher's 1.55・A^0.625 / P^0.25 [in]
func (o FlatOval) EquivalentDiameter() float64 {
	if !o.ok() {
		return 0
	}
	return 1.55 * math.Pow(o.areaIn2(), 0.625) / math.Pow(o.Perimeter(), 0.25)
}

// AspectRatio returns Major/Minor
func (o FlatOval) AspectRatio() float64 {
	if !o.ok() {
		return 0
	}
	return o.Major / o.Minor
}

// String returns a description
func (o FlatOval) String() string {
	return io.Sf("%gx%g oval", o.Major, o.Minor)
}
