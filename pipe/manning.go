// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import "math"

// manningK is the unit factor of Manning's equation in US units
const manningK = 1.486

// Segment holds the wetted geometry of a circular pipe flowing partially full
type Segment struct {
	Theta     float64 // central angle of the wetted arc [rad]
	Area      float64 // flow area [ft²]
	Perimeter float64 // wetted perimeter [ft]
}

// HydraulicRadius returns A/P [ft]
func (o Segment) HydraulicRadius() float64 {
	if o.Perimeter <= 0 {
		return 0
	}
	return o.Area / o.Perimeter
}

// Wetted returns the circular-segment geometry of a pipe of diameter dIn at depth ratio y/D
//  θ = 2・acos(1 - 2・y/D),  A = r²/2・(θ - sin θ),  P = r・θ
//  Note: depthRatio is clamped to [0, 1]
func Wetted(dIn, depthRatio float64) (o Segment) {
	if dIn <= 0 || depthRatio <= 0 {
		return
	}
	if depthRatio > 1 {
		depthRatio = 1
	}
	r := dIn / inPerFt / 2
	o.Theta = 2 * math.Acos(1-2*depthRatio)
	o.Area = r * r / 2 * (o.Theta - math.Sin(o.Theta))
	o.Perimeter = r * o.Theta
	return
}

// ManningPartial returns the flow [gpm] of a pipe of diameter dIn with slope [ft/ft]
// and Manning roughness n flowing at depth ratio y/D
func ManningPartial(dIn, slope, n, depthRatio float64) float64 {
	if slope <= 0 || n <= 0 {
		return 0
	}
	seg := Wetted(dIn, depthRatio)
	R := seg.HydraulicRadius()
	if R <= 0 {
		return 0
	}
	cfs := manningK / n * seg.Area * math.Pow(R, 2.0/3.0) * math.Sqrt(slope)
	return cfs * GpmPerCfs
}

// ManningFull returns the flow [gpm] of a pipe of diameter dIn flowing full
func ManningFull(dIn, slope, n float64) float64 {
	return ManningPartial(dIn, slope, n, 1)
}
