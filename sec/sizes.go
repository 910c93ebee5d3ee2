// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import "math"

// smallest nominal size [in]
const MinNominal = 3.0

// NextRound returns the smallest nominal round size ≥ D
//  Nominal round sizes are whole inches from 3 in to 12 in and even inches above.
func NextRound(D float64) float64 {
	if D <= 0 || math.IsNaN(D) {
		return 0
	}
	return nominal(D)
}

// NextRectSide returns the smallest nominal rectangular side ≥ x
//  Nominal sides are whole inches up to 12 in and even inches above.
func NextRectSide(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	return nominal(x)
}

// Nominal returns the rectangle with both sides rounded up to nominal sizes
func (o Rect) Nominal() Rect {
	return NewRect(NextRectSide(o.Long), NextRectSide(o.Short))
}

// Nominal returns the flat oval with both axes rounded up to nominal sizes
func (o FlatOval) Nominal() FlatOval {
	return NewFlatOval(NextRectSide(o.Major), NextRectSide(o.Minor))
}

// nominal rounds x up to the size grid
func nominal(x float64) float64 {
	const eps = 1e-9 // values within eps of a size are taken as that size
	if x <= MinNominal {
		return MinNominal
	}
	if x <= 12+eps {
		return math.Ceil(x - eps)
	}
	return 2 * math.Ceil(x/2-eps)
}
