// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"

	"github.com/ductolator/ductolator/root"
)

// equivSolver returns the bisection used to invert the equivalence formulas
//  the short side (minor axis) is searched in [0.5, 10・D]
func equivSolver(D float64) root.Bisection {
	return root.Bisection{
		Lo:        0.5,
		Hi:        10 * D,
		Tol:       1e-6,
		MaxIter:   80,
		MaxExpand: 100,
	}
}

// RectForRound returns the rectangle with aspect ratio ar whose equal-friction
// equivalent diameter equals D. ar < 1 is inverted; ar ≤ 0 is taken as 1.
func RectForRound(D, ar float64) (Rect, root.Result) {
	if D <= 0 || math.IsNaN(D) {
		return Rect{}, root.Result{}
	}
	ar = normAspect(ar)
	res := equivSolver(D).Solve(func(b float64) float64 {
		return Rect{Long: ar * b, Short: b}.EquivalentDiameter() - D
	})
	if res.Status == root.Unresolved {
		return Rect{}, res
	}
	return NewRect(ar*res.X, res.X), res
}

// FlatOvalForRound returns the flat oval with aspect ratio ar = major/minor whose
// equal-friction equivalent diameter equals D. ar < 1 is inverted; ar ≤ 0 is taken as 1.
func FlatOvalForRound(D, ar float64) (FlatOval, root.Result) {
	if D <= 0 || math.IsNaN(D) {
		return FlatOval{}, root.Result{}
	}
	ar = normAspect(ar)
	res := equivSolver(D).Solve(func(b float64) float64 {
		return FlatOval{Major: ar * b, Minor: b}.EquivalentDiameter() - D
	})
	if res.Status == root.Unresolved {
		return FlatOval{}, res
	}
	return NewFlatOval(ar*res.X, res.X), res
}

// RectForRoundWithSide returns the rectangle with one fixed side whose equal-friction
// equivalent diameter equals D; e.g. when the depth is limited by the ceiling space.
func RectForRoundWithSide(D, side float64) (Rect, root.Result) {
	if D <= 0 || side <= 0 || math.IsNaN(D) {
		return Rect{}, root.Result{}
	}
	b := equivSolver(D)
	b.Lo = math.Min(b.Lo, side/10)
	res := b.Solve(func(x float64) float64 {
		return NewRect(side, x).EquivalentDiameter() - D
	})
	if res.Status == root.Unresolved {
		return Rect{}, res
	}
	return NewRect(side, res.X), res
}

// normAspect returns an aspect ratio ≥ 1
func normAspect(ar float64) float64 {
	if ar <= 0 || math.IsNaN(ar) || math.IsInf(ar, 0) {
		return 1
	}
	if ar < 1 {
		return 1 / ar
	}
	return ar
}
