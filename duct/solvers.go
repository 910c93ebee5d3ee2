// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/root"
	"github.com/ductolator/ductolator/sec"
)

// bisection settings
var (
	diameterSolver = root.Bisection{Lo: 2, Hi: 120, Tol: 1e-5, MaxIter: 100, MaxExpand: 40}
	velocitySolver = root.Bisection{Lo: 100, Hi: 8000, Tol: 1e-5, MaxIter: 100, MaxExpand: 40}
)

// SolveDiameter returns the round diameter [in] carrying cfm at friction rate [in. w.g./100 ft]
func SolveDiameter(cfm, rate float64, state air.State, opts Options) root.Result {
	if cfm <= 0 || rate <= 0 {
		return root.Result{}
	}
	return diameterSolver.Solve(func(d float64) float64 {
		return DpPer100(Velocity(cfm, sec.Round{D: d}), d, state, opts) - rate
	})
}

// SolveVelocity returns the velocity [ft/min] in a round duct of diameter dIn at friction rate
func SolveVelocity(dIn, rate float64, state air.State, opts Options) root.Result {
	if dIn <= 0 || rate <= 0 {
		return root.Result{}
	}
	return velocitySolver.Solve(func(v float64) float64 {
		return DpPer100(v, dIn, state, opts) - rate
	})
}

// SizeRect returns the rectangle with aspect ratio ar carrying cfm at friction rate
//  The status is the worst of the diameter and equivalence solves.
func SizeRect(cfm, rate, ar float64, state air.State, opts Options) (sec.Rect, root.Result) {
	rd := SolveDiameter(cfm, rate, state, opts)
	if rd.Status == root.Unresolved {
		return sec.Rect{}, rd
	}
	q, rq := sec.RectForRound(rd.X, ar)
	rq.Status = root.Worst(rd.Status, rq.Status)
	return q, rq
}

// SizeFlatOval returns the flat oval with aspect ratio ar carrying cfm at friction rate
func SizeFlatOval(cfm, rate, ar float64, state air.State, opts Options) (sec.FlatOval, root.Result) {
	rd := SolveDiameter(cfm, rate, state, opts)
	if rd.Status == root.Unresolved {
		return sec.FlatOval{}, rd
	}
	o, ro := sec.FlatOvalForRound(rd.X, ar)
	ro.Status = root.Worst(rd.Status, ro.Status)
	return o, ro
}
