// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipe

import (
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/root"
)

// diameterSolver brackets inside diameters [in]
var diameterSolver = root.Bisection{Lo: 0.25, Hi: 48, Tol: 1e-5, MaxIter: 100, MaxExpand: 30}

// SolveDiameterHW returns the inside diameter [in] carrying gpm at Hazen-Williams friction rate psiPer100
func SolveDiameterHW(gpm, C, psiPer100, sg float64) root.Result {
	if gpm <= 0 || C <= 0 || psiPer100 <= 0 {
		return root.Result{}
	}
	return diameterSolver.Solve(func(d float64) float64 {
		return HazenWilliams(gpm, C, d, sg).PsiPer100 - psiPer100
	})
}

// SolveDiameterDarcy returns the inside diameter [in] carrying gpm at Darcy-Weisbach friction rate psiPer100
func SolveDiameterDarcy(gpm, ε, psiPer100 float64, st fluid.State) root.Result {
	if gpm <= 0 || psiPer100 <= 0 {
		return root.Result{}
	}
	return diameterSolver.Solve(func(d float64) float64 {
		return DarcyWeisbach(gpm, d, ε, st).PsiPer100 - psiPer100
	})
}

// FullFlowDiameter returns the diameter [in] of a sloped pipe flowing full at gpm
//  slope -- hydraulic gradient [ft/ft]
//  n     -- Manning roughness
func FullFlowDiameter(gpm, slope, n float64) root.Result {
	return PartialFlowDiameter(gpm, slope, n, 1)
}

// PartialFlowDiameter returns the diameter [in] of a sloped pipe carrying gpm at
// depth ratio y/D
//  The residual is the relative flow error Q(d)/gpm - 1.
func PartialFlowDiameter(gpm, slope, n, depthRatio float64) root.Result {
	if gpm <= 0 || slope <= 0 || n <= 0 || depthRatio <= 0 {
		return root.Result{}
	}
	b := diameterSolver
	b.Tol = 1e-7
	return b.Solve(func(d float64) float64 {
		return ManningPartial(d, slope, n, depthRatio)/gpm - 1
	})
}

// FlowDepth returns the depth ratio y/D at which a sloped pipe of diameter dIn carries gpm
//  The search covers (0, maxDepth]; maxDepth ≤ 0 or > 1 means 1. The result is
//  unresolved if the pipe cannot carry gpm within maxDepth.
func FlowDepth(gpm, dIn, slope, n, maxDepth float64) root.Result {
	if gpm <= 0 || dIn <= 0 || slope <= 0 || n <= 0 {
		return root.Result{}
	}
	if maxDepth <= 0 || maxDepth > 1 {
		maxDepth = 1
	}
	b := root.Bisection{Lo: 1e-6, Hi: maxDepth, Tol: 1e-7, MaxIter: 100}
	return b.Solve(func(y float64) float64 {
		return ManningPartial(dIn, slope, n, y)/gpm - 1
	})
}
