// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package root

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_bisect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect01. square root of two")

	b := Bisection{Lo: 0.5, Hi: 4, Tol: 1e-12, MaxIter: 100, MaxExpand: 10}
	res := b.Solve(func(x float64) float64 { return x*x - 2 })
	io.Pforan("res = %v\n", res)
	if !res.Converged() {
		tst.Errorf("bisection should have converged: %v\n", res)
		return
	}
	chk.Float64(tst, "√2", 1e-11, res.X, math.Sqrt2)
	chk.Int(tst, "expand", res.Expand, 0)
}

func Test_bisect02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect02. bracket widening")

	// root at 500 lies outside [1, 10]
	b := Bisection{Lo: 1, Hi: 10, Tol: 1e-9, MaxIter: 200, MaxExpand: 20}
	res := b.Solve(func(x float64) float64 { return 500 - x })
	io.Pforan("res = %v\n", res)
	if !res.Converged() {
		tst.Errorf("bisection should have converged: %v\n", res)
		return
	}
	chk.Float64(tst, "x", 1e-8, res.X, 500)
	chk.Int(tst, "expand", res.Expand, 6)

	// decreasing function
	res = b.Solve(func(x float64) float64 { return 1/x - 0.25 })
	chk.Float64(tst, "x", 1e-7, res.X, 4)
}

func Test_bisect03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect03. unresolved and best-effort")

	// no root
	b := Bisection{Lo: 1, Hi: 2, Tol: 1e-9, MaxIter: 100, MaxExpand: 5}
	res := b.Solve(func(x float64) float64 { return x*x + 1 })
	io.Pforan("res = %v\n", res)
	if res.Status != Unresolved {
		tst.Errorf("status should be unresolved: %v\n", res)
	}
	if !math.IsNaN(res.X) {
		tst.Errorf("unresolved root must be NaN: %v\n", res)
	}
	chk.Int(tst, "expand", res.Expand, 5)

	// too few iterations
	b = Bisection{Lo: 0, Hi: 4, Tol: 1e-12, MaxIter: 3, MaxExpand: 5}
	res = b.Solve(func(x float64) float64 { return x - math.Pi })
	io.Pforan("res = %v\n", res)
	if res.Status != BestEffort {
		tst.Errorf("status should be best-effort: %v\n", res)
	}
	chk.Int(tst, "iter", res.Iter, 3)
	chk.Float64(tst, "x", 0.5, res.X, math.Pi)

	// tolerance unreachable: step function
	b = Bisection{Lo: 0, Hi: 2, Tol: 1e-3, MaxIter: 2000, MaxExpand: 0}
	res = b.Solve(func(x float64) float64 {
		if x < 1 {
			return -1
		}
		return 1
	})
	if res.Status != BestEffort {
		tst.Errorf("status should be best-effort: %v\n", res)
	}
	chk.Float64(tst, "x", 1e-12, res.X, 1)
	if res.Iter >= 2000 {
		tst.Errorf("bisection should stop on adjacent numbers; iter = %d\n", res.Iter)
	}
}

func Test_bisect04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect04. root on bracket end")

	b := Bisection{Lo: 2, Hi: 8, Tol: 1e-9, MaxIter: 100, MaxExpand: 5}
	res := b.Solve(func(x float64) float64 { return x - 2 })
	if !res.Converged() {
		tst.Errorf("bisection should have converged: %v\n", res)
	}
	chk.Float64(tst, "x", 1e-15, res.X, 2)
	chk.Int(tst, "iter", res.Iter, 0)
	if res.Status.String() != "converged" {
		tst.Errorf("wrong status name %q\n", res.Status)
	}
}

func Test_bisect05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bisect05. combined status")

	chk.Int(tst, "worst(c,b)", int(Worst(Converged, BestEffort)), int(BestEffort))
	chk.Int(tst, "worst(c,u,b)", int(Worst(Converged, Unresolved, BestEffort)), int(Unresolved))
	chk.Int(tst, "worst()", int(Worst()), int(Converged))
}
