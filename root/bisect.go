// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package root implements the bracketing bisection used by all sizing solvers
//  The solvers never fail silently: every call returns a Result whose Status
//  tells whether the value met the tolerance (Converged), is the midpoint of
//  the last bracket (BestEffort) or could not be bracketed at all (Unresolved).
package root

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Status holds the outcome of a root search
type Status int

const (
	Unresolved Status = iota // no sign change found (X is NaN) or degenerate input (zero Result)
	BestEffort               // bracketed but |f(X)| ≥ Tol after MaxIter
	Converged                // |f(X)| < Tol
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case BestEffort:
		return "best-effort"
	}
	return "unresolved"
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name
func (s *Status) UnmarshalText(text []byte) error {
	for _, v := range []Status{Unresolved, BestEffort, Converged} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return chk.Err("status %q is invalid", text)
}

// Worst returns the least trustworthy of statuses
func Worst(statuses ...Status) Status {
	w := Converged
	for _, s := range statuses {
		if s < w {
			w = s
		}
	}
	return w
}

// Result holds the solution of a root search
type Result struct {
	X        float64 // root or best estimate
	Status   Status  // convergence status
	Iter     int     // number of bisection iterations
	Expand   int     // number of bracket widenings
	Residual float64 // f(X)
}

// Converged tells whether the tolerance was met
func (o Result) Converged() bool {
	return o.Status == Converged
}

// String returns a short description
func (o Result) String() string {
	return io.Sf("x=%g (%v, %d iterations, %d expansions, residual=%g)", o.X, o.Status, o.Iter, o.Expand, o.Residual)
}

// Func is a scalar function whose root is sought
type Func func(x float64) float64

// Bisection holds the control parameters of a bracketing bisection
//  Lo and Hi must be positive; widening divides Lo and multiplies Hi by Grow
//  so that the bracket stays within physical (positive) values.
type Bisection struct {
	Lo, Hi    float64 // initial bracket
	Tol       float64 // tolerance on |f(x)|
	MaxIter   int     // maximum number of bisection iterations
	MaxExpand int     // maximum number of bracket widenings
	Grow      float64 // widening factor; default = 2
}

// Solve finds x such that f(x) = 0
func (o Bisection) Solve(f Func) (res Result) {

	// bracket
	grow := o.Grow
	if grow <= 1 {
		grow = 2
	}
	lo, hi := o.Lo, o.Hi
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	for !straddles(flo, fhi) {
		if res.Expand >= o.MaxExpand {
			res.X = math.NaN()
			res.Residual = math.NaN()
			return
		}
		res.Expand++
		lo /= grow
		hi *= grow
		flo, fhi = f(lo), f(hi)
	}

	// root on bracket
	if flo == 0 {
		return o.finish(res, lo, flo)
	}
	if fhi == 0 {
		return o.finish(res, hi, fhi)
	}

	// bisect
	for res.Iter < o.MaxIter {
		res.Iter++
		mid := (lo + hi) / 2
		fmid := f(mid)
		if math.Abs(fmid) < o.Tol {
			return o.finish(res, mid, fmid)
		}
		if mid == lo || mid == hi { // adjacent numbers
			break
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	mid := (lo + hi) / 2
	return o.finish(res, mid, f(mid))
}

// finish sets the final fields of res
func (o Bisection) finish(res Result, x, fx float64) Result {
	res.X = x
	res.Residual = fx
	res.Status = BestEffort
	if math.Abs(fx) < o.Tol || fx == 0 {
		res.Status = Converged
	}
	return res
}

// straddles tells whether fa and fb have opposite signs (or one is zero)
func straddles(fa, fb float64) bool {
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return false
	}
	return fa*fb <= 0
}
