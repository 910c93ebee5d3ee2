// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package friction

import "math"

// Colebrook implements the implicit Colebrook-White equation
//   1/√f = -2・log10( ε/(3.7・D) + 2.51/(Re・√f) )
//  solved by fixed-point iteration on x = 1/√f seeded by Haaland
type Colebrook struct {
	Tol     float64 // tolerance on |x_{n+1} - x_n|; default = 1e-8
	MaxIter int     // maximum number of iterations; default = 50
}

// add model to factory
func init() {
	allocators["colebrook"] = func() Model { return new(Colebrook) }
}

// Name returns the name of this model
func (o Colebrook) Name() string { return "colebrook" }

// Laminar returns the laminar threshold
func (o Colebrook) Laminar() float64 { return 2300 }

// F computes the friction factor
func (o Colebrook) F(Re, relRough float64) (res Result) {
	tol, maxit := o.Tol, o.MaxIter
	if tol <= 0 {
		tol = 1e-8
	}
	if maxit <= 0 {
		maxit = 50
	}
	seed := haaland(Re, relRough)
	a := relRough / 3.7
	b := 2.51 / Re
	x := 1.0 / math.Sqrt(seed)
	for res.Iter = 1; res.Iter <= maxit; res.Iter++ {
		xnew := -2.0 * math.Log10(a+b*x)
		if math.Abs(xnew-x) < tol {
			res.F = 1.0 / (xnew * xnew)
			res.Converged = true
			return
		}
		x = xnew
	}
	res.Iter = maxit
	res.F = seed
	return
}
