// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"math"
	"sync"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/root"
	"github.com/ductolator/ductolator/sec"
)

func verbose() {
	chk.Verbose = true
}

func Test_duct01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct01. 1000 cfm in 10 in round duct")

	st := air.Standard()
	s := sec.Round{D: 10}
	V := Velocity(1000, s)
	io.Pforan("V = %v\n", V)
	chk.Float64(tst, "V", 0.1, V, 1833.5)

	vp := VelocityPressure(V, st.Density)
	io.Pforan("VP = %v\n", vp)
	chk.Float64(tst, "VP", 0.002, vp, 0.2089)

	Re := Reynolds(V, 10, st.Nu)
	io.Pforan("Re = %v\n", Re)
	chk.Float64(tst, "Re", 500, Re, 155900)

	rate := DpPer100(V, 10, st, DefaultOptions())
	io.Pforan("rate = %v\n", rate)
	if rate < 0.40 || rate > 0.55 {
		tst.Errorf("friction rate %g is outside [0.40, 0.55]\n", rate)
	}

	flow := Evaluate(1000, s, st, DefaultOptions())
	chk.Float64(tst, "flow: rate", 1e-15, flow.Rate, rate)
	chk.Float64(tst, "flow: De", 1e-15, flow.De, 10)
	chk.Float64(tst, "flow: velocity", 1e-12, flow.Velocity, V)

	// nil model means Colebrook
	chk.Float64(tst, "nil model", 1e-15, DpPer100(V, 10, st, Options{Roughness: Galvanized}), rate)
}

func Test_duct02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct02. monotonicity and altitude")

	st := air.Standard()
	opts := DefaultOptions()

	// rate falls with size and rises with flow
	prev := math.Inf(1)
	for _, d := range []float64{6, 8, 10, 14, 20, 30} {
		r := DpPer100(Velocity(1000, sec.Round{D: d}), d, st, opts)
		if r >= prev {
			tst.Errorf("rate must decrease with diameter: d=%g rate=%g prev=%g\n", d, r, prev)
		}
		prev = r
	}
	prev = 0
	for _, q := range []float64{200, 500, 1000, 2000, 5000} {
		r := DpPer100(Velocity(q, sec.Round{D: 12}), 12, st, opts)
		if r <= prev {
			tst.Errorf("rate must increase with flow: q=%g rate=%g prev=%g\n", q, r, prev)
		}
		prev = r
	}

	// thinner air at altitude
	hi := air.At(70, 5000)
	V := Velocity(1000, sec.Round{D: 10})
	if DpPer100(V, 10, hi, opts) >= DpPer100(V, 10, st, opts) {
		tst.Errorf("friction rate at 5000 ft must be lower than at sea level\n")
	}
}

func Test_duct03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct03. solvers round trip")

	st := air.Standard()
	opts := DefaultOptions()
	V := Velocity(1000, sec.Round{D: 10})
	rate := DpPer100(V, 10, st, opts)

	rd := SolveDiameter(1000, rate, st, opts)
	io.Pforan("rd = %v\n", rd)
	if !rd.Converged() {
		tst.Errorf("diameter solve should converge: %v\n", rd)
		return
	}
	chk.Float64(tst, "D", 1e-3, rd.X, 10)

	rv := SolveVelocity(10, rate, st, opts)
	io.Pforan("rv = %v\n", rv)
	if !rv.Converged() {
		tst.Errorf("velocity solve should converge: %v\n", rv)
		return
	}
	chk.Float64(tst, "V", 0.1, rv.X, V)

	// every friction model
	for _, name := range friction.Names() {
		mdl, err := friction.New(name)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}
		o := Options{Model: mdl, Roughness: Galvanized}
		r := SolveDiameter(2500, 0.08, st, o)
		got := DpPer100(Velocity(2500, sec.Round{D: r.X}), r.X, st, o)
		chk.Float64(tst, name, 1e-4, got, 0.08)
	}

	// velocity sizing
	chk.Float64(tst, "D for 1833.5 fpm", 1e-3, DiameterForVelocity(1000, V), 10)
}

func Test_duct04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct04. rectangular and flat oval sizing")

	st := air.Standard()
	opts := DefaultOptions()

	q, rq := SizeRect(2000, 0.1, 2, st, opts)
	io.Pforan("rect = %v (%v)\n", q, rq)
	if rq.Status != root.Converged {
		tst.Errorf("rect sizing should converge: %v\n", rq)
		return
	}
	chk.Float64(tst, "aspect", 1e-12, q.AspectRatio(), 2)
	chk.Float64(tst, "rect rate", 1e-3, Evaluate(2000, q, st, opts).Rate, 0.1)

	o, ro := SizeFlatOval(2000, 0.1, 3, st, opts)
	io.Pforan("oval = %v (%v)\n", o, ro)
	if ro.Status != root.Converged {
		tst.Errorf("flat oval sizing should converge: %v\n", ro)
		return
	}
	chk.Float64(tst, "oval rate", 1e-3, Evaluate(2000, o, st, opts).Rate, 0.1)

	// a rectangle is slower than its equal-friction round: larger area
	rd := SolveDiameter(2000, 0.1, st, opts)
	if Velocity(2000, q) >= Velocity(2000, sec.Round{D: rd.X}) {
		tst.Errorf("rectangle velocity must be below the equal-friction round velocity\n")
	}
}

func Test_duct05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct05. degenerate input and pressure drop")

	st := air.Standard()
	opts := DefaultOptions()

	chk.Float64(tst, "V(0)", 1e-17, Velocity(0, sec.Round{D: 10}), 0)
	chk.Float64(tst, "V(D=0)", 1e-17, Velocity(1000, sec.Round{}), 0)
	chk.Float64(tst, "Re(ν=0)", 1e-17, Reynolds(1000, 10, 0), 0)
	chk.Float64(tst, "rate(0)", 1e-17, DpPer100(0, 10, st, opts), 0)
	chk.Float64(tst, "D(0 fpm)", 1e-17, DiameterForVelocity(1000, 0), 0)

	r := SolveDiameter(0, 0.1, st, opts)
	if r.Status != root.Unresolved || r.X != 0 {
		tst.Errorf("zero flow must give an unresolved zero result: %v\n", r)
	}
	r = SolveVelocity(10, -1, st, opts)
	if r.Status != root.Unresolved || r.X != 0 {
		tst.Errorf("negative rate must give an unresolved zero result: %v\n", r)
	}
	if q, rq := SizeRect(0, 0.1, 2, st, opts); rq.Status != root.Unresolved || q.Area() != 0 {
		tst.Errorf("zero flow must give an empty rectangle\n")
	}

	b := TotalPressureDrop(Run{
		Rate:     0.1,
		VP:       0.2,
		Length:   200,
		Fittings: []loss.Fitting{{Name: "elbow-90", K: 0.25, Leq: 10, Count: 4}},
		Mode:     loss.Coefficient,
	})
	chk.Float64(tst, "friction", 1e-15, b.Friction, 0.2)
	chk.Float64(tst, "minor", 1e-15, b.Minor, 0.2)
	chk.Float64(tst, "total", 1e-15, b.Total, 0.4)
}

func Test_duct06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct06. concurrent solves")

	st := air.Standard()
	opts := DefaultOptions()
	flows := []float64{150, 400, 800, 1200, 2500, 4000, 8000, 12000}
	want := make([]float64, len(flows))
	for i, q := range flows {
		want[i] = SolveDiameter(q, 0.08, st, opts).X
	}

	got := make([]float64, len(flows))
	var wg sync.WaitGroup
	for i, q := range flows {
		wg.Add(1)
		go func(i int, q float64) {
			defer wg.Done()
			got[i] = SolveDiameter(q, 0.08, st, opts).X
		}(i, q)
	}
	wg.Wait()
	chk.Array(tst, "diameters", 1e-15, got, want)
}

func Test_duct07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("duct07. solved diameter versus rate and flow")

	st := air.Standard()
	opts := DefaultOptions()
	flows := []float64{20, 100, 500, 2000, 10000, 50000}
	rates := []float64{0.005, 0.02, 0.08, 0.3, 1, 2}

	// diameter falls with rate
	for _, q := range flows {
		prev := math.Inf(1)
		for _, r := range rates {
			res := SolveDiameter(q, r, st, opts)
			if res.Status != root.Converged {
				tst.Errorf("q=%g rate=%g: status = %v\n", q, r, res.Status)
				return
			}
			if res.X >= prev {
				tst.Errorf("diameter must decrease with rate: q=%g rate=%g d=%g prev=%g\n", q, r, res.X, prev)
			}
			prev = res.X
		}
	}

	// diameter grows with flow
	for _, r := range rates {
		prev := 0.0
		for _, q := range flows {
			d := SolveDiameter(q, r, st, opts).X
			if d <= prev {
				tst.Errorf("diameter must increase with flow: q=%g rate=%g d=%g prev=%g\n", q, r, d, prev)
			}
			prev = d
		}
	}

	// lowest flow and rate run near the laminar limit
	d := SolveDiameter(20, 0.005, st, opts).X
	Re := Reynolds(Velocity(20, sec.Round{D: d}), d, st.Nu)
	io.Pforan("d = %v  Re = %v\n", d, Re)
	if Re > 1e4 {
		tst.Errorf("20 cfm at 0.005 in. w.g./100 ft must be near the laminar limit; Re = %g\n", Re)
	}
}
