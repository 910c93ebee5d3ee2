// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/pipe"
)

func verbose() {
	chk.Verbose = true
}

func Test_closedform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closedform01. Hazen-Williams and Manning diameters")

	io.PfWhite("%8s%8s%14s%14s\n", "gpm", "psi", "dAna", "dNum")
	for _, gpm := range []float64{5, 20, 50, 200, 1000} {
		for _, psi := range []float64{1, 2.5, 4} {
			dAna := HazenWilliamsDiameter(gpm, 140, psi, 1)
			res := pipe.SolveDiameterHW(gpm, 140, psi, 1)
			io.Pf("%8g%8g%14.8f%14.8f\n", gpm, psi, dAna, res.X)
			chk.AnaNum(tst, "d", 1e-4, dAna, res.X, chk.Verbose)
		}
	}

	for _, gpm := range []float64{50, 300, 2000} {
		dAna := ManningFullDiameter(gpm, 0.01, 0.013)
		res := pipe.FullFlowDiameter(gpm, 0.01, 0.013)
		chk.AnaNum(tst, "D", 1e-4, dAna, res.X, chk.Verbose)
	}
}

func Test_closedform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("closedform02. laminar flow and limiting friction factors")

	st, err := fluid.Resolve("propylene", 40, 60)
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	gpm, dIn := 5.0, 2.0
	Re := pipe.Reynolds(pipe.Velocity(gpm, dIn), dIn, st.Nu)
	io.Pforan("Re = %v\n", Re)
	if Re >= 2000 {
		tst.Errorf("flow must be laminar\n")
		return
	}
	chk.AnaNum(tst, "h", 1e-12, LaminarRate(gpm, dIn, st.Nu), pipe.DarcyWeisbach(gpm, dIn, 0, st).FtPer100, chk.Verbose)

	cb := friction.Default()
	for _, r := range []float64{1e-3, 1e-2, 0.04} {
		chk.AnaNum(tst, "f(rough)", 1e-4, FullyRough(r), friction.Factor(cb, 1e8, 1, r), chk.Verbose)
	}
	for _, re := range []float64{5e3, 2e4, 8e4} {
		chk.AnaNum(tst, "f(smooth)", 1.5e-3, Blasius(re), friction.Factor(cb, re, 1, 0), chk.Verbose)
	}
}
