// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loss

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_loss01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss01. mutually exclusive methods")

	fittings := []Fitting{
		{Name: "elbow-90", K: 0.3, Leq: 12, Count: 2},
		{Name: "tee-branch", K: 1.0, Leq: 40},
	}
	chk.Float64(tst, "ΣK", 1e-15, SumK(fittings), 1.6)
	chk.Float64(tst, "ΣLeq", 1e-15, SumLeq(fittings), 64)

	k := Total(0.1, 150, 0.2, fittings, Coefficient)
	chk.Float64(tst, "k: friction", 1e-15, k.Friction, 0.15)
	chk.Float64(tst, "k: minor", 1e-15, k.Minor, 0.32)
	chk.Float64(tst, "k: total", 1e-15, k.Total, 0.47)

	l := Total(0.1, 150, 0.2, fittings, EquivalentLength)
	chk.Float64(tst, "leq: friction", 1e-15, l.Friction, 0.15)
	chk.Float64(tst, "leq: minor", 1e-15, l.Minor, 0.064)
	chk.Float64(tst, "leq: total", 1e-15, l.Total, 0.214)

	// never both
	both := 0.15 + 0.32 + 0.064
	if k.Total == both || l.Total == both {
		tst.Errorf("K and Leq losses must not be summed\n")
	}

	// no flow
	z := Total(0, 150, 0, fittings, Coefficient)
	chk.Float64(tst, "no flow", 1e-17, z.Total, 0)
}

func Test_loss02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loss02. modes")

	for s, want := range map[string]Mode{"": Coefficient, "K": Coefficient, "leq": EquivalentLength, " equivalent-length ": EquivalentLength} {
		m, err := ParseMode(s)
		if err != nil {
			tst.Errorf("ParseMode(%q) failed: %v\n", s, err)
			return
		}
		chk.Int(tst, s, int(m), int(want))
	}
	if _, err := ParseMode("both"); err == nil {
		tst.Errorf("ParseMode should fail for \"both\"\n")
	}
	if EquivalentLength.String() != "leq" || Coefficient.String() != "k" {
		tst.Errorf("wrong mode names\n")
	}
}
