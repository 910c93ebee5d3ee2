// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. default catalogue")

	var db Db = Default()

	d, err := db.Duct(" Galvanized ")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "galvanized ε", 1e-17, d.Roughness, 0.0003)

	p, err := db.Pipe("steel-40")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "steel C", 1e-17, p.C, 120)
	s, err := p.Find("2")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "2 in ID", 1e-17, s.ID, 2.067)

	f, err := db.Fitting("elbow-90")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	lf := f.Loss(12, 3)
	chk.Float64(tst, "Leq", 1e-15, lf.Leq, 30)
	chk.Int(tst, "count", lf.Count, 3)

	for _, name := range []string{"unobtainium"} {
		if _, err := db.Duct(name); err == nil {
			tst.Errorf("Duct(%q) should fail\n", name)
		}
		if _, err := db.Pipe(name); err == nil {
			tst.Errorf("Pipe(%q) should fail\n", name)
		}
		if _, err := db.Fitting(name); err == nil {
			tst.Errorf("Fitting(%q) should fail\n", name)
		}
	}
	if _, err := p.Find("7/8"); err == nil {
		tst.Errorf("Find(\"7/8\") should fail\n")
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. next standard size")

	db := Default()
	p, _ := db.Pipe("copper-l")

	s, ok := p.Next(1.1)
	io.Pforan("next(1.1) = %+v\n", s)
	if !ok {
		tst.Errorf("1.1 in should fit in copper-l\n")
		return
	}
	chk.String(tst, s.Nominal, "1-1/4")

	s, ok = p.Next(1.025)
	chk.String(tst, s.Nominal, "1")

	if _, ok = p.Next(7); ok {
		tst.Errorf("7 in is larger than any copper-l size\n")
	}

	// sizes are kept sorted
	t := NewTable()
	t.AddPipe(Pipe{Name: "x", Sizes: []Size{{"b", 2}, {"a", 1}}})
	x, _ := t.Pipe("x")
	chk.String(tst, x.Sizes[0].Nominal, "a")

	ducts, pipes, fittings := db.Names()
	chk.Int(tst, "ducts", len(ducts), 6)
	chk.Int(tst, "pipes", len(pipes), 5)
	chk.Strings(tst, "first fittings", fittings[:2], []string{"ball-valve", "butterfly-valve"})

	prms := p.GetPrms()
	chk.Float64(tst, "C", 1e-17, prms.Find("C").V, 140)
}
