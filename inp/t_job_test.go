// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_job01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job01. yaml job")

	job, err := ReadJob("data/office.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("design = %+v\n", job.Design)
	chk.String(tst, job.Key, "office")
	chk.String(tst, job.Design.DirOut, "/tmp/ductolator/office")
	chk.String(tst, job.Design.Friction, "colebrook")
	chk.Float64(tst, "temp", 1e-17, job.Design.Temp, 55)
	chk.Float64(tst, "alt", 1e-17, job.Design.Alt, 5000)
	chk.Float64(tst, "fluid temp", 1e-17, job.Design.FluidTemp, 140)

	chk.Int(tst, "ducts", len(job.Ducts), 3)
	chk.Int(tst, "pipes", len(job.Pipes), 3)

	// defaults
	s1 := job.Ducts[0]
	chk.String(tst, s1.Shape, "round")
	chk.String(tst, s1.Mode, "size")
	chk.String(tst, s1.Material, "galvanized")
	chk.Float64(tst, "aspect", 1e-17, s1.Aspect, 1)
	chk.Int(tst, "fittings", len(s1.Fittings), 2)
	chk.Int(tst, "elbows", s1.Fittings[0].Count, 2)

	s3 := job.Ducts[2]
	chk.String(tst, s3.Shape, "oval")
	chk.Float64(tst, "leq", 1e-17, s3.Fittings[0].Leq, 6)

	hw1, hw2, st1 := job.Pipes[0], job.Pipes[1], job.Pipes[2]
	chk.String(tst, hw1.Method, "hw")
	chk.String(tst, hw1.Material, "copper-l")
	chk.Float64(tst, "depth", 1e-17, hw1.Depth, 1)
	chk.String(tst, hw2.Size, "2")
	chk.String(tst, st1.Material, "cast-iron")
	chk.Float64(tst, "depth", 1e-17, st1.Depth, 0.5)

	// models
	amdl, err := job.Design.AirModel()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "air temp", 1e-17, amdl.TempF, 55)
	fmdl, err := job.Design.FluidModel()
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, fmdl.Name(), "water")
	chk.Float64(tst, "fluid temp", 1e-17, fmdl.State().TempF, 140)
}

func Test_job02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job02. json job")

	job, err := ReadJob("data/loop.json")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, job.Design.Fluid, "propylene")
	chk.Float64(tst, "glycol", 1e-17, job.Design.Glycol, 30)
	chk.Float64(tst, "air temp (default)", 1e-17, job.Design.Temp, 70)
	chk.Int(tst, "ducts", len(job.Ducts), 0)
	chk.Int(tst, "pipes", len(job.Pipes), 2)
	chk.String(tst, job.Pipes[0].Method, "dw")
	chk.String(tst, job.Pipes[0].LossMode, "leq")
	chk.Int(tst, "fittings", len(job.Pipes[0].Fittings), 2)
}

func Test_job03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("job03. invalid jobs")

	bad := map[string]string{
		"shape":    "ducts: [ {name: a, cfm: 100, shape: hexagon} ]",
		"mode":     "ducts: [ {name: a, cfm: 100, mode: optimise} ]",
		"method":   "pipes: [ {name: a, gpm: 10, method: manning} ]",
		"pmode":    "pipes: [ {name: a, gpm: 10, mode: guess} ]",
		"lossmode": "ducts: [ {name: a, cfm: 100, lossmode: both} ]",
		"fitting":  "ducts: [ {name: a, cfm: 100, fittings: [ {count: 2} ]} ]",
		"friction": "design: {friction: moody}",
		"swamee":   "design: {friction: swamee}",
		"fluid":    "design: {fluid: mercury}",
		"syntax":   "ducts: [ {name: a",
	}
	for key, src := range bad {
		if _, err := ParseJob([]byte(src), ".yaml"); err == nil {
			tst.Errorf("%s: ParseJob should have failed\n", key)
		} else {
			io.Pforan("%s: %v\n", key, err)
		}
	}

	if _, err := ReadJob("data/missing.yaml"); err == nil {
		tst.Errorf("ReadJob should fail for a missing file\n")
	}

	// numeric problems are left to the calculator
	job, err := ParseJob([]byte(`{"ducts":[{"name":"z","cfm":-5}]}`), ".json")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Float64(tst, "cfm", 1e-17, job.Ducts[0].Cfm, -5)
}
