// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/calc"
	"github.com/ductolator/ductolator/root"
)

func verbose() {
	chk.Verbose = true
}

// execute runs the root command with args and returns the standard output
func execute(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if chk.Verbose {
		io.Pf("%s%s", stdout.String(), stderr.String())
	}
	return stdout.String(), err
}

func Test_cli01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli01. single runs")

	txt, err := execute("duct", "--cfm", "1000", "--friction", "0.1", "--length", "50", "--fitting", "elbow-90:2")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for _, key := range []string{"duct", "1000", "converged"} {
		if !strings.Contains(txt, key) {
			tst.Errorf("duct output must contain %q\n", key)
		}
	}

	txt, err = execute("pipe", "--gpm", "50", "--size", "2", "--material", "steel-40")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !strings.Contains(txt, "2.067") {
		tst.Errorf("pipe output must contain the inside diameter of 2\" steel\n")
	}

	txt, err = execute("air", "--alt", "5000", "--temp", "55")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	if !strings.Contains(txt, "density") {
		tst.Errorf("air output must contain the density\n")
	}
}

func Test_cli02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli02. job file")

	txt, err := execute("run", "../inp/data/office.yaml", "--format", "json", "--workers", "2")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	var rep calc.Report
	if err = json.Unmarshal([]byte(txt), &rep); err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.String(tst, rep.Key, "office")
	chk.Int(tst, "ducts", len(rep.Ducts), 3)
	chk.Int(tst, "pipes", len(rep.Pipes), 3)
	for _, r := range rep.Ducts {
		if r.Status == root.Unresolved {
			tst.Errorf("duct %s must be resolved\n", r.Name)
		}
	}
}

func Test_cli03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli03. errors")

	cases := [][]string{
		{"duct", "--cfm", "1000", "--shape", "hexagon"},
		{"duct", "--cfm", "1000", "--model", "unknown"},
		{"pipe", "--gpm", "10", "--fitting", "elbow-90:x"},
		{"pipe", "--gpm", "10", "--method", "manning"},
		{"air", "--temp", "-500"},
		{"run", "not-found.yaml"},
		{"run", "../inp/data/office.yaml", "--format", "xml"},
	}
	for _, args := range cases {
		if _, err := execute(args...); err == nil {
			tst.Errorf("%v must fail\n", args)
		}
	}

	fits, err := parseFittings([]string{"elbow-90", " tee-branch:3"})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "fittings", len(fits), 2)
	chk.String(tst, fits[1].Name, "tee-branch")
	chk.Int(tst, "count", fits[1].Count, 3)
}

func Test_cli04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli04. example jobs")

	for _, fn := range []string{"../examples/residential/residential.yaml", "../examples/drainage/drainage.yaml"} {
		txt, err := execute("run", fn)
		if err != nil {
			tst.Errorf("%s: %v\n", fn, err)
			continue
		}
		if !strings.Contains(txt, "converged") {
			tst.Errorf("%s: at least one run must converge\n", fn)
		}
	}
}

func Test_cli05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cli05. mixed air")

	txt, err := execute("mix", "--oa", "2000:95", "--ra", "8000:75", "--alt", "1000")
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	for _, key := range []string{"10000.0 cfm", "79.00 F", "0.2000", "density"} {
		if !strings.Contains(txt, key) {
			tst.Errorf("mix output must contain %q\n", key)
		}
	}

	streams, err := parseStreams([]string{"1500:-10", " 500:72"})
	if err != nil {
		tst.Errorf("%v\n", err)
		return
	}
	chk.Int(tst, "streams", len(streams), 2)
	chk.Float64(tst, "temp", 1e-17, streams[0].TempF, -10)
	chk.Float64(tst, "cfm", 1e-17, streams[1].Cfm, 500)

	for _, args := range [][]string{
		{"mix", "--oa", "2000"},
		{"mix", "--oa", "abc:95"},
		{"mix", "--oa", "0:95", "--ra", "0:75"},
	} {
		if _, err := execute(args...); err == nil {
			tst.Errorf("%v must fail\n", args)
		}
	}
}
