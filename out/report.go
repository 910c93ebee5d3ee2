// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of sizing reports and charts
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/calc"
)

// Format returns the tables of a report
func Format(rep *calc.Report) string {
	var b bytes.Buffer
	d := rep.Design
	io.Ff(&b, "%s\n", rep.Key)
	if d.Desc != "" {
		io.Ff(&b, "%s\n", d.Desc)
	}
	io.Ff(&b, "air   : %g F, %g ft, ρ = %.5f lbm/ft³, ν = %.4e ft²/s, friction = %s\n", d.Temp, d.Alt, rep.Air.Density, rep.Air.Nu, d.Friction)
	io.Ff(&b, "fluid : %s %g F", rep.Fluid.Fluid, rep.Fluid.TempF)
	if rep.Fluid.Glycol > 0 {
		io.Ff(&b, " %g%%", rep.Fluid.Glycol)
	}
	io.Ff(&b, ", SG = %.4f, ν = %.4e ft²/s\n", rep.Fluid.SpecificGravity(), rep.Fluid.Nu)

	if len(rep.Ducts) > 0 {
		io.Ff(&b, "\n%-10s %-22s %9s %9s %8s %8s %10s %8s %8s  %s\n", "duct", "section", "cfm", "fpm", "vp", "De", "rate/100", "dp", "status", "")
		for _, r := range rep.Ducts {
			io.Ff(&b, "%-10s %-22s %9.0f %9.0f %8.4f %8.2f %10.4f %8.4f %8s  %s\n", r.Name, r.Section, r.Cfm, r.Velocity, r.VP, r.De, r.Rate, r.Loss.Total, r.Status, r.Note)
		}
	}

	if len(rep.Pipes) > 0 {
		io.Ff(&b, "\n%-10s %-10s %-7s %8s %8s %8s %8s %10s %8s %8s  %s\n", "pipe", "material", "size", "ID", "gpm", "fps", "Re", "psi/100", "dp", "status", "")
		for _, r := range rep.Pipes {
			io.Ff(&b, "%-10s %-10s %-7s %8.3f %8.1f %8.2f %8.0f %10.4f %8.4f %8s  %s\n", r.Name, r.Material, r.Nominal, r.Diameter, r.Gpm, r.Velocity, r.Re, r.Rate, r.Loss.Total, r.Status, r.Note)
		}
	}
	return b.String()
}

// Print prints the tables of a report
func Print(rep *calc.Report) {
	io.Pf("%s", Format(rep))
	if n := rep.Notes(); n > 0 {
		io.PfYel("\n%d run(s) with notes\n", n)
	}
}
