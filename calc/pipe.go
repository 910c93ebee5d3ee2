// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/mat"
	"github.com/ductolator/ductolator/pipe"
	"github.com/ductolator/ductolator/root"
)

// pipe computes a pipe run
func (o *caseData) pipe(r *inp.PipeRun) (res *PipeResult) {
	res = &PipeResult{Name: r.Name, Material: r.Material, Mode: r.Mode, Method: r.Method}
	m, err := o.db.Pipe(r.Material)
	if err != nil {
		res.Note = err.Error()
		return
	}
	if r.Gpm <= 0 {
		res.Note = io.Sf("flow must be positive (%g gpm)", r.Gpm)
		return
	}
	if r.Mode == "manning" {
		o.manning(r, m, res)
		return
	}

	// fluid-adjusted material
	C := o.fluid.ApplyC(m.C)
	ε := o.fluid.ApplyRoughness(m.Roughness)
	sg := o.fluid.SpecificGravity()

	// diameter
	var d float64
	res.Status = root.Converged
	switch r.Mode {
	case "check":
		d = r.Diameter
		if d <= 0 && r.Size != "" {
			s, err := m.Find(r.Size)
			if err != nil {
				res.Status, res.Note = root.Unresolved, err.Error()
				return
			}
			d, res.Nominal = s.ID, s.Nominal
		}
		if d <= 0 {
			res.Status, res.Note = root.Unresolved, "pipe size or inside diameter must be given"
			return
		}
	default:
		if r.Friction <= 0 {
			res.Status, res.Note = root.Unresolved, "sizing needs a positive friction rate"
			return
		}
		var rd root.Result
		if r.Method == "dw" {
			rd = pipe.SolveDiameterDarcy(r.Gpm, ε, r.Friction, o.fluid)
		} else {
			rd = pipe.SolveDiameterHW(r.Gpm, C, r.Friction, sg)
		}
		if rd.Status == root.Unresolved {
			res.Status, res.Note = rd.Status, unresolved(rd)
			return
		}
		res.Status = rd.Status
		d, res.Nominal, res.Note = standard(m, rd.X)
	}

	// results
	var rate pipe.Loss
	if r.Method == "dw" {
		rate = pipe.DarcyWeisbach(r.Gpm, d, ε, o.fluid)
	} else {
		rate = pipe.HazenWilliams(r.Gpm, C, d, sg)
	}
	res.Diameter = d
	res.Gpm = r.Gpm
	res.Velocity = pipe.Velocity(r.Gpm, d)
	res.VP = pipe.VelocityPressure(res.Velocity, o.fluid.Density)
	res.Re = pipe.Reynolds(res.Velocity, d, o.fluid.Nu)
	res.FtPer100 = rate.FtPer100
	res.Rate = rate.PsiPer100
	if res.Status == root.BestEffort && res.Note == "" {
		res.Note = "sizing did not reach the tolerance; size is the best estimate"
	}

	// losses
	fittings, err := lossFittings(o.db, r.Fittings, d)
	if err != nil {
		res.Note = err.Error()
		return
	}
	mode, err := loss.ParseMode(r.LossMode)
	if err != nil {
		res.Note = err.Error()
		return
	}
	res.Loss = pipe.TotalPressureDrop(pipe.Run{
		Rate:     rate.PsiPer100,
		VP:       res.VP,
		Length:   r.Length,
		Fittings: fittings,
		Mode:     mode,
	})
	return
}

// manning sizes a sloped gravity pipe
func (o *caseData) manning(r *inp.PipeRun, m mat.Pipe, res *PipeResult) {
	res.Method = "manning"
	if r.Slope <= 0 || m.Manning <= 0 {
		res.Note = "gravity sizing needs a positive slope and Manning n"
		return
	}
	rd := pipe.PartialFlowDiameter(r.Gpm, r.Slope, m.Manning, r.Depth)
	if rd.Status == root.Unresolved {
		res.Note = unresolved(rd)
		return
	}
	res.Status = rd.Status
	res.Gpm = r.Gpm
	res.Diameter, res.Nominal, res.Note = standard(m, rd.X)

	// depth and velocity in the selected size
	res.Depth = r.Depth
	if dep := pipe.FlowDepth(r.Gpm, res.Diameter, r.Slope, m.Manning, r.Depth); dep.Status != root.Unresolved {
		res.Depth = dep.X
	}
	res.Velocity = r.Gpm / pipe.GpmPerCfs / pipe.Wetted(res.Diameter, res.Depth).Area
	res.Capacity = pipe.ManningFull(res.Diameter, r.Slope, m.Manning)
	if res.Status == root.BestEffort && res.Note == "" {
		res.Note = "sizing did not reach the tolerance; size is the best estimate"
	}
}

// standard returns the standard size fitting dIn or dIn itself with a note
func standard(m mat.Pipe, dIn float64) (d float64, nominal, note string) {
	if len(m.Sizes) == 0 {
		return dIn, "", ""
	}
	s, ok := m.Next(dIn)
	if !ok {
		return dIn, "", io.Sf("required diameter %.3f in exceeds the largest %s size", dIn, m.Name)
	}
	return s.ID, s.Nominal, ""
}
