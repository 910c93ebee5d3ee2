// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/duct"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
	"github.com/ductolator/ductolator/mdl/mat"
	"github.com/ductolator/ductolator/root"
	"github.com/ductolator/ductolator/sec"
)

// caseData holds the data shared by all runs of a job; read-only once built
type caseData struct {
	db    mat.Db
	air   air.State
	fluid fluid.State
	model friction.Model
}

// frictionModel allocates the friction model named name
func frictionModel(name string) (friction.Model, error) {
	if name == "" {
		return friction.Default(), nil
	}
	return friction.NewDuct(name)
}

// duct computes a duct run
func (o *caseData) duct(r *inp.DuctRun) (res *DuctResult) {
	res = &DuctResult{Name: r.Name, Shape: r.Shape, Mode: r.Mode}
	m, err := o.db.Duct(r.Material)
	if err != nil {
		res.Note = err.Error()
		return
	}
	if r.Cfm <= 0 {
		res.Note = io.Sf("air flow must be positive (%g cfm)", r.Cfm)
		return
	}
	opts := duct.Options{Model: o.model, Roughness: m.Roughness}

	// section
	var s sec.Section
	var note string
	switch r.Mode {
	case "check":
		s, note = checkSection(r)
		res.Status = root.Converged
	default:
		s, res.Status, note = o.sizeSection(r, opts)
	}
	if note != "" {
		res.Status, res.Note = root.Unresolved, note
		return
	}

	// results
	flow := duct.Evaluate(r.Cfm, s, o.air, opts)
	res.Section = s.String()
	res.Width, res.Height = dims(s)
	res.De = flow.De
	res.Cfm = flow.Cfm
	res.Velocity = flow.Velocity
	res.VP = flow.VP
	res.Re = flow.Re
	res.F = flow.F
	res.Rate = flow.Rate
	if res.Status == root.BestEffort {
		res.Note = "sizing did not reach the tolerance; size is the best estimate"
	}

	// losses
	fittings, err := lossFittings(o.db, r.Fittings, flow.De)
	if err != nil {
		res.Note = err.Error()
		return
	}
	mode, err := loss.ParseMode(r.LossMode)
	if err != nil {
		res.Note = err.Error()
		return
	}
	res.Loss = duct.TotalPressureDrop(duct.Run{
		Rate:     flow.Rate,
		VP:       flow.VP,
		Length:   r.Length,
		Fittings: fittings,
		Mode:     mode,
	})
	return
}

// sizeSection sizes the section of a duct run by friction rate or velocity
func (o *caseData) sizeSection(r *inp.DuctRun, opts duct.Options) (s sec.Section, status root.Status, note string) {

	// by velocity
	if r.Friction <= 0 {
		if r.Velocity <= 0 {
			return nil, root.Unresolved, "sizing needs a positive friction rate or velocity"
		}
		s = sectionForVelocity(r)
		if r.Nominal {
			s = nominal(s)
		}
		return s, root.Converged, ""
	}

	// by friction rate
	switch r.Shape {
	case "rect":
		var q sec.Rect
		var res root.Result
		if r.Height > 0 {
			rd := duct.SolveDiameter(r.Cfm, r.Friction, o.air, opts)
			if rd.Status == root.Unresolved {
				return nil, rd.Status, unresolved(rd)
			}
			q, res = sec.RectForRoundWithSide(rd.X, r.Height)
			res.Status = root.Worst(rd.Status, res.Status)
		} else {
			q, res = duct.SizeRect(r.Cfm, r.Friction, r.Aspect, o.air, opts)
		}
		if res.Status == root.Unresolved {
			return nil, res.Status, unresolved(res)
		}
		s, status = q, res.Status
	case "oval":
		q, res := duct.SizeFlatOval(r.Cfm, r.Friction, r.Aspect, o.air, opts)
		if res.Status == root.Unresolved {
			return nil, res.Status, unresolved(res)
		}
		s, status = q, res.Status
	default:
		res := duct.SolveDiameter(r.Cfm, r.Friction, o.air, opts)
		if res.Status == root.Unresolved {
			return nil, res.Status, unresolved(res)
		}
		s, status = sec.Round{D: res.X}, res.Status
	}
	if r.Nominal {
		s = nominal(s)
	}
	return
}

// sectionForVelocity returns the section of a run whose mean velocity equals the target
func sectionForVelocity(r *inp.DuctRun) sec.Section {
	ar := math.Max(r.Aspect, 1)
	Ain2 := r.Cfm / r.Velocity * 144
	switch r.Shape {
	case "rect":
		b := math.Sqrt(Ain2 / ar)
		return sec.NewRect(ar*b, b)
	case "oval":
		b := math.Sqrt(Ain2 / (ar - 1 + math.Pi/4))
		return sec.NewFlatOval(ar*b, b)
	}
	return sec.Round{D: duct.DiameterForVelocity(r.Cfm, r.Velocity)}
}

// checkSection returns the given section of a run
func checkSection(r *inp.DuctRun) (s sec.Section, note string) {
	switch r.Shape {
	case "rect":
		s = sec.NewRect(r.Width, r.Height)
	case "oval":
		s = sec.NewFlatOval(r.Width, r.Height)
	default:
		d := r.Diameter
		if d == 0 {
			d = r.Width
		}
		s = sec.Round{D: d}
	}
	if s.Area() <= 0 {
		return nil, io.Sf("%s duct dimensions must be positive", r.Shape)
	}
	return
}

// nominal rounds a section up to standard sizes
func nominal(s sec.Section) sec.Section {
	switch q := s.(type) {
	case sec.Rect:
		return q.Nominal()
	case sec.FlatOval:
		return q.Nominal()
	case sec.Round:
		return sec.Round{D: sec.NextRound(q.D)}
	}
	return s
}

// dims returns the main dimensions of a section
func dims(s sec.Section) (width, height float64) {
	switch q := s.(type) {
	case sec.Rect:
		return q.Long, q.Short
	case sec.FlatOval:
		return q.Major, q.Minor
	case sec.Round:
		return q.D, 0
	}
	return
}

// unresolved returns the note of an unresolved solve
func unresolved(res root.Result) string {
	return io.Sf("sizing could not bracket a solution after %d expansions", res.Expand)
}

// lossFittings converts the fittings of a run; catalogue values fill K and Leq left at zero
func lossFittings(db mat.Db, data []*inp.FittingData, dIn float64) (fittings []loss.Fitting, err error) {
	for _, f := range data {
		lf := loss.Fitting{Name: f.Name, K: f.K, Leq: f.Leq, Count: f.Count}
		if f.Name != "" && (f.K == 0 || f.Leq == 0) {
			cat, e := db.Fitting(f.Name)
			if e != nil && f.K == 0 && f.Leq == 0 {
				return nil, e
			}
			if e == nil {
				if lf.K == 0 {
					lf.K = cat.K
				}
				if lf.Leq == 0 {
					lf.Leq = cat.Leq(dIn)
				}
			}
		}
		fittings = append(fittings, lf)
	}
	return
}
