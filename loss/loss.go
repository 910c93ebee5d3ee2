// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package loss implements the accounting of fitting (minor) losses
//  A set of fittings is accounted either by loss coefficients (ΣK・VP) or by
//  equivalent lengths (rate・ΣLeq/100), never both: the Mode selects which
//  field of each Fitting is used and the other one is ignored.
package loss

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Mode selects the minor-loss method
type Mode int

const (
	Coefficient      Mode = iota // ΣK・VP
	EquivalentLength             // rate・ΣLeq/100
)

// String returns the name of the mode
func (m Mode) String() string {
	if m == EquivalentLength {
		return "leq"
	}
	return "k"
}

// ParseMode converts "k" or "leq" into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "k", "coefficient":
		return Coefficient, nil
	case "leq", "equivalent-length":
		return EquivalentLength, nil
	}
	return Coefficient, chk.Err("minor-loss mode %q is invalid; use \"k\" or \"leq\"", s)
}

// Fitting holds the loss data of a fitting
type Fitting struct {
	Name  string  // e.g. "elbow-90"
	K     float64 // loss coefficient [-]
	Leq   float64 // equivalent length [ft]
	Count int     // number of identical fittings; 0 means 1
}

// n returns the number of fittings
func (o Fitting) n() float64 {
	if o.Count <= 0 {
		return 1
	}
	return float64(o.Count)
}

// SumK returns ΣK
func SumK(fittings []Fitting) (sum float64) {
	for _, f := range fittings {
		sum += f.n() * f.K
	}
	return
}

// SumLeq returns ΣLeq [ft]
func SumLeq(fittings []Fitting) (sum float64) {
	for _, f := range fittings {
		sum += f.n() * f.Leq
	}
	return
}

// Breakdown holds the parts of a pressure drop
type Breakdown struct {
	Friction float64 // straight run
	Minor    float64 // fittings
	Total    float64 // Friction + Minor
}

// Total computes the pressure drop of a straight run with fittings
//  Input:
//   rate     -- friction rate per 100 ft
//   length   -- run length [ft]
//   vp       -- velocity pressure (same pressure unit as rate)
//   fittings -- fittings along the run
//   mode     -- minor-loss method
//  Note: non-positive rate, length or vp contribute zero
func Total(rate, length, vp float64, fittings []Fitting, mode Mode) (o Breakdown) {
	if rate > 0 && length > 0 {
		o.Friction = rate * length / 100
	}
	switch mode {
	case EquivalentLength:
		if rate > 0 {
			o.Minor = rate * SumLeq(fittings) / 100
		}
	default:
		if vp > 0 {
			o.Minor = SumK(fittings) * vp
		}
	}
	o.Total = o.Friction + o.Minor
	return
}
