// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the database of duct materials, pipe materials and fittings
//  The numeric packages (duct, pipe, loss) take plain roughness, C factor and
//  loss data; this package translates catalogue names into those numbers and is
//  passed explicitly to whoever needs it.
package mat

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/ductolator/ductolator/loss"
)

// Db is a lookup service for materials and fittings
type Db interface {
	Duct(name string) (Duct, error)       // duct material
	Pipe(name string) (Pipe, error)       // pipe material and sizes
	Fitting(name string) (Fitting, error) // fitting loss data
}

// Duct holds a duct material
type Duct struct {
	Name      string  // e.g. "galvanized"
	Roughness float64 // absolute roughness [ft]
	Extra     string  // description
}

// Size holds a standard pipe size
type Size struct {
	Nominal string  // trade size; e.g. "1-1/2"
	ID      float64 // inside diameter [in]
}

// Pipe holds a pipe material
type Pipe struct {
	Name      string  // e.g. "copper-l"
	C         float64 // Hazen-Williams factor
	Roughness float64 // absolute roughness [ft]
	Manning   float64 // Manning n
	Sizes     []Size  // standard sizes sorted by inside diameter
	Extra     string  // description
}

// Next returns the smallest standard size whose inside diameter is at least dIn
//  Note: returns false if dIn exceeds the largest size or no sizes are tabulated
func (o Pipe) Next(dIn float64) (Size, bool) {
	i := sort.Search(len(o.Sizes), func(i int) bool { return o.Sizes[i].ID >= dIn })
	if i == len(o.Sizes) {
		return Size{}, false
	}
	return o.Sizes[i], true
}

// Find returns the size with the given nominal trade size
func (o Pipe) Find(nominal string) (Size, error) {
	for _, s := range o.Sizes {
		if s.Nominal == nominal {
			return s, nil
		}
	}
	return Size{}, chk.Err("size %q is not available for pipe %q", nominal, o.Name)
}

// GetPrms returns the friction parameters of this material
func (o Pipe) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "eps", V: o.Roughness},
		&dbf.P{N: "n", V: o.Manning},
	}
}

// Fitting holds the loss data of a fitting
//  The equivalent length scales with the diameter: Leq = LD・D.
type Fitting struct {
	Name  string  // e.g. "elbow-90"
	K     float64 // loss coefficient
	LD    float64 // equivalent length in diameters
	Extra string  // description
}

// Leq returns the equivalent length [ft] in a duct or pipe of diameter dIn
func (o Fitting) Leq(dIn float64) float64 {
	if dIn <= 0 {
		return 0
	}
	return o.LD * dIn / 12
}

// Loss returns the loss data of count fittings in a duct or pipe of diameter dIn
func (o Fitting) Loss(dIn float64, count int) loss.Fitting {
	return loss.Fitting{Name: o.Name, K: o.K, Leq: o.Leq(dIn), Count: count}
}

// Table implements Db with in-memory maps
type Table struct {
	Ducts    map[string]Duct
	Pipes    map[string]Pipe
	Fittings map[string]Fitting
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{
		Ducts:    make(map[string]Duct),
		Pipes:    make(map[string]Pipe),
		Fittings: make(map[string]Fitting),
	}
}

// AddDuct adds (or replaces) duct materials
func (o *Table) AddDuct(ducts ...Duct) {
	for _, d := range ducts {
		o.Ducts[key(d.Name)] = d
	}
}

// AddPipe adds (or replaces) pipe materials; sizes are sorted by inside diameter
func (o *Table) AddPipe(pipes ...Pipe) {
	for _, p := range pipes {
		p.Sizes = append([]Size(nil), p.Sizes...)
		sort.Slice(p.Sizes, func(i, j int) bool { return p.Sizes[i].ID < p.Sizes[j].ID })
		o.Pipes[key(p.Name)] = p
	}
}

// AddFitting adds (or replaces) fittings
func (o *Table) AddFitting(fittings ...Fitting) {
	for _, f := range fittings {
		o.Fittings[key(f.Name)] = f
	}
}

// Duct returns a duct material
func (o *Table) Duct(name string) (Duct, error) {
	if d, ok := o.Ducts[key(name)]; ok {
		return d, nil
	}
	return Duct{}, chk.Err("duct material %q is not available in 'mat' database", name)
}

// Pipe returns a pipe material
func (o *Table) Pipe(name string) (Pipe, error) {
	if p, ok := o.Pipes[key(name)]; ok {
		return p, nil
	}
	return Pipe{}, chk.Err("pipe material %q is not available in 'mat' database", name)
}

// Fitting returns a fitting
func (o *Table) Fitting(name string) (Fitting, error) {
	if f, ok := o.Fittings[key(name)]; ok {
		return f, nil
	}
	return Fitting{}, chk.Err("fitting %q is not available in 'mat' database", name)
}

// Names returns the sorted names of ducts, pipes and fittings
func (o *Table) Names() (ducts, pipes, fittings []string) {
	for _, d := range o.Ducts {
		ducts = append(ducts, d.Name)
	}
	for _, p := range o.Pipes {
		pipes = append(pipes, p.Name)
	}
	for _, f := range o.Fittings {
		fittings = append(fittings, f.Name)
	}
	sort.Strings(ducts)
	sort.Strings(pipes)
	sort.Strings(fittings)
	return
}

// key normalises names
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
