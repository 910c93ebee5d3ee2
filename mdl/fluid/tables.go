// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "github.com/cpmech/gosl/chk"

// tabulated temperatures [°F] shared by all fluids
var temps = []float64{40, 60, 80, 100, 140, 180, 200}

// water row: density [lbm/ft³] and kinematic viscosity [cSt]
var (
	waterDensity = []float64{62.43, 62.37, 62.22, 61.99, 61.38, 60.57, 60.12}
	waterNu      = []float64{1.546, 1.131, 0.863, 0.687, 0.478, 0.358, 0.317}
)

// tables holds all fluids; tables are read-only after init
var tables = map[string]*table{
	"water": {
		name:      "water",
		temps:     temps,
		glycols:   []float64{0},
		density:   [][]float64{waterDensity},
		nu:        [][]float64{waterNu},
		hwMult:    []float64{1},
		roughMult: []float64{1},
	},
	"ethylene": {
		name:    "ethylene",
		temps:   temps,
		glycols: []float64{0, 20, 40, 60},
		density: [][]float64{
			waterDensity,
			{64.33, 64.18, 63.97, 63.71, 63.05, 62.21, 61.74},
			{66.05, 65.81, 65.52, 65.19, 64.41, 63.48, 62.97},
			{67.66, 67.35, 67.00, 66.62, 65.76, 64.77, 64.23},
		},
		nu: [][]float64{
			waterNu,
			{2.75, 1.95, 1.45, 1.13, 0.75, 0.54, 0.47},
			{5.30, 3.45, 2.45, 1.80, 1.12, 0.77, 0.66},
			{11.3, 6.85, 4.55, 3.20, 1.85, 1.20, 1.00},
		},
		hwMult:    []float64{1, 0.95, 0.91, 0.87},
		roughMult: []float64{1, 1.05, 1.10, 1.15},
	},
	"propylene": {
		name:    "propylene",
		temps:   temps,
		glycols: []float64{0, 20, 40, 60},
		density: [][]float64{
			waterDensity,
			{63.85, 63.70, 63.49, 63.23, 62.59, 61.78, 61.32},
			{64.95, 64.74, 64.47, 64.15, 63.38, 62.45, 61.95},
			{65.75, 65.48, 65.16, 64.79, 63.93, 62.93, 62.40},
		},
		nu: [][]float64{
			waterNu,
			{3.60, 2.45, 1.75, 1.32, 0.84, 0.58, 0.50},
			{8.60, 5.20, 3.45, 2.45, 1.42, 0.93, 0.79},
			{24.0, 12.6, 7.40, 4.80, 2.45, 1.45, 1.20},
		},
		hwMult:    []float64{1, 0.94, 0.89, 0.84},
		roughMult: []float64{1, 1.05, 1.10, 1.15},
	},
}

// New returns a new fluid model
func New(name string) (model *Model, err error) {
	tab, ok := tables[name]
	if !ok {
		return nil, chk.Err("fluid %q is not available in 'fluid' database", name)
	}
	return &Model{TempF: 60, tab: tab}, nil
}

// Resolve returns the state of fluid name at temperature tempF and glycol concentration glycol
func Resolve(name string, tempF, glycol float64) (State, error) {
	mdl, err := New(name)
	if err != nil {
		return State{}, err
	}
	return mdl.Calc(tempF, glycol), nil
}

// Water returns the state of water at tempF
func Water(tempF float64) State {
	return (&Model{tab: tables["water"]}).Calc(tempF, 0)
}

// Names returns the names of all available fluids
func Names() []string {
	return []string{"water", "ethylene", "propylene"}
}
