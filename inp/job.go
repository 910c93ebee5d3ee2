// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a job file (.yaml or .json)
//  A job lists straight duct runs and pipe runs sharing one set of design
//  conditions. Names of shapes, modes and methods are checked when the file is
//  read; numeric inputs are checked per run by the calculator so that one bad
//  run does not stop the others.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/mdl/friction"
	"gopkg.in/yaml.v3"
)

// Design holds the design conditions of a job
type Design struct {
	Desc      string  `json:"desc" yaml:"desc"`           // description
	Temp      float64 `json:"temp" yaml:"temp"`           // air dry-bulb temperature [°F]
	Alt       float64 `json:"alt" yaml:"alt"`             // altitude [ft]
	Friction  string  `json:"friction" yaml:"friction"`   // friction correlation for ducts; e.g. "colebrook"
	Fluid     string  `json:"fluid" yaml:"fluid"`         // liquid in pipes; e.g. "water", "propylene"
	FluidTemp float64 `json:"fluidtemp" yaml:"fluidtemp"` // liquid temperature [°F]
	Glycol    float64 `json:"glycol" yaml:"glycol"`       // glycol concentration [%]
	DirOut    string  `json:"dirout" yaml:"dirout"`       // directory for output; e.g. /tmp/ductolator
}

// FittingData holds a fitting of a run
//  If K or Leq are given, they replace the catalogue values.
type FittingData struct {
	Name  string  `json:"name" yaml:"name"`   // catalogue name
	Count int     `json:"count" yaml:"count"` // number of fittings; 0 means 1
	K     float64 `json:"k" yaml:"k"`         // loss coefficient
	Leq   float64 `json:"leq" yaml:"leq"`     // equivalent length [ft]
}

// DuctRun holds a straight duct run
type DuctRun struct {
	Name     string         `json:"name" yaml:"name"`         // tag of run
	Cfm      float64        `json:"cfm" yaml:"cfm"`           // air flow [ft³/min]
	Shape    string         `json:"shape" yaml:"shape"`       // "round", "rect" or "oval"
	Mode     string         `json:"mode" yaml:"mode"`         // "size" or "check"
	Friction float64        `json:"friction" yaml:"friction"` // target friction rate [in. w.g./100 ft] (size)
	Velocity float64        `json:"velocity" yaml:"velocity"` // target velocity [ft/min] (size; used if friction is zero)
	Aspect   float64        `json:"aspect" yaml:"aspect"`     // aspect ratio of rect/oval (size)
	Diameter float64        `json:"diameter" yaml:"diameter"` // round diameter [in] (check)
	Width    float64        `json:"width" yaml:"width"`       // long side or major axis [in] (check)
	Height   float64        `json:"height" yaml:"height"`     // short side or minor axis [in] (check)
	Nominal  bool           `json:"nominal" yaml:"nominal"`   // round sizes up to standard sizes (size)
	Material string         `json:"material" yaml:"material"` // duct material
	Length   float64        `json:"length" yaml:"length"`     // run length [ft]
	Fittings []*FittingData `json:"fittings" yaml:"fittings"` // fittings
	LossMode string         `json:"lossmode" yaml:"lossmode"` // "k" or "leq"
}

// PipeRun holds a straight pipe run
type PipeRun struct {
	Name     string         `json:"name" yaml:"name"`         // tag of run
	Gpm      float64        `json:"gpm" yaml:"gpm"`           // flow [gal/min]
	Mode     string         `json:"mode" yaml:"mode"`         // "size", "check" or "manning"
	Method   string         `json:"method" yaml:"method"`     // "hw" (Hazen-Williams) or "dw" (Darcy-Weisbach)
	Friction float64        `json:"friction" yaml:"friction"` // target friction rate [psi/100 ft] (size)
	Size     string         `json:"size" yaml:"size"`         // nominal trade size (check)
	Diameter float64        `json:"diameter" yaml:"diameter"` // inside diameter [in] (check; replaces size)
	Material string         `json:"material" yaml:"material"` // pipe material
	Length   float64        `json:"length" yaml:"length"`     // developed length [ft]
	Fittings []*FittingData `json:"fittings" yaml:"fittings"` // fittings
	LossMode string         `json:"lossmode" yaml:"lossmode"` // "k" or "leq"
	Slope    float64        `json:"slope" yaml:"slope"`       // slope [ft/ft] (manning)
	Depth    float64        `json:"depth" yaml:"depth"`       // depth ratio y/D (manning); 0 means full
}

// Job holds all data of a sizing job
type Job struct {
	Design Design     `json:"design" yaml:"design"` // design conditions
	Ducts  []*DuctRun `json:"ducts" yaml:"ducts"`   // duct runs
	Pipes  []*PipeRun `json:"pipes" yaml:"pipes"`   // pipe runs

	// derived
	Key string `json:"-" yaml:"-"` // filename key
}

// SetDefault sets default values
func (o *Design) SetDefault() {
	o.Temp = air.StdTemp
	o.Friction = "colebrook"
	o.Fluid = "water"
	o.FluidTemp = 60
}

// SetDefault sets default values of fields left empty
func (o *DuctRun) SetDefault() {
	if o.Shape == "" {
		o.Shape = "round"
	}
	if o.Mode == "" {
		o.Mode = "size"
	}
	if o.Aspect == 0 {
		o.Aspect = 1
	}
	if o.Material == "" {
		o.Material = "galvanized"
	}
}

// SetDefault sets default values of fields left empty
func (o *PipeRun) SetDefault() {
	if o.Mode == "" {
		o.Mode = "size"
	}
	if o.Method == "" {
		o.Method = "hw"
	}
	if o.Material == "" {
		o.Material = "copper-l"
		if o.Mode == "manning" {
			o.Material = "cast-iron"
		}
	}
	if o.Depth == 0 {
		o.Depth = 1
	}
}

// ReadJob reads a job file; the format follows the extension (.json or .yaml/.yml)
func ReadJob(path string) (o *Job, err error) {
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, chk.Err("cannot read job file %q:\n%v", path, err)
	}
	format := strings.ToLower(filepath.Ext(path))
	o, err = ParseJob(b, format)
	if err != nil {
		return nil, chk.Err("cannot load job file %q:\n%v", path, err)
	}
	o.Key = io.FnKey(filepath.Base(path))
	if o.Design.DirOut == "" {
		o.Design.DirOut = "/tmp/ductolator/" + o.Key
	}
	return
}

// ParseJob decodes a job from JSON (format ".json") or YAML (anything else) and validates it
func ParseJob(b []byte, format string) (o *Job, err error) {
	o = new(Job)
	o.Design.SetDefault()
	if format == ".json" || format == "json" {
		err = json.Unmarshal(b, o)
	} else {
		err = yaml.Unmarshal(b, o)
	}
	if err != nil {
		return nil, err
	}
	for _, d := range o.Ducts {
		if d != nil {
			d.SetDefault()
		}
	}
	for _, p := range o.Pipes {
		if p != nil {
			p.SetDefault()
		}
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// Validate checks names of shapes, modes, methods and models
func (o *Job) Validate() (err error) {
	if _, err = friction.NewDuct(o.Design.Friction); err != nil {
		return
	}
	if _, err = fluid.New(o.Design.Fluid); err != nil {
		return
	}
	for i, d := range o.Ducts {
		if d == nil {
			return chk.Err("duct run # %d is empty", i)
		}
		if !oneOf(d.Shape, "round", "rect", "oval") {
			return chk.Err("duct run %q: shape %q is invalid; options are \"round\", \"rect\" and \"oval\"", d.Name, d.Shape)
		}
		if !oneOf(d.Mode, "size", "check") {
			return chk.Err("duct run %q: mode %q is invalid; options are \"size\" and \"check\"", d.Name, d.Mode)
		}
		if err = checkFittings(d.Name, d.LossMode, d.Fittings); err != nil {
			return
		}
	}
	for i, p := range o.Pipes {
		if p == nil {
			return chk.Err("pipe run # %d is empty", i)
		}
		if !oneOf(p.Mode, "size", "check", "manning") {
			return chk.Err("pipe run %q: mode %q is invalid; options are \"size\", \"check\" and \"manning\"", p.Name, p.Mode)
		}
		if !oneOf(p.Method, "hw", "dw") {
			return chk.Err("pipe run %q: method %q is invalid; options are \"hw\" and \"dw\"", p.Name, p.Method)
		}
		if err = checkFittings(p.Name, p.LossMode, p.Fittings); err != nil {
			return
		}
	}
	return
}

// AirModel returns the air model of the design conditions
func (o Design) AirModel() (mdl *air.Model, err error) {
	mdl = new(air.Model)
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "temp", V: o.Temp},
		&dbf.P{N: "alt", V: o.Alt},
	})
	return
}

// FluidModel returns the liquid model of the design conditions
func (o Design) FluidModel() (mdl *fluid.Model, err error) {
	mdl, err = fluid.New(o.Fluid)
	if err != nil {
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "temp", V: o.FluidTemp},
		&dbf.P{N: "glycol", V: o.Glycol},
	})
	return
}

// checkFittings checks the loss mode and the fittings of a run
func checkFittings(run, mode string, fittings []*FittingData) error {
	if _, err := loss.ParseMode(mode); err != nil {
		return chk.Err("run %q: %v", run, err)
	}
	for i, f := range fittings {
		if f == nil || (f.Name == "" && f.K == 0 && f.Leq == 0) {
			return chk.Err("run %q: fitting # %d is empty", run, i)
		}
	}
	return nil
}

// oneOf tells whether s is one of options
func oneOf(s string, options ...string) bool {
	for _, opt := range options {
		if s == opt {
			return true
		}
	}
	return false
}
