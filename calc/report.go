// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/ductolator/ductolator/inp"
	"github.com/ductolator/ductolator/loss"
	"github.com/ductolator/ductolator/mdl/air"
	"github.com/ductolator/ductolator/mdl/fluid"
	"github.com/ductolator/ductolator/root"
)

// DuctResult holds the results of a duct run
//  A run that cannot be computed keeps zero outputs, an Unresolved status and a Note.
type DuctResult struct {
	Name     string         `json:"name"`
	Shape    string         `json:"shape"`
	Mode     string         `json:"mode"`
	Section  string         `json:"section"`  // e.g. "24 x 12 in rect"
	Width    float64        `json:"width"`    // diameter, long side or major axis [in]
	Height   float64        `json:"height"`   // short side or minor axis [in]; zero for round
	De       float64        `json:"de"`       // equal-friction diameter [in]
	Cfm      float64        `json:"cfm"`      // [ft³/min]
	Velocity float64        `json:"velocity"` // [ft/min]
	VP       float64        `json:"vp"`       // velocity pressure [in. w.g.]
	Re       float64        `json:"re"`       // Reynolds number
	F        float64        `json:"f"`        // Darcy friction factor
	Rate     float64        `json:"rate"`     // [in. w.g./100 ft]
	Loss     loss.Breakdown `json:"loss"`     // [in. w.g.]
	Status   root.Status    `json:"status"`   // of the sizing solve
	Note     string         `json:"note,omitempty"`
}

// PipeResult holds the results of a pipe run
type PipeResult struct {
	Name     string         `json:"name"`
	Material string         `json:"material"`
	Mode     string         `json:"mode"`
	Method   string         `json:"method"`
	Nominal  string         `json:"nominal"`         // trade size, if any
	Diameter float64        `json:"diameter"`        // inside diameter [in]
	Gpm      float64        `json:"gpm"`             // [gal/min]
	Velocity float64        `json:"velocity"`        // [ft/s]
	VP       float64        `json:"vp"`              // velocity pressure [psi]
	Re       float64        `json:"re"`              // Reynolds number
	FtPer100 float64        `json:"ftper100"`        // [ft/100 ft]
	Rate     float64        `json:"rate"`            // [psi/100 ft]
	Depth    float64        `json:"depth,omitempty"` // depth ratio y/D in the selected size (manning)
	Capacity float64        `json:"capacity"`        // full-flow capacity [gal/min] (manning)
	Loss     loss.Breakdown `json:"loss"`            // [psi]
	Status   root.Status    `json:"status"`
	Note     string         `json:"note,omitempty"`
}

// Report holds the results of a job
type Report struct {
	Key    string        `json:"key"`
	Design inp.Design    `json:"design"`
	Air    air.State     `json:"air"`
	Fluid  fluid.State   `json:"fluid"`
	Ducts  []*DuctResult `json:"ducts"`
	Pipes  []*PipeResult `json:"pipes"`
}

// Notes returns the number of runs carrying an advisory note
func (o *Report) Notes() (n int) {
	for _, d := range o.Ducts {
		if d.Note != "" {
			n++
		}
	}
	for _, p := range o.Pipes {
		if p.Note != "" {
			n++
		}
	}
	return
}

// Save writes the report to <dirout>/<key>.json
func (o *Report) Save(dirout string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode report %q:\n%v", o.Key, err)
	}
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create directory for output results (%s):\n%v", dirout, err)
	}
	fn := filepath.Join(dirout, o.Key+".json")
	if err = os.WriteFile(fn, b, 0644); err != nil {
		return chk.Err("cannot write report file %q:\n%v", fn, err)
	}
	return
}

// ReadReport reads a report saved by Save
func ReadReport(dirout, key string) (o *Report, err error) {
	b, err := os.ReadFile(filepath.Join(dirout, key+".json"))
	if err != nil {
		return nil, chk.Err("cannot read report %q:\n%v", key, err)
	}
	o = new(Report)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot decode report %q:\n%v", key, err)
	}
	return
}
