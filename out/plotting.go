// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Curve stores the data of one line (X vs Y)
type Curve struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style; Style.L is the legend entry
}

// Chart stores all data for one subplot
type Chart struct {
	Id     string   // unique identifier; used to name split figures
	Title  string   // title of subplot
	Xlbl   string   // x-axis label (formatted; e.g. "$Q\;[cfm]$")
	Ylbl   string   // y-axis label
	Xlog   bool     // logarithmic x-axis
	Ylog   bool     // logarithmic y-axis
	Curves []*Curve // data and styles to be plotted
}

// Add adds a curve
func (o *Chart) Add(x, y []float64, style plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	o.Curves = append(o.Curves, &Curve{X: x, Y: y, Style: style})
}

// Draw draws charts as subplots of one figure <dirout>/<fnkey>.png
//  split -- save each chart into <dirout>/<fnkey>_<id>.png instead
func Draw(dirout, fnkey string, split bool, charts ...*Chart) {
	nr, nc := utl.BestSquare(len(charts))
	plt.Reset(true, nil)
	for k, c := range charts {
		if !split {
			plt.Subplot(nr, nc, k+1)
		}
		if c.Title != "" {
			plt.Title(c.Title, nil)
		}
		for _, d := range c.Curves {
			style := d.Style
			plt.Plot(d.X, d.Y, &style)
		}
		if c.Xlog {
			plt.SetXlog()
		}
		if c.Ylog {
			plt.SetYlog()
		}
		plt.Gll(c.Xlbl, c.Ylbl, nil)
		if split {
			plt.Save(dirout, io.Sf("%s_%s", fnkey, c.Id))
			plt.Clf()
		}
	}
	if !split {
		plt.Save(dirout, fnkey)
	}
}

// texLabel returns a formatted axis label
func texLabel(key, unit string) string {
	l := "$"
	switch key {
	case "cfm":
		l += "Q"
	case "gpm":
		l += "Q"
	case "rate":
		l += "\\Delta p/100\\,ft"
	case "Re":
		l += "Re"
	case "f":
		l += "f"
	case "rho":
		l += "\\rho"
	case "T":
		l += "T"
	case "V":
		l += "V"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;[" + unit + "]"
	}
	l += "$"
	return l
}
