// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package air

import "math"

// Stream is an airflow entering a mixing box
type Stream struct {
	Cfm   float64 // volume flow [ft³/min]
	TempF float64 // dry-bulb temperature [°F]
}

// Mix returns the total flow and the mixed dry-bulb temperature of streams
//  The mixed temperature is the flow-weighted mean of the stream temperatures.
//  Streams with non-positive flow are ignored; returns (0, NaN) if no flow remains.
func Mix(streams ...Stream) (cfm, tempF float64) {
	var sum float64
	for _, s := range streams {
		if s.Cfm <= 0 {
			continue
		}
		cfm += s.Cfm
		sum += s.Cfm * s.TempF
	}
	if cfm <= 0 {
		return 0, math.NaN()
	}
	return cfm, sum / cfm
}

// OutdoorFraction returns the outdoor air fraction producing tMix from outdoor
// air at tOA and return air at tRA. Returns NaN if tOA == tRA.
func OutdoorFraction(tMix, tOA, tRA float64) float64 {
	if tOA == tRA {
		return math.NaN()
	}
	return (tMix - tRA) / (tOA - tRA)
}
