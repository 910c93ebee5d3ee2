// Copyright 2026 The Ductolator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// Default returns a new table with the built-in catalogue
//  References:
//   [1] ASHRAE (2021) Fundamentals Handbook, Ch. 21 Duct Design
//   [2] Crane Co. (2009) Flow of Fluids Through Valves, Fittings and Pipe. TP-410
func Default() *Table {
	o := NewTable()

	// ducts [1]
	o.AddDuct(
		Duct{Name: "galvanized", Roughness: 0.0003, Extra: "galvanized steel, beaded slip joints"},
		Duct{Name: "aluminum", Roughness: 0.00015, Extra: "aluminum, smooth"},
		Duct{Name: "stainless", Roughness: 0.00015, Extra: "stainless steel"},
		Duct{Name: "pvc", Roughness: 0.00003, Extra: "PVC plastic duct"},
		Duct{Name: "ductboard", Roughness: 0.003, Extra: "fibrous glass duct board"},
		Duct{Name: "flex", Roughness: 0.003, Extra: "flexible duct, fully extended"},
	)

	// pipes
	o.AddPipe(
		Pipe{Name: "copper-l", C: 140, Roughness: 0.000005, Manning: 0.011, Extra: "copper tube type L", Sizes: []Size{
			{"1/2", 0.545}, {"3/4", 0.785}, {"1", 1.025}, {"1-1/4", 1.265}, {"1-1/2", 1.505},
			{"2", 1.985}, {"2-1/2", 2.465}, {"3", 2.945}, {"4", 3.905}, {"6", 5.845},
		}},
		Pipe{Name: "steel-40", C: 120, Roughness: 0.00015, Manning: 0.012, Extra: "steel schedule 40", Sizes: []Size{
			{"1/2", 0.622}, {"3/4", 0.824}, {"1", 1.049}, {"1-1/4", 1.380}, {"1-1/2", 1.610},
			{"2", 2.067}, {"2-1/2", 2.469}, {"3", 3.068}, {"4", 4.026}, {"6", 6.065},
			{"8", 7.981}, {"10", 10.020}, {"12", 11.938},
		}},
		Pipe{Name: "pvc-40", C: 150, Roughness: 0.000005, Manning: 0.009, Extra: "PVC schedule 40", Sizes: []Size{
			{"1/2", 0.602}, {"3/4", 0.804}, {"1", 1.029}, {"1-1/4", 1.360}, {"1-1/2", 1.590},
			{"2", 2.047}, {"3", 3.042}, {"4", 3.998}, {"6", 6.031}, {"8", 7.942},
		}},
		Pipe{Name: "cast-iron", C: 100, Roughness: 0.00085, Manning: 0.013, Extra: "cast iron soil pipe, no-hub", Sizes: []Size{
			{"2", 1.96}, {"3", 2.96}, {"4", 3.94}, {"5", 4.94}, {"6", 5.94},
			{"8", 7.94}, {"10", 9.94}, {"12", 11.94}, {"15", 14.94},
		}},
		Pipe{Name: "pex", C: 150, Roughness: 0.000023, Manning: 0.009, Extra: "PEX tubing, SDR 9", Sizes: []Size{
			{"1/2", 0.475}, {"3/4", 0.671}, {"1", 0.862}, {"1-1/4", 1.054}, {"1-1/2", 1.244}, {"2", 1.629},
		}},
	)

	// fittings [1,2]
	o.AddFitting(
		Fitting{Name: "elbow-90", K: 0.75, LD: 30, Extra: "standard 90° elbow"},
		Fitting{Name: "elbow-45", K: 0.35, LD: 16, Extra: "standard 45° elbow"},
		Fitting{Name: "elbow-90-smooth", K: 0.22, LD: 12, Extra: "smooth radius duct elbow, R/D = 1.5"},
		Fitting{Name: "elbow-90-mitered", K: 1.20, LD: 60, Extra: "mitered duct elbow without vanes"},
		Fitting{Name: "tee-run", K: 0.40, LD: 20, Extra: "tee, flow through run"},
		Fitting{Name: "tee-branch", K: 1.00, LD: 60, Extra: "tee, flow through branch"},
		Fitting{Name: "gate-valve", K: 0.15, LD: 8, Extra: "gate valve, fully open"},
		Fitting{Name: "ball-valve", K: 0.05, LD: 3, Extra: "ball valve, full port"},
		Fitting{Name: "globe-valve", K: 6.40, LD: 340, Extra: "globe valve, fully open"},
		Fitting{Name: "check-valve", K: 2.00, LD: 100, Extra: "swing check valve"},
		Fitting{Name: "butterfly-valve", K: 0.86, LD: 45, Extra: "butterfly valve, fully open"},
		Fitting{Name: "entrance", K: 0.50, LD: 25, Extra: "sharp-edged entrance"},
		Fitting{Name: "exit", K: 1.00, LD: 50, Extra: "exit to plenum"},
	)
	return o
}
