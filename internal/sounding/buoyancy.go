package sounding

import "math"

// integrateBuoyancy walks a parcel path against the environmental profile and
// accumulates layer-by-layer buoyant energy.
//
// For each adjacent pair of path points the environment temperature and
// height are interpolated at both pressures; a pair missing either
// interpolation is skipped so partial profile coverage degrades gracefully
// instead of aborting. The layer increment is
//
//	ΔE = g · ((b1 + b2) / 2) · Δz,  b = (Tparcel − Tenv) / Tenv   (Kelvin)
//
// Positive increments add to CAPE and advance the EL to the layer top. The
// first positive increment fixes the LFC at the layer bottom; negative
// increments add to CIN only while the LFC has not yet been found — CIN is
// the inhibition below free convection, nothing more.
func integrateBuoyancy(profile Profile, path ParcelPath) EnergyResult {
	var res EnergyResult

	for i := 0; i < len(path)-1; i++ {
		lower, upper := path[i], path[i+1]

		envT1, ok1 := profile.TemperatureAt(lower.Pressure)
		envT2, ok2 := profile.TemperatureAt(upper.Pressure)
		h1, okH1 := profile.HeightAt(lower.Pressure)
		h2, okH2 := profile.HeightAt(upper.Pressure)
		if !ok1 || !ok2 || !okH1 || !okH2 {
			continue
		}

		b1 := (lower.Temperature - envT1) / (envT1 + kelvinOffset)
		b2 := (upper.Temperature - envT2) / (envT2 + kelvinOffset)
		energy := gravity * (b1 + b2) / 2 * (h2 - h1)

		if !isFinite(energy) {
			continue
		}

		if energy > 0 {
			res.CAPE += energy
			res.EL = &LevelMark{Pressure: upper.Pressure, Height: h2}
			if res.LFC == nil {
				res.LFC = &LevelMark{Pressure: lower.Pressure, Height: h1}
			}
		} else if res.LFC == nil {
			res.CIN += energy
		}
	}

	// CAPE is never negative, CIN never positive.
	res.CAPE = math.Max(res.CAPE, 0)
	res.CIN = math.Min(res.CIN, 0)
	return res
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
