package sounding

import "gonum.org/v1/gonum/stat"

// Default selector depths, measured down from the surface pressure.
const (
	mixedLayerDepthHPa   = 100
	mostUnstableDepthHPa = 300
)

// ParcelAscent is the result of lifting one parcel: the path plus the LCL
// found along the way.
type ParcelAscent struct {
	Path           ParcelPath
	LCLPressure    float64
	LCLTemperature float64 // °C
}

// LiftParcel lifts a parcel starting at (tempC, dewpointC, originPressure)
// through the profile. The LCL is computed once; below it (pressure ≥ LCL
// pressure) the parcel follows the dry adiabat from the origin, above it the
// moist adiabat from the LCL. One path point is produced per profile level at
// or above the origin (pressure ≤ originPressure) — path resolution follows
// the input level spacing and is never resampled.
func LiftParcel(tempC, dewpointC, originPressure float64, profile Profile) ParcelAscent {
	lclP := lclPressure(tempC, dewpointC, originPressure)
	lclT := lclTemperatureK(tempC, dewpointC) - kelvinOffset

	path := make(ParcelPath, 0, len(profile))
	for _, lv := range profile {
		if lv.Pressure > originPressure {
			continue
		}
		var t float64
		if lv.Pressure >= lclP {
			t = DryAdiabatTemp(tempC, originPressure, lv.Pressure)
		} else {
			t = MoistAdiabatTemp(lclT, lclP, lv.Pressure)
		}
		path = append(path, ParcelPoint{Pressure: lv.Pressure, Temperature: t})
	}

	return ParcelAscent{Path: path, LCLPressure: lclP, LCLTemperature: lclT}
}

// mixedLayerParcel returns the arithmetic mean temperature and dewpoint of
// all levels within depthHPa of the surface pressure. An empty window falls
// back to the surface level's own values.
func mixedLayerParcel(profile Profile, depthHPa float64) (tempC, dewpointC float64) {
	sfc := profile.Surface()
	floor := sfc.Pressure - depthHPa

	var temps, dews []float64
	for _, lv := range profile {
		if lv.Pressure >= floor {
			temps = append(temps, lv.Temperature)
			dews = append(dews, lv.Dewpoint)
		}
	}
	if len(temps) == 0 {
		return sfc.Temperature, sfc.Dewpoint
	}
	return stat.Mean(temps, nil), stat.Mean(dews, nil)
}

// mostUnstableLevel returns the index of the level with the highest θe within
// the bottom depthHPa. The strict > comparison makes ties resolve to the
// first (lowest) level encountered; keep it strict.
func mostUnstableLevel(profile Profile, depthHPa float64) int {
	sfc := profile.Surface()
	floor := sfc.Pressure - depthHPa

	best := 0
	bestThetaE := equivalentPotentialTemperatureK(sfc.Temperature, sfc.Dewpoint, sfc.Pressure)
	for i, lv := range profile {
		if lv.Pressure < floor {
			continue
		}
		thetaE := equivalentPotentialTemperatureK(lv.Temperature, lv.Dewpoint, lv.Pressure)
		if thetaE > bestThetaE {
			best = i
			bestThetaE = thetaE
		}
	}
	return best
}
