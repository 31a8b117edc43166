package sounding

import "math"

// bunkersDeviation is the fixed magnitude (m/s) of the deviation from the
// 0–6 km mean wind used by the Bunkers storm motion estimate.
const bunkersDeviation = 7.5

// WindComponents converts a meteorological direction/speed observation into
// u/v components in m/s. Direction is where the wind blows *from*, so the
// vector points the opposite way: u = −spd·sin(dir), v = −spd·cos(dir).
func WindComponents(directionDeg, speedKt float64) WindVector {
	spd := speedKt * knotsToMS
	rad := directionDeg * math.Pi / 180
	return WindVector{
		U: -spd * math.Sin(rad),
		V: -spd * math.Cos(rad),
	}
}

// layerMeanWind returns the pressure-weighted mean wind over all levels whose
// pressure lies in the closed interval [pTop, pBottom]. No qualifying levels
// yields the zero vector.
func layerMeanWind(profile Profile, pBottom, pTop float64) WindVector {
	var sumU, sumV, sumW float64
	for _, lv := range profile {
		if lv.Pressure > pBottom || lv.Pressure < pTop {
			continue
		}
		w := WindComponents(lv.WindDirection, lv.WindSpeed)
		sumU += w.U * lv.Pressure
		sumV += w.V * lv.Pressure
		sumW += lv.Pressure
	}
	if sumW == 0 {
		return WindVector{}
	}
	return WindVector{U: sumU / sumW, V: sumV / sumW}
}

// bulkShear returns the vector wind difference between two heights. The
// bounds are converted to pressures and the direction/speed fields are
// interpolated there. Either bound outside profile coverage yields the zero
// vector rather than an error.
func bulkShear(profile Profile, hBottom, hTop float64) WindVector {
	windAtHeight := func(h float64) (WindVector, bool) {
		p, ok := profile.PressureAt(h)
		if !ok {
			return WindVector{}, false
		}
		dir, okD := interpolateAt(profile, p, func(lv Level) float64 { return lv.WindDirection })
		spd, okS := interpolateAt(profile, p, func(lv Level) float64 { return lv.WindSpeed })
		if !okD || !okS {
			return WindVector{}, false
		}
		return WindComponents(dir, spd), true
	}

	bottom, okB := windAtHeight(hBottom)
	top, okT := windAtHeight(hTop)
	if !okB || !okT {
		return WindVector{}
	}
	return WindVector{U: top.U - bottom.U, V: top.V - bottom.V}
}

// bunkersStormMotion estimates right- and left-moving supercell motion: the
// 0–6 km AGL mean wind plus/minus a 7.5 m/s deviation rotated 90° from the
// 0–6 km shear vector. Zero shear degenerates both movers to the mean wind.
func bunkersStormMotion(profile Profile) (right, left WindVector) {
	sfc := profile.Surface()
	pTop, ok := profile.PressureAt(sfc.Height + 6000)
	if !ok {
		pTop = profile.Top().Pressure
	}
	mean := layerMeanWind(profile, sfc.Pressure, pTop)

	shear := bulkShear(profile, sfc.Height, sfc.Height+6000)
	mag := math.Hypot(shear.U, shear.V)
	if mag == 0 {
		return mean, mean
	}

	// Unit vector 90° clockwise from the shear vector.
	devU := bunkersDeviation * shear.V / mag
	devV := bunkersDeviation * -shear.U / mag

	right = WindVector{U: mean.U + devU, V: mean.V + devV}
	left = WindVector{U: mean.U - devU, V: mean.V - devV}
	return right, left
}

// stormRelativeHelicity sums the discrete SRH line integral over all levels
// within [hBottom, hTop]: Σ (u₂·v₁ − u₁·v₂) of consecutive storm-relative
// wind pairs. The discretization follows the level spacing exactly; do not
// resample.
func stormRelativeHelicity(profile Profile, hBottom, hTop, stormU, stormV float64) float64 {
	var winds []WindVector
	for _, lv := range profile {
		if lv.Height < hBottom || lv.Height > hTop {
			continue
		}
		w := WindComponents(lv.WindDirection, lv.WindSpeed)
		winds = append(winds, WindVector{U: w.U - stormU, V: w.V - stormV})
	}

	var srh float64
	for i := 0; i < len(winds)-1; i++ {
		srh += winds[i+1].U*winds[i].V - winds[i].U*winds[i+1].V
	}
	return srh
}
