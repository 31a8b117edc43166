package sounding

import "math"

// interpolateAt interpolates an arbitrary level field at the target pressure,
// linearly in log pressure (quasi-linear in height, the meteorological
// convention). The bracket test is inclusive on both sides and accepts either
// ordering of the pair. Returns ok=false when no adjacent pair brackets the
// target — the caller treats that as "data unavailable here", not an error.
func interpolateAt(p Profile, targetPressure float64, field func(Level) float64) (float64, bool) {
	if len(p) < minInterpolationLevels || targetPressure <= 0 {
		return 0, false
	}
	for i := 0; i < len(p)-1; i++ {
		p1, p2 := p[i].Pressure, p[i+1].Pressure
		if (targetPressure-p1)*(targetPressure-p2) > 0 {
			continue
		}
		v1, v2 := field(p[i]), field(p[i+1])
		if p1 == p2 {
			return v1, true
		}
		frac := (math.Log(p1) - math.Log(targetPressure)) / (math.Log(p1) - math.Log(p2))
		return v1 + frac*(v2-v1), true
	}
	return 0, false
}

// TemperatureAt returns the environmental temperature (°C) at the given
// pressure, or ok=false outside the profile's pressure range.
func (p Profile) TemperatureAt(pressureHPa float64) (float64, bool) {
	return interpolateAt(p, pressureHPa, func(lv Level) float64 { return lv.Temperature })
}

// DewpointAt returns the environmental dewpoint (°C) at the given pressure,
// or ok=false outside the profile's pressure range.
func (p Profile) DewpointAt(pressureHPa float64) (float64, bool) {
	return interpolateAt(p, pressureHPa, func(lv Level) float64 { return lv.Dewpoint })
}

// HeightAt returns the height (m) at the given pressure. Height is
// interpolated linearly in pressure, not log pressure.
func (p Profile) HeightAt(pressureHPa float64) (float64, bool) {
	if len(p) < minInterpolationLevels {
		return 0, false
	}
	for i := 0; i < len(p)-1; i++ {
		p1, p2 := p[i].Pressure, p[i+1].Pressure
		if (pressureHPa-p1)*(pressureHPa-p2) > 0 {
			continue
		}
		if p1 == p2 {
			return p[i].Height, true
		}
		frac := (p1 - pressureHPa) / (p1 - p2)
		return p[i].Height + frac*(p[i+1].Height-p[i].Height), true
	}
	return 0, false
}

// PressureAt returns the pressure (hPa) at the given height, linear in
// pressure between the bracketing levels. Heights above the profile top clamp
// to the topmost level's pressure — a documented fallback, not a failure.
// Heights below the surface return ok=false.
func (p Profile) PressureAt(heightM float64) (float64, bool) {
	if len(p) < minInterpolationLevels {
		return 0, false
	}
	if heightM >= p.Top().Height {
		return p.Top().Pressure, true
	}
	for i := 0; i < len(p)-1; i++ {
		h1, h2 := p[i].Height, p[i+1].Height
		if (heightM-h1)*(heightM-h2) > 0 {
			continue
		}
		if h1 == h2 {
			return p[i].Pressure, true
		}
		frac := (heightM - h1) / (h2 - h1)
		return p[i].Pressure + frac*(p[i+1].Pressure-p[i].Pressure), true
	}
	return 0, false
}
