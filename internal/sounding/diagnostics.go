package sounding

import "gonum.org/v1/gonum/integrate"

const mmPerInch = 25.4

// lapseRate returns the temperature lapse rate in °C/km between two heights.
// Positive means cooling with height, the physically normal case. Either
// bound outside profile coverage yields ok=false.
func lapseRate(profile Profile, hBottom, hTop float64) (float64, bool) {
	tempAtHeight := func(h float64) (float64, bool) {
		p, ok := profile.PressureAt(h)
		if !ok {
			return 0, false
		}
		return profile.TemperatureAt(p)
	}

	tBottom, okB := tempAtHeight(hBottom)
	tTop, okT := tempAtHeight(hTop)
	if !okB || !okT || hTop == hBottom {
		return 0, false
	}
	return -(tTop - tBottom) / ((hTop - hBottom) / 1000), true
}

// precipitableWater integrates the dewpoint mixing ratio over pressure across
// the whole profile (trapezoidal rule) and returns the column water in
// inches. ∫q dp / g gives kg/m², which is mm of water.
func precipitableWater(profile Profile) float64 {
	if len(profile) < minInterpolationLevels {
		return 0
	}

	// integrate.Trapezoidal wants strictly increasing abscissas, so walk the
	// profile top-down (ascending pressure). Duplicate pressures would break
	// the monotonicity requirement; collapse them.
	var pressures, ratios []float64
	for i := len(profile) - 1; i >= 0; i-- {
		lv := profile[i]
		if len(pressures) > 0 && lv.Pressure <= pressures[len(pressures)-1] {
			continue
		}
		pressures = append(pressures, lv.Pressure)
		ratios = append(ratios, mixingRatio(lv.Dewpoint, lv.Pressure)/1000) // kg/kg
	}
	if len(pressures) < minInterpolationLevels {
		return 0
	}

	integral := integrate.Trapezoidal(pressures, ratios) // (kg/kg)·hPa
	mm := integral * 100 / gravity                       // hPa→Pa, then /g = kg/m² = mm
	return mm / mmPerInch
}
