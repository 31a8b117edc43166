package sounding

import "math"

// moistAdiabatSteps is the fixed Euler step count for a moist-adiabatic
// displacement. Fixed rather than adaptive so identical inputs produce
// identical output on every platform.
const moistAdiabatSteps = 200

// DryAdiabatTemp lifts (or lowers) a parcel dry-adiabatically from t0C at
// pressure p0 to pressure p1 and returns the resulting temperature in °C.
// Closed form via the Poisson equation, reversible to floating-point
// precision.
func DryAdiabatTemp(t0C, p0, p1 float64) float64 {
	theta := (t0C + kelvinOffset) * math.Pow(1000/p0, poissonExponent)
	return theta*math.Pow(p1/1000, poissonExponent) - kelvinOffset
}

// MoistAdiabatTemp moves a saturated parcel from t0C at pressure p0 to
// pressure p1 along the pseudo-adiabat and returns the temperature in °C.
// Explicit Euler integration of dT/dp = γm/p with
//
//	γm = (Rd·T + Lv·w) / (Cp + Lv²·w·ε/(Rd·T²))
//
// where w is the saturation mixing ratio (kg/kg) at the current point.
// Direction-agnostic: p1 may be above or below p0.
func MoistAdiabatTemp(t0C, p0, p1 float64) float64 {
	tK := t0C + kelvinOffset
	p := p0
	dp := (p1 - p0) / moistAdiabatSteps
	for i := 0; i < moistAdiabatSteps; i++ {
		w := mixingRatio(tK-kelvinOffset, p) / 1000
		gamma := (dryGasConstant*tK + latentHeat*w) /
			(specificHeat + latentHeat*latentHeat*w*epsilon/(dryGasConstant*tK*tK))
		tK += gamma / p * dp
		p += dp
	}
	return tK - kelvinOffset
}
