package sounding

import "math"

// Closed-form thermodynamic primitives, Bolton (1980). All take °C and hPa
// and assume inputs already passed profile validation.

// saturationVaporPressure returns the saturation vapor pressure in hPa.
// Bolton (1980) eq. 10. Exact at 0°C: 6.112 hPa.
func saturationVaporPressure(tempC float64) float64 {
	return 6.112 * math.Exp(17.67*tempC/(tempC+243.5))
}

// mixingRatio returns the saturation mixing ratio in g/kg at the given
// temperature and pressure. Precondition: pressure exceeds the saturation
// vapor pressure, guaranteed for validated tropospheric profiles.
func mixingRatio(tempC, pressureHPa float64) float64 {
	e := saturationVaporPressure(tempC)
	return 1000 * epsilon * e / (pressureHPa - e)
}

// virtualTemperatureK returns the density-equivalent temperature in Kelvin.
// The moisture term uses the mixing ratio of the *dewpoint* with the dry-bulb
// temperature, the standard asymmetric approximation for unsaturated air.
func virtualTemperatureK(tempC, dewpointC, pressureHPa float64) float64 {
	w := mixingRatio(dewpointC, pressureHPa) / 1000 // kg/kg
	return (tempC + kelvinOffset) * (1 + w/epsilon) / (1 + w)
}

// lclTemperatureK returns the lifted condensation level temperature in
// Kelvin. Bolton (1980) eq. 15, accurate to ~0.1 K.
func lclTemperatureK(tempC, dewpointC float64) float64 {
	tK := tempC + kelvinOffset
	tdK := dewpointC + kelvinOffset
	return 1/(1/(tdK-56)+math.Log(tK/tdK)/800) + 56
}

// lclPressure returns the LCL pressure in hPa by following the dry adiabat
// from the origin down to the LCL temperature.
func lclPressure(tempC, dewpointC, pressureHPa float64) float64 {
	tK := tempC + kelvinOffset
	tlclK := lclTemperatureK(tempC, dewpointC)
	return pressureHPa * math.Pow(tlclK/tK, 1/poissonExponent)
}

// equivalentPotentialTemperatureK returns the simplified Bolton θe in Kelvin
// (Bolton 1980 eq. 43 with the LCL temperature evaluated once).
func equivalentPotentialTemperatureK(tempC, dewpointC, pressureHPa float64) float64 {
	tK := tempC + kelvinOffset
	tlclK := lclTemperatureK(tempC, dewpointC)
	w := mixingRatio(dewpointC, pressureHPa) // g/kg
	theta := tK * math.Pow(1000/pressureHPa, poissonExponent)
	return theta * math.Exp((3.376/tlclK-0.00254)*w*(1+0.81e-3*w))
}
