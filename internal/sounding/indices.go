package sounding

// Composite severe-weather indices. These are empirical SPC forecasting
// formulas — products of independently clamped terms with intentional
// discontinuities at the published breakpoints. Do not smooth them.

// significantTornadoParameter computes the fixed-layer STP from surface-based
// CAPE (J/kg), LCL height AGL (m), 0–1 km SRH (m²/s²), 0–6 km bulk shear
// (knots), and surface-based CIN (J/kg).
//
// Term breakpoints:
//
//	LCL:   1.0 below 1000 m, linear to 0 at 2000 m, 0 above
//	shear: 0 below 12.5 m/s, shear/20 up to a 1.5 cap at ≥30 m/s
//	CIN:   1.0 above −50 J/kg, 0.5 down to −150 J/kg, 0 below
func significantTornadoParameter(cape, lclHeight, srh01, shear06Kt, cin float64) float64 {
	capeTerm := cape / 1500

	var lclTerm float64
	switch {
	case lclHeight < 1000:
		lclTerm = 1
	case lclHeight <= 2000:
		lclTerm = (2000 - lclHeight) / 1000
	default:
		lclTerm = 0
	}

	srhTerm := srh01 / 150
	shearTerm := shearTerm(shear06Kt, 12.5)

	var cinTerm float64
	switch {
	case cin > -50:
		cinTerm = 1
	case cin >= -150:
		cinTerm = 0.5
	default:
		cinTerm = 0
	}

	stp := capeTerm * lclTerm * srhTerm * shearTerm * cinTerm
	if stp < 0 {
		return 0
	}
	return stp
}

// supercellCompositeParameter computes the SCP from most-unstable CAPE
// (J/kg), 0–3 km SRH (m²/s²), and 0–6 km bulk shear (knots). The shear term
// is zeroed below 10 m/s and capped at 1.5 at ≥30 m/s.
func supercellCompositeParameter(muCAPE, srh03, shear06Kt float64) float64 {
	scp := (muCAPE / 1000) * (srh03 / 50) * shearTerm(shear06Kt, 10)
	if scp < 0 {
		return 0
	}
	return scp
}

// shearTerm normalizes a 0–6 km bulk shear in knots: zero below the cutoff
// (m/s), shear/20 above it, capped at 1.5.
func shearTerm(shearKt, cutoffMS float64) float64 {
	ms := shearKt * knotsToMS
	if ms < cutoffMS {
		return 0
	}
	term := ms / 20
	if term > 1.5 {
		return 1.5
	}
	return term
}
