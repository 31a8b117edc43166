package sounding

// Physical constants shared by every routine in the package. Declared once so
// the dry and moist branches of a lift can never disagree on a value.
const (
	dryGasConstant   = 287.04  // Rd, J/(kg·K)
	vaporGasConstant = 461.5   // Rv, J/(kg·K)
	specificHeat     = 1005.7  // Cp of dry air at constant pressure, J/(kg·K)
	latentHeat       = 2.501e6 // Lv of vaporization at 0°C, J/kg
	gravity          = 9.81    // m/s²
	epsilon          = 0.622   // Rd/Rv, dimensionless
	kelvinOffset     = 273.15
	poissonExponent  = dryGasConstant / specificHeat // Rd/Cp ≈ 0.2854
	knotsToMS        = 0.514444
)
