// Package sounding derives convective-forecasting diagnostics from a vertical
// atmospheric profile: CAPE/CIN, LCL/LFC/EL, bulk shear, storm-relative
// helicity, Bunkers storm motion, lapse rates, precipitable water, and the
// STP/SCP composite indices.
//
// # Input Conventions
//
// A Profile is an ordered list of observed levels, surface first, sorted by
// non-increasing pressure. The upstream collector normalizes units before
// publishing, so this package never parses text and assumes:
//
//	pressure       hPa      (> 0)
//	height         m        (arbitrary reference, typically AGL)
//	temperature    °C
//	dewpoint       °C       (≤ temperature)
//	wind direction degrees  (meteorological, wind *from*)
//	wind speed     knots    (≥ 0)
//
// At least 5 levels are required for a full analysis and at least 2 for any
// interpolation. Validation happens once at the profile boundary
// ([Profile.Validate]); the numeric routines below it assume physically sane
// inputs.
//
// # Parcel Variants
//
// Three parcels are lifted independently from the same immutable profile:
//
//	surface-based  the lowest observed level as-is
//	mixed-layer    mean temperature/dewpoint of the lowest 100 hPa
//	most-unstable  the level with the highest θe in the lowest 300 hPa
//
// Ties in the most-unstable search go to the first (lowest) level: the scan
// uses a strict > comparison, and downstream consumers depend on that
// tie-break.
//
// # Numerical Choices
//
// Thermodynamic formulas follow Bolton (1980). The moist adiabat is a
// fixed-step (200) explicit Euler integration of the pseudo-adiabatic lapse
// rate; the step count is fixed rather than adaptive so the same input always
// produces the same output on every platform. Field interpolation is linear
// in log pressure; height↔pressure inversion is linear in pressure. SRH uses
// the discrete cross-product sum over adjacent storm-relative wind vectors,
// which is sensitive to level spacing by construction.
//
// During buoyancy accumulation the first positive layer fixes the LFC;
// negative layers encountered after that point no longer add to CIN. The EL
// tracks the top of the last positive layer.
//
// # Output
//
// [Analyze] returns an immutable [AnalysisResult]. Scalar summary fields are
// rounded at assembly only; the parcel path and the LCL/LFC/EL marks are left
// at full precision because the downstream renderer positions shading and
// markers from them. Non-finite intermediates never cross the package
// boundary: scalar fields degrade to 0 and the optional LFC/EL marks stay
// absent.
package sounding
