package sounding

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// AGL depths (m) for the kinematic and lapse-rate layers. Profile heights
// carry an arbitrary reference, so every bound is surface height + offset.
const (
	shallowLayerTop = 1000
	midLayerTop     = 3000
	deepLayerTop    = 6000
)

// Analyze derives the full diagnostic record for one sounding. It returns
// ErrInsufficientData or ErrInvalidInput from validation; after that the
// computation always succeeds (out-of-coverage quantities degrade to absent
// marks or zero values, never abort).
//
// The three parcel variants are independent given the immutable profile and
// run concurrently. Parallelism stays at the parcel level — the moist-adiabat
// stepper and the buoyancy accumulation inside each variant are sequential
// recurrences and must stay so for deterministic summation order.
func Analyze(profile Profile) (*AnalysisResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	sfc := profile.Surface()

	var (
		sbAscent ParcelAscent
		sbEnergy EnergyResult
		mlEnergy EnergyResult
		muEnergy EnergyResult
	)

	var g errgroup.Group
	g.Go(func() error {
		sbAscent = LiftParcel(sfc.Temperature, sfc.Dewpoint, sfc.Pressure, profile)
		sbEnergy = integrateBuoyancy(profile, sbAscent.Path)
		return nil
	})
	g.Go(func() error {
		mlTemp, mlDew := mixedLayerParcel(profile, mixedLayerDepthHPa)
		ascent := LiftParcel(mlTemp, mlDew, sfc.Pressure, profile)
		mlEnergy = integrateBuoyancy(profile, ascent.Path)
		return nil
	})
	g.Go(func() error {
		mu := profile[mostUnstableLevel(profile, mostUnstableDepthHPa)]
		ascent := LiftParcel(mu.Temperature, mu.Dewpoint, mu.Pressure, profile)
		muEnergy = integrateBuoyancy(profile, ascent.Path)
		return nil
	})
	g.Wait() //nolint:errcheck // parcel pipelines cannot fail after validation

	lclHeight, ok := profile.HeightAt(sbAscent.LCLPressure)
	if !ok {
		lclHeight = sfc.Height
	}
	lclAGL := lclHeight - sfc.Height

	shear01 := bulkShear(profile, sfc.Height, sfc.Height+shallowLayerTop)
	shear06 := bulkShear(profile, sfc.Height, sfc.Height+deepLayerTop)
	right, left := bunkersStormMotion(profile)

	srh01 := stormRelativeHelicity(profile, sfc.Height, sfc.Height+shallowLayerTop, right.U, right.V)
	srh03 := stormRelativeHelicity(profile, sfc.Height, sfc.Height+midLayerTop, right.U, right.V)

	lapse03, _ := lapseRate(profile, sfc.Height, sfc.Height+midLayerTop)
	lapse36, _ := lapseRate(profile, sfc.Height+midLayerTop, sfc.Height+deepLayerTop)
	pw := precipitableWater(profile)

	shear06Kt := math.Hypot(shear06.U, shear06.V) / knotsToMS
	stp := significantTornadoParameter(sbEnergy.CAPE, lclAGL, srh01, shear06Kt, sbEnergy.CIN)
	scp := supercellCompositeParameter(muEnergy.CAPE, srh03, shear06Kt)

	// Summary scalars are rounded here and only here; the parcel path and
	// the LCL/LFC/EL marks stay exact for downstream shading.
	return &AnalysisResult{
		SurfaceBased: roundEnergy(sbEnergy),
		MixedLayer:   roundEnergy(mlEnergy),
		MostUnstable: roundEnergy(muEnergy),

		LCL: LevelMark{Pressure: sbAscent.LCLPressure, Height: lclAGL},

		Shear01: roundVector(shear01),
		Shear06: roundVector(shear06),

		SRH01: roundTo(srh01, 0),
		SRH03: roundTo(srh03, 0),

		StormRightMover: roundVector(right),
		StormLeftMover:  roundVector(left),

		LapseRate03: roundTo(lapse03, 2),
		LapseRate36: roundTo(lapse36, 2),

		PrecipitableWater: roundTo(pw, 2),

		STP: roundTo(stp, 2),
		SCP: roundTo(scp, 2),

		ParcelPath: sbAscent.Path,

		GeneratedAt: clock.Now().UTC(),
	}, nil
}

// roundEnergy rounds CAPE and CIN to whole J/kg; the LFC/EL marks are left
// untouched.
func roundEnergy(e EnergyResult) EnergyResult {
	e.CAPE = roundTo(e.CAPE, 0)
	e.CIN = roundTo(e.CIN, 0)
	return e
}

func roundVector(v WindVector) WindVector {
	return WindVector{U: roundTo(v.U, 2), V: roundTo(v.V, 2)}
}

// roundTo rounds to the given number of decimal places, mapping any
// non-finite value to 0 so NaN/Inf never cross the package boundary.
func roundTo(v float64, places int) float64 {
	if !isFinite(v) {
		return 0
	}
	f := math.Pow(10, float64(places))
	return math.Round(v*f) / f
}
