package sounding

import "time"

// ParcelPoint is a single point on a lifted parcel's ascent.
type ParcelPoint struct {
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
}

// ParcelPath is a parcel ascent ordered from the origin upward (decreasing
// pressure). It is produced once per lift and never mutated afterwards.
type ParcelPath []ParcelPoint

// LevelMark pins a named level (LCL, LFC, EL) to a pressure and a height.
// Marks are kept at full precision for downstream shading and markers.
type LevelMark struct {
	Pressure float64 `json:"pressure"`
	Height   float64 `json:"height"`
}

// EnergyResult holds the buoyant energy accounting for one parcel. CAPE and
// CIN are always computed from the same parcel path and profile. LFC and EL
// are nil when the parcel never becomes positively buoyant.
type EnergyResult struct {
	CAPE float64    `json:"cape"` // J/kg, ≥ 0
	CIN  float64    `json:"cin"`  // J/kg, ≤ 0
	LFC  *LevelMark `json:"lfc,omitempty"`
	EL   *LevelMark `json:"el,omitempty"`
}

// WindVector is a wind in u/v components, m/s.
type WindVector struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// AnalysisResult is the full derived record for one sounding. It is immutable
// once returned by Analyze; every field is new data, never a view into the
// input profile.
type AnalysisResult struct {
	SurfaceBased EnergyResult `json:"surface_based"`
	MixedLayer   EnergyResult `json:"mixed_layer"`
	MostUnstable EnergyResult `json:"most_unstable"`

	// LCL of the surface-based parcel. Height is above ground (surface
	// height already subtracted); pressure is unrounded.
	LCL LevelMark `json:"lcl"`

	Shear01 WindVector `json:"shear_0_1km"`
	Shear06 WindVector `json:"shear_0_6km"`

	SRH01 float64 `json:"srh_0_1km"` // m²/s²
	SRH03 float64 `json:"srh_0_3km"` // m²/s²

	StormRightMover WindVector `json:"storm_right_mover"`
	StormLeftMover  WindVector `json:"storm_left_mover"`

	LapseRate03 float64 `json:"lapse_rate_0_3km"` // °C/km
	LapseRate36 float64 `json:"lapse_rate_3_6km"` // °C/km

	PrecipitableWater float64 `json:"precipitable_water"` // inches

	STP float64 `json:"stp"`
	SCP float64 `json:"scp"`

	// Surface-based ascent, retained for rendering only.
	ParcelPath ParcelPath `json:"parcel_path"`

	GeneratedAt time.Time `json:"generated_at"`
}
