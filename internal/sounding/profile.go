package sounding

import (
	"errors"
	"fmt"
)

// Minimum level counts. Five levels are needed before an analysis is
// meaningful; two are enough to bracket an interpolation target.
const (
	minAnalysisLevels      = 5
	minInterpolationLevels = 2
)

var (
	// ErrInsufficientData means the profile has too few levels for the
	// requested computation. Fatal to the whole analysis.
	ErrInsufficientData = errors.New("insufficient sounding data")

	// ErrInvalidInput means a level is non-physical (negative pressure,
	// dewpoint above temperature, pressure at or below the saturation vapor
	// pressure, negative wind speed) or the levels are out of order.
	ErrInvalidInput = errors.New("invalid sounding input")
)

// Level is one observed altitude in a sounding. Units follow the package
// conventions (hPa, m, °C, degrees, knots); see the package documentation.
type Level struct {
	Pressure      float64 `json:"pressure"`
	Height        float64 `json:"height"`
	Temperature   float64 `json:"temperature"`
	Dewpoint      float64 `json:"dewpoint"`
	WindDirection float64 `json:"wind_direction"`
	WindSpeed     float64 `json:"wind_speed"`
}

// Profile is an ordered sequence of levels, surface first, pressure
// non-increasing. All analysis functions borrow it read-only.
type Profile []Level

// Validate checks the profile against the input invariants. It returns
// ErrInsufficientData when fewer than 5 levels are present and ErrInvalidInput
// (wrapped with the offending level index) for non-physical values or broken
// pressure ordering. Numeric routines downstream assume a validated profile.
func (p Profile) Validate() error {
	if len(p) < minAnalysisLevels {
		return fmt.Errorf("%w: %d levels, need at least %d", ErrInsufficientData, len(p), minAnalysisLevels)
	}
	for i, lv := range p {
		switch {
		case lv.Pressure <= 0:
			return fmt.Errorf("%w: level %d: pressure %.1f hPa must be positive", ErrInvalidInput, i, lv.Pressure)
		case lv.Dewpoint > lv.Temperature:
			return fmt.Errorf("%w: level %d: dewpoint %.1f°C exceeds temperature %.1f°C", ErrInvalidInput, i, lv.Dewpoint, lv.Temperature)
		case lv.Pressure <= saturationVaporPressure(lv.Temperature):
			// Latent defect in older implementations: a pressure at or below
			// the saturation vapor pressure makes the mixing ratio blow up.
			// Rejected here so the formulas never see it.
			return fmt.Errorf("%w: level %d: pressure %.1f hPa at or below saturation vapor pressure", ErrInvalidInput, i, lv.Pressure)
		case lv.WindSpeed < 0:
			return fmt.Errorf("%w: level %d: wind speed %.1f kt is negative", ErrInvalidInput, i, lv.WindSpeed)
		}
		if i > 0 && lv.Pressure > p[i-1].Pressure {
			return fmt.Errorf("%w: level %d: pressure %.1f hPa increases over previous %.1f hPa", ErrInvalidInput, i, lv.Pressure, p[i-1].Pressure)
		}
	}
	return nil
}

// Surface returns the lowest observed level.
func (p Profile) Surface() Level {
	return p[0]
}

// Top returns the highest observed level.
func (p Profile) Top() Level {
	return p[len(p)-1]
}
