package sounding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignificantTornadoParameter(t *testing.T) {
	// 40 kt of shear is 20.58 m/s, so the shear term is 1.029.
	base := significantTornadoParameter(1500, 500, 150, 40, -25)
	assert.InDelta(t, 1.029, base, 0.001)

	tests := []struct {
		name                           string
		cape, lcl, srh01, shearKt, cin float64
		want                           float64
		delta                          float64
	}{
		{"lcl midpoint halves", 1500, 1500, 150, 40, -25, base / 2, 0.001},
		{"lcl above 2000 zeroes", 1500, 2500, 150, 40, -25, 0, 0},
		{"shear below cutoff zeroes", 1500, 500, 150, 20, -25, 0, 0},
		{"shear capped at 1.5", 1500, 500, 150, 70, -25, 1.5, 0.001},
		{"moderate cin halves", 1500, 500, 150, 40, -100, base / 2, 0.001},
		{"cin breakpoint at -50", 1500, 500, 150, 40, -50, base / 2, 0.001},
		{"strong cin zeroes", 1500, 500, 150, 40, -200, 0, 0},
		{"negative srh floors at zero", 1500, 500, -150, 40, -25, 0, 0},
		{"no cape no stp", 0, 500, 150, 40, -25, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := significantTornadoParameter(tt.cape, tt.lcl, tt.srh01, tt.shearKt, tt.cin)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.delta)
			}
		})
	}
}

func TestSupercellCompositeParameter(t *testing.T) {
	// 50 kt is 25.72 m/s: shear term 1.286. (2000/1000)·(100/50)·1.286.
	assert.InDelta(t, 5.14, supercellCompositeParameter(2000, 100, 50), 0.01)

	// Below the 10 m/s cutoff the whole product vanishes.
	assert.Equal(t, 0.0, supercellCompositeParameter(2000, 100, 15))

	// Anticyclonic SRH floors at zero rather than going negative.
	assert.Equal(t, 0.0, supercellCompositeParameter(2000, -100, 50))

	// Shear term cap.
	assert.InDelta(t, 1.5, supercellCompositeParameter(1000, 50, 80), 0.001)
}

func TestShearTerm(t *testing.T) {
	// Just below and at the cutoff, in knots.
	cutoffKt := 12.5 / knotsToMS
	assert.Equal(t, 0.0, shearTerm(cutoffKt-0.1, 12.5))
	assert.InDelta(t, 12.5/20, shearTerm(cutoffKt, 12.5), 1e-9)

	// Linear ramp, then the 1.5 cap at 30 m/s.
	assert.InDelta(t, 1.0, shearTerm(20/knotsToMS, 12.5), 1e-9)
	assert.InDelta(t, 1.5, shearTerm(30/knotsToMS, 12.5), 1e-9)
	assert.Equal(t, 1.5, shearTerm(45/knotsToMS, 12.5))
}
