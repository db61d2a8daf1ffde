package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_classify_regime_partition(t *testing.T) {
	assert.Equal(t, RegimeLaminar, classify_regime(0.0))
	assert.Equal(t, RegimeLaminar, classify_regime(2299.999))
	assert.Equal(t, RegimeTransitional, classify_regime(2300.0))
	assert.Equal(t, RegimeTransitional, classify_regime(3999.999))
	assert.Equal(t, RegimeTurbulent, classify_regime(4000.0))
	assert.Equal(t, RegimeTurbulent, classify_regime(1e6))
}

func Test_characterize_flow_laminar(t *testing.T) {
	geo := FlowGeometry{d: 0.01, area: math.Pi * 0.01 * 0.01 / 4.0}

	// very small mass flow stays laminar
	fc := characterize_flow(1e-6, 1.2, 1.8e-5, geo, 0.71, 0.026)
	assert.Equal(t, RegimeLaminar, fc.regime)
	assert.InDelta(t, 3.66, fc.nu, 1e-12)
	assert.InDelta(t, 3.66*0.026/0.01, fc.h_conv, 1e-9)
}

func Test_characterize_flow_turbulent(t *testing.T) {
	geo := FlowGeometry{d: 0.01, area: math.Pi * 0.01 * 0.01 / 4.0}

	fc := characterize_flow(0.01, 1.2, 1.8e-5, geo, 0.71, 0.026)
	assert.Equal(t, RegimeTurbulent, fc.regime)
	assert.Greater(t, fc.re, 4000.0)
	assert.InDelta(t, 0.023*math.Pow(fc.re, 0.8)*math.Pow(0.71, 0.4), fc.nu, 1e-9)
	assert.InDelta(t, fc.nu*0.026/0.01, fc.h_conv, 1e-9)
}

func Test_reynolds_formulations_agree(t *testing.T) {
	// rho v d / mu with v = m / (rho A) must equal m d / (mu A)
	geo := FlowGeometry{d: 0.008, area: 5.0e-5}
	rho, mu, m := 1.15, 1.75e-5, 0.4

	fc := characterize_flow(m, rho, mu, geo, 0.71, 0.026)
	re := reynolds_from_mass_flow(m, mu, geo)
	assert.InDelta(t, fc.re, re, math.Abs(fc.re)*1e-12)
}

func Test_reynolds_scales_linearly_with_mass_flow(t *testing.T) {
	geo := FlowGeometry{d: 0.01, area: 7.85e-5}
	re1 := reynolds_from_mass_flow(0.5, 1.2e-5, geo)
	re2 := reynolds_from_mass_flow(1.0, 1.2e-5, geo)
	assert.InDelta(t, 2.0*re1, re2, re2*1e-12)
}
