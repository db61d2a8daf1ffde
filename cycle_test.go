package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_isentropic_eff_constant_below_pivot(t *testing.T) {
	assert.InDelta(t, 0.78, isentropic_eff(0.5), 1e-12)
	assert.InDelta(t, 0.78, isentropic_eff(1.0), 1e-12)
	assert.InDelta(t, 0.78, isentropic_eff(2.0), 1e-12)
}

func Test_isentropic_eff_decreases_above_pivot(t *testing.T) {
	assert.InDelta(t, 0.75, isentropic_eff(3.0), 1e-12)
	assert.InDelta(t, 0.72, isentropic_eff(4.0), 1e-12)
	assert.InDelta(t, 0.60, isentropic_eff(8.0), 1e-12)
}

func Test_isentropic_eff_clamped(t *testing.T) {
	assert.InDelta(t, 0.60, isentropic_eff(20.0), 1e-12)
	assert.InDelta(t, 0.60, isentropic_eff(100.0), 1e-12)
}

func Test_isentropic_eff_non_increasing_and_bounded(t *testing.T) {
	prev := isentropic_eff(1.0)
	for pr := 1.0; pr <= 15.0; pr += 0.25 {
		eta := isentropic_eff(pr)
		assert.LessOrEqual(t, eta, prev)
		assert.GreaterOrEqual(t, eta, 0.60)
		assert.LessOrEqual(t, eta, 0.85)
		prev = eta
	}
}

func Test_calc_cycle_constants_standard_cycle(t *testing.T) {
	prop, err := new_refrigerant_table("R134a")
	require.NoError(t, err)

	cyc, err := calc_cycle_constants(5.0, 40.0, prop)
	require.NoError(t, err)

	assert.Greater(t, cyc.p_cond, cyc.p_evap)
	assert.Greater(t, cyc.pr, 1.0)
	assert.GreaterOrEqual(t, cyc.h2, cyc.h1, "compression must increase enthalpy")
	assert.GreaterOrEqual(t, cyc.h2, cyc.h2s, "actual exit enthalpy is above the isentropic one")
	assert.Greater(t, cyc.q_evap_specific, 0.0)
	assert.Greater(t, cyc.w_comp_specific, 0.0)
	assert.Equal(t, cyc.h3, cyc.h4, "throttling is isenthalpic")
}

func Test_calc_cycle_constants_matches_direct_evaluation(t *testing.T) {
	// regression oracle: the cycle must reproduce the closed form VCR
	// values evaluated directly from the same property relations
	prop, _ := new_refrigerant_table("R134a")

	cyc, err := calc_cycle_constants(5.0, 40.0, prop)
	require.NoError(t, err)

	h1, _ := prop.saturation_property("H", 5.0, 1.0)
	s1, _ := prop.saturation_property("S", 5.0, 1.0)
	h3, _ := prop.saturation_property("H", 40.0, 0.0)
	p_evap, _ := prop.saturation_property("P", 5.0, 1.0)
	p_cond, _ := prop.saturation_property("P", 40.0, 0.0)
	h2s, _ := prop.state_property("H", "P", p_cond, "S", s1)

	eta := isentropic_eff(p_cond / p_evap)
	h2 := h1 + (h2s-h1)/eta

	assert.InDelta(t, h1-h3, cyc.q_evap_specific, 1e-9)
	assert.InDelta(t, h2-h1, cyc.w_comp_specific, 1e-9)

	// plausibility of the operating point itself
	cop_cycle := cyc.q_evap_specific / cyc.w_comp_specific
	assert.Greater(t, cop_cycle, 2.0)
	assert.Less(t, cop_cycle, 8.0)
}

func Test_calc_cycle_constants_cop_drops_with_lift(t *testing.T) {
	prop, _ := new_refrigerant_table("R134a")

	low, err := calc_cycle_constants(5.0, 40.0, prop)
	require.NoError(t, err)
	high, err := calc_cycle_constants(-10.0, 55.0, prop)
	require.NoError(t, err)

	cop_low := low.q_evap_specific / low.w_comp_specific
	cop_high := high.q_evap_specific / high.w_comp_specific
	assert.Greater(t, cop_low, cop_high)
}

func Test_calc_cycle_constants_degenerate_pair(t *testing.T) {
	prop, _ := new_refrigerant_table("R134a")

	_, err := calc_cycle_constants(40.0, 5.0, prop)
	assert.Error(t, err)

	_, err = calc_cycle_constants(20.0, 20.0, prop)
	assert.Error(t, err)
}

func Test_calc_cycle_constants_out_of_range_temperature(t *testing.T) {
	prop, _ := new_refrigerant_table("R134a")

	_, err := calc_cycle_constants(-70.0, 40.0, prop)
	var pe *PropertyEvaluationError
	assert.ErrorAs(t, err, &pe)
}
