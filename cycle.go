package main

import (
	"fmt"
	"math"
)

// RefrigerantCycleConstants are the flow independent quantities of one
// four state vapour compression cycle: saturated vapour at the
// evaporator exit (1), actual compressor exit (2), saturated liquid at
// the condenser exit (3) and the isenthalpic expansion exit (4).
type RefrigerantCycleConstants struct {
	t_evap float64 // evaporator saturation temperature, degree C
	t_cond float64 // condenser saturation temperature, degree C

	p_evap float64 // evaporator saturation pressure, Pa
	p_cond float64 // condenser saturation pressure, Pa

	h1  float64 // J/kg
	s1  float64 // J/kg K
	h2s float64 // isentropic compressor exit enthalpy, J/kg
	h2  float64 // actual compressor exit enthalpy, J/kg
	h3  float64 // J/kg
	h4  float64 // J/kg

	pr  float64 // pressure ratio p_cond / p_evap
	eta float64 // isentropic compressor efficiency

	q_evap_specific  float64 // specific refrigeration effect h1 - h4, J/kg
	w_comp_specific  float64 // specific compressor work h2 - h1, J/kg
	mu_vapor_at_evap float64 // vapour viscosity at the evaporator, Pa s
}

/*
Estimate the isentropic compressor efficiency from the pressure ratio.

    Args:
        pr: pressure ratio p_cond / p_evap

    Returns:
        isentropic efficiency

    Notes:
        Empirical correction: constant 0.78 up to pr = 2, decreasing by
        0.03 per unit of pr above that, clamped to [0.60, 0.85].
*/
func isentropic_eff(pr float64) float64 {
	eta := 0.78 - 0.03*math.Max(0.0, pr-2.0)
	return math.Min(math.Max(eta, 0.60), 0.85)
}

/*
Calculate the flow independent cycle constants.

    Args:
        t_evap: evaporator saturation temperature, degree C
        t_cond: condenser saturation temperature, degree C
        prop: refrigerant property provider

    Returns:
        cycle constants

    Notes:
        No subcooling or superheat: state 1 is saturated vapour at
        t_evap, state 3 saturated liquid at t_cond, the expansion is
        isenthalpic. Any property lookup failure propagates; a cycle
        with t_evap >= t_cond is rejected before any lookup.
*/
func calc_cycle_constants(t_evap, t_cond float64, prop SaturationProvider) (RefrigerantCycleConstants, error) {
	var c RefrigerantCycleConstants

	if t_evap >= t_cond {
		return c, fmt.Errorf(
			"invalid cycle: evaporator temperature %.2f degC is not below condenser temperature %.2f degC",
			t_evap, t_cond)
	}

	p_evap, err := prop.saturation_property("P", t_evap, 1.0)
	if err != nil {
		return c, err
	}
	p_cond, err := prop.saturation_property("P", t_cond, 0.0)
	if err != nil {
		return c, err
	}

	h1, err := prop.saturation_property("H", t_evap, 1.0)
	if err != nil {
		return c, err
	}
	s1, err := prop.saturation_property("S", t_evap, 1.0)
	if err != nil {
		return c, err
	}
	h3, err := prop.saturation_property("H", t_cond, 0.0)
	if err != nil {
		return c, err
	}
	mu1, err := prop.saturation_property("V", t_evap, 1.0)
	if err != nil {
		return c, err
	}

	pr := p_cond / p_evap
	eta := isentropic_eff(pr)

	h2s, err := prop.state_property("H", "P", p_cond, "S", s1)
	if err != nil {
		return c, err
	}
	h2 := h1 + (h2s-h1)/eta

	// throttling: h4 = h3
	h4 := h3

	c = RefrigerantCycleConstants{
		t_evap:           t_evap,
		t_cond:           t_cond,
		p_evap:           p_evap,
		p_cond:           p_cond,
		h1:               h1,
		s1:               s1,
		h2s:              h2s,
		h2:               h2,
		h3:               h3,
		h4:               h4,
		pr:               pr,
		eta:              eta,
		q_evap_specific:  h1 - h4,
		w_comp_specific:  h2 - h1,
		mu_vapor_at_evap: mu1,
	}
	return c, nil
}
