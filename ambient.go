package main

// AmbientCondition is the raw weather triple one run starts from.
type AmbientCondition struct {
	t_ambient float64 // dry bulb temperature, degree C
	p_ambient float64 // atmospheric pressure, Pa
	rh        float64 // relative humidity, fraction 0-1
}

// PsychrometricState holds the derived moist air quantities of one air
// state.
type PsychrometricState struct {
	t              float64 // dry bulb temperature, degree C
	dew_point      float64 // degree C
	humidity_ratio float64 // kg/kg(DA)
	enthalpy       float64 // J/kg(DA)
	density        float64 // kg/m3
}

// AmbientStates bundles the two air states of one run together with
// the refrigerant saturation temperatures derived from them.
type AmbientStates struct {
	inlet      PsychrometricState // air entering the evaporator
	outlet     PsychrometricState // saturated air leaving the evaporator
	t_evap_air float64            // assumed evaporator air leaving temperature, degree C
	t_cond     float64            // assumed condenser saturation temperature, degree C
}

/*
Derive the psychrometric state of moist air.

    Args:
        theta: dry bulb temperature, degree C
        rh: relative humidity, fraction 0-1
        p_atm: atmospheric pressure, Pa

    Returns:
        psychrometric state

    Notes:
        Inputs outside the physically meaningful range surface as a
        PropertyEvaluationError of the moist air correlations.
*/
func resolve_psychrometric_state(theta, rh, p_atm float64) (PsychrometricState, error) {
	if rh < 0.0 || rh > 1.0 {
		return PsychrometricState{}, &PropertyEvaluationError{Fluid: "moist air", Kind: "RH", Input: rh}
	}
	if p_atm <= 0.0 {
		return PsychrometricState{}, &PropertyEvaluationError{Fluid: "moist air", Kind: "P", Input: p_atm}
	}

	p_v := get_p_v(theta, rh)
	if p_v >= p_atm {
		return PsychrometricState{}, &PropertyEvaluationError{Fluid: "moist air", Kind: "p_v", Input: p_v}
	}

	x := get_x(p_v, p_atm)

	return PsychrometricState{
		t:              theta,
		dew_point:      get_dew_point(theta, rh),
		humidity_ratio: x,
		enthalpy:       get_moist_air_enthalpy(theta, x),
		density:        get_moist_air_density(theta, x, p_atm),
	}, nil
}

/*
Resolve the two air states of a run from the ambient condition.

    Args:
        ac: ambient condition
        evap_dew_offset: offset from the dew point to the evaporator air
            leaving temperature, K (negative)
        cond_amb_offset: offset from the ambient temperature to the
            condenser saturation temperature, K

    Returns:
        ambient states

    Notes:
        The evaporator outlet air is assumed saturated (rh = 1) at
        t_evap_air and the unchanged ambient pressure.
*/
func resolve_ambient_states(ac AmbientCondition, evap_dew_offset, cond_amb_offset float64) (AmbientStates, error) {
	inlet, err := resolve_psychrometric_state(ac.t_ambient, ac.rh, ac.p_ambient)
	if err != nil {
		return AmbientStates{}, err
	}

	t_evap_air := inlet.dew_point + evap_dew_offset
	t_cond := ac.t_ambient + cond_amb_offset

	outlet, err := resolve_psychrometric_state(t_evap_air, 1.0, ac.p_ambient)
	if err != nil {
		return AmbientStates{}, err
	}

	return AmbientStates{
		inlet:      inlet,
		outlet:     outlet,
		t_evap_air: t_evap_air,
		t_cond:     t_cond,
	}, nil
}
