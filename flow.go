package main

import "math"

// flow regime of an internal tube flow
type FlowRegime string

const (
	RegimeLaminar      FlowRegime = "Laminar"
	RegimeTransitional FlowRegime = "Transitional"
	RegimeTurbulent    FlowRegime = "Turbulent"
)

/*
Classify the flow regime from the Reynolds number.

    Args:
        re: Reynolds number

    Returns:
        flow regime

    Notes:
        Re < 2300 laminar, 2300 <= Re < 4000 transitional,
        Re >= 4000 turbulent.
*/
func classify_regime(re float64) FlowRegime {
	switch {
	case re < 2300.0:
		return RegimeLaminar
	case re < 4000.0:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// FlowGeometry is the cross section the fluid flows through. Validated
// once at configuration time, never per sample.
type FlowGeometry struct {
	d    float64 // tube inner diameter, m
	area float64 // total internal flow area, m2
}

// FlowCharacteristics are the non dimensional numbers and the
// convective coefficient of one mass flow through a geometry.
type FlowCharacteristics struct {
	velocity float64 // m/s
	re       float64
	nu       float64
	regime   FlowRegime
	h_conv   float64 // W/m2 K
}

/*
Characterize an internal flow.

    Args:
        m_dot: mass flow, kg/s
        rho: fluid density, kg/m3
        mu: dynamic viscosity, Pa s
        geo: flow cross section
        pr: Prandtl number
        k: thermal conductivity of the fluid, W/m K

    Returns:
        flow characteristics

    Notes:
        Nu = 3.66 for laminar flow, otherwise the Dittus-Boelter
        heating form 0.023 Re^0.8 Pr^0.4.
*/
func characterize_flow(m_dot, rho, mu float64, geo FlowGeometry, pr, k float64) FlowCharacteristics {
	velocity := m_dot / (rho * geo.area)
	re := rho * velocity * geo.d / mu

	var nu float64
	if re < 2300.0 {
		nu = 3.66
	} else {
		nu = 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
	}

	return FlowCharacteristics{
		velocity: velocity,
		re:       re,
		nu:       nu,
		regime:   classify_regime(re),
		h_conv:   nu * k / geo.d,
	}
}

/*
Calculate the Reynolds number of a mass flow through a geometry without
needing the density.

    Args:
        m_dot: mass flow, kg/s
        mu: dynamic viscosity, Pa s
        geo: flow cross section

    Returns:
        Reynolds number

    Notes:
        Equivalent to rho v d / mu with v = m_dot / (rho A); the
        density cancels.
*/
func reynolds_from_mass_flow(m_dot, mu float64, geo FlowGeometry) float64 {
	return m_dot * geo.d / (mu * geo.area)
}
