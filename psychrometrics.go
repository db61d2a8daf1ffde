package main

import (
	"math"
)

/*
Calculate the saturation vapour pressure.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation vapour pressure, Pa

    Notes:
        Wexler type equation with separate coefficient sets above and
        below the freezing point.
*/
func get_p_vs(theta float64) float64 {
	// absolute temperature, K
	t := theta + t_zero_k

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	return p_vs
}

/*
Calculate the partial pressure of water vapour.

    Args:
        theta: air temperature, degree C
        rh: relative humidity, fraction 0-1

    Returns:
        water vapour partial pressure, Pa
*/
func get_p_v(theta, rh float64) float64 {
	return rh * get_p_vs(theta)
}

/*
Calculate the humidity ratio from the water vapour partial pressure.

    Args:
        p_v: water vapour partial pressure, Pa
        p_atm: atmospheric pressure, Pa

    Returns:
        humidity ratio, kg/kg(DA)
*/
func get_x(p_v, p_atm float64) float64 {
	return m_ratio * p_v / (p_atm - p_v)
}

/*
Calculate the humidity ratio of moist air.

    Args:
        theta: dry bulb temperature, degree C
        rh: relative humidity, fraction 0-1
        p_atm: atmospheric pressure, Pa

    Returns:
        humidity ratio, kg/kg(DA)
*/
func get_humidity_ratio(theta, rh, p_atm float64) float64 {
	return get_x(get_p_v(theta, rh), p_atm)
}

/*
Calculate the dew point temperature.

    The saturation vapour pressure relation is inverted by bisection so
    that the dew point is exactly consistent with get_p_vs.

    Args:
        theta: dry bulb temperature, degree C
        rh: relative humidity, fraction 0-1

    Returns:
        dew point temperature, degree C

    Notes:
        For rh = 1 the dew point equals the dry bulb temperature.
*/
func get_dew_point(theta, rh float64) float64 {
	p_v := get_p_v(theta, rh)

	lo, hi := -100.0, theta
	for i := 0; i < 100; i++ {
		mid := 0.5 * (lo + hi)
		if get_p_vs(mid) > p_v {
			hi = mid
		} else {
			lo = mid
		}
	}

	return 0.5 * (lo + hi)
}

/*
Calculate the specific enthalpy of moist air.

    Args:
        theta: dry bulb temperature, degree C
        x: humidity ratio, kg/kg(DA)

    Returns:
        specific enthalpy, J/kg(DA)
*/
func get_moist_air_enthalpy(theta, x float64) float64 {
	return c_p_da*theta + x*(l_wtr+c_p_wv*theta)
}

/*
Calculate the density of moist air.

    Args:
        theta: dry bulb temperature, degree C
        x: humidity ratio, kg/kg(DA)
        p_atm: atmospheric pressure, Pa

    Returns:
        moist air density, kg/m3

    Notes:
        Ideal gas mixture of dry air and water vapour. The partial
        pressure of the vapour follows from the humidity ratio.
*/
func get_moist_air_density(theta, x, p_atm float64) float64 {
	t := theta + t_zero_k

	// vapour partial pressure back-calculated from the humidity ratio, Pa
	p_v := p_atm * x / (x + m_ratio)

	rho_da := (p_atm - p_v) / (r_da * t)
	rho_wv := p_v / (r_wv * t)

	return rho_da + rho_wv
}

/*
Calculate the specific heat of moist air per unit mass of dry air.

    Args:
        x: humidity ratio, kg/kg(DA)

    Returns:
        specific heat, J/kg(DA) K
*/
func get_c_p_moist(x float64) float64 {
	return c_p_da + c_p_wv*x
}
