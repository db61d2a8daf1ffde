package main

import "math"

// AirSideLoad is the required heat removal of one dry air mass flow
// together with the NTU-effectiveness rating of the evaporator.
type AirSideLoad struct {
	m_da          float64 // dry air mass flow, kg/s
	cp_moist      float64 // moist air specific heat, J/kg(DA) K
	q_sensible    float64 // W
	q_latent      float64 // W
	q_required    float64 // W
	water_rate    float64 // condensate rate, kg/s, never negative
	ntu           float64
	effectiveness float64
}

/*
Calculate the air side load and the evaporator effectiveness.

    Args:
        m_da: dry air mass flow, kg/s
        inlet: air state entering the evaporator
        outlet: saturated air state leaving the evaporator
        t_target: target air leaving temperature, degree C
        ua: heat exchanger UA, W/K
        l_vap: latent heat of vaporization of water, J/kg

    Returns:
        air side load

    Notes:
        The refrigerant side changes phase at constant temperature, so
        its heat capacity rate is ~0 and the single stream relation
        effectiveness = 1 - exp(-NTU) applies. If the outlet humidity
        ratio exceeds the inlet one, the condensate rate is clamped to
        zero: net evaporation is not physical for this device.
*/
func calc_air_side_load(m_da float64, inlet, outlet PsychrometricState, t_target, ua, l_vap float64) AirSideLoad {
	cp_moist := get_c_p_moist(inlet.humidity_ratio)

	q_sensible := m_da * cp_moist * (inlet.t - t_target)

	water_rate := m_da * (inlet.humidity_ratio - outlet.humidity_ratio)
	if water_rate < 0.0 {
		water_rate = 0.0
	}
	q_latent := water_rate * l_vap

	c_air := m_da * cp_moist
	ntu := ua / c_air

	return AirSideLoad{
		m_da:          m_da,
		cp_moist:      cp_moist,
		q_sensible:    q_sensible,
		q_latent:      q_latent,
		q_required:    q_sensible + q_latent,
		water_rate:    water_rate,
		ntu:           ntu,
		effectiveness: 1.0 - math.Exp(-ntu),
	}
}
