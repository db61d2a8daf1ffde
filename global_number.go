package main

// specific heat of dry air, J/kg K
const c_p_da = 1005.0

// specific heat of water vapour, J/kg K
const c_p_wv = 1860.0

// latent heat of evaporation of water at 0 degree C, J/kg
const l_wtr = 2501000.0

// gas constant of dry air, J/kg K
const r_da = 287.055

// gas constant of water vapour, J/kg K
const r_wv = 461.52

// ratio of molecular masses, water vapour to dry air
const m_ratio = 0.622

// 0 degree C expressed as absolute temperature, K
const t_zero_k = 273.15
