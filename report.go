package main

import (
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// RunResult bundles everything one run produced: the resolved ambient
// state, the cycle constants, the full sweep table and the selected
// optimum (nil when no valid optimum exists).
type RunResult struct {
	TAmbientC  float64 `json:"t_ambient_c"`
	PAmbientPa float64 `json:"p_ambient_pa"`
	RHFraction float64 `json:"rh_fraction"`
	DewPointC  float64 `json:"dew_point_c"`
	TEvapAirC  float64 `json:"t_evap_air_c"`
	TCondC     float64 `json:"t_cond_c"`

	PEvapPa       float64 `json:"p_evap_pa"`
	PCondPa       float64 `json:"p_cond_pa"`
	PressureRatio float64 `json:"pressure_ratio"`
	IsentropicEff float64 `json:"isentropic_eff"`
	QEvapSpecific float64 `json:"q_evap_specific_j_kg"`
	WCompSpecific float64 `json:"w_comp_specific_j_kg"`

	// air flow through the face area, characterized once per run
	AirVelocity float64    `json:"air_velocity_m_s"`
	ReAir       float64    `json:"re_air"`
	NuAir       float64    `json:"nu_air"`
	HConvAir    float64    `json:"h_conv_air_w_m2_k"`
	AirRegime   FlowRegime `json:"air_flow_regime"`

	Samples      []SweepSample `json:"samples"`
	Optimum      *SweepSample  `json:"optimum"`
	OptimumIndex int           `json:"optimum_index"`
}

func new_run_result(ac AmbientCondition, states AmbientStates, cyc RefrigerantCycleConstants, air FlowCharacteristics, samples []SweepSample, optimum *SweepSample, index int) *RunResult {
	return &RunResult{
		TAmbientC:     ac.t_ambient,
		PAmbientPa:    ac.p_ambient,
		RHFraction:    ac.rh,
		DewPointC:     states.inlet.dew_point,
		TEvapAirC:     states.t_evap_air,
		TCondC:        states.t_cond,
		PEvapPa:       cyc.p_evap,
		PCondPa:       cyc.p_cond,
		PressureRatio: cyc.pr,
		IsentropicEff: cyc.eta,
		QEvapSpecific: cyc.q_evap_specific,
		WCompSpecific: cyc.w_comp_specific,
		AirVelocity:   air.velocity,
		ReAir:         air.re,
		NuAir:         air.nu,
		HConvAir:      air.h_conv,
		AirRegime:     air.regime,
		Samples:       samples,
		Optimum:       optimum,
		OptimumIndex:  index,
	}
}

/*
Write the sweep table to a CSV file.

    Args:
        path: output file path
        samples: sweep table

    Returns:
        nil, or the I/O error

    Notes:
        One row per candidate mass flow; invalid fields render as
        "NaN" so the row count always equals the candidate count.
*/
func write_sweep_csv(path string, samples []SweepSample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&samples, file)
}

// log_run_summary prints the human readable summary of a run: the
// chosen ambient state, the assumed temperatures and the optimum (or
// the explicit absence of one).
func log_run_summary(res *RunResult) {
	log.Infof("Ambient: %.2f degC, RH: %.1f %%, Dew point: %.2f degC",
		res.TAmbientC, res.RHFraction*100.0, res.DewPointC)
	log.Infof("Assumed evaporator air temp (out): %.2f degC", res.TEvapAirC)
	log.Infof("Assumed condenser saturation temp: %.2f degC", res.TCondC)
	log.Infof("Cycle: PR = %.2f, isentropic eff = %.3f, q_evap = %.1f J/kg",
		res.PressureRatio, res.IsentropicEff, res.QEvapSpecific)
	log.Infof("Air flow: v = %.2f m/s, Re = %.0f (%s), Nu = %.1f, h = %.1f W/m2 K",
		res.AirVelocity, res.ReAir, res.AirRegime, res.NuAir, res.HConvAir)

	if res.Optimum == nil {
		log.Warn("no valid optimum: no sweep sample has positive compressor work")
		return
	}

	best := res.Optimum
	log.Infof("Optimal refrigerant mass flow: %.4f kg/s", best.MRef)
	log.Infof("Cooling delivered: %.2f W", best.QActual.or_nan())
	log.Infof("Compressor power: %.2f W", best.WComp)
	log.Infof("COP: %.2f", best.COP.or_nan())
	log.Infof("Water production: %.2f kg/hr", best.WaterKgHr)
}
