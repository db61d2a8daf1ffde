package main

import "math"

// SweepSample is one row of the sweep table. Rows are append only and
// ordered by ascending independent mass flow; fields that are
// physically undefined for a row stay invalid instead of numeric.
type SweepSample struct {
	MRef          float64       `csv:"m_ref"`
	MDa           float64       `csv:"m_da"`
	QRef          OptionalFloat `csv:"q_ref_w"`
	QActual       OptionalFloat `csv:"q_actual_w"`
	QRequired     float64       `csv:"q_required_w"`
	MatchError    OptionalFloat `csv:"error_w"`
	WComp         float64       `csv:"w_comp_w"`
	COP           OptionalFloat `csv:"cop"`
	WaterKgHr     float64       `csv:"water_kg_hr"`
	WaterPerKWh   OptionalFloat `csv:"water_kg_per_kwh"`
	NTU           float64       `csv:"ntu"`
	Effectiveness float64       `csv:"effectiveness"`
	ReRef         OptionalFloat `csv:"re_ref"`
	Regime        FlowRegime    `csv:"flow_regime"`
}

// SweepEngine evaluates the candidate mass flows of one run. All run
// level constants are captured at construction; each sample is a pure
// function of them and the candidate flow.
type SweepEngine struct {
	cfg    Config
	states AmbientStates
	cyc    RefrigerantCycleConstants
	geo    FlowGeometry // refrigerant side flow cross section

	t_target float64 // target air leaving temperature, degree C

	// fixed dry air mass flow and its load, used when the refrigerant
	// mass flow is the independent variable
	m_da_fixed float64
	load_fixed AirSideLoad

	// air flow through the face area, characterized once per run
	air_flow FlowCharacteristics
}

/*
Build the sweep engine for one run.

    Args:
        cfg: run configuration (validated)
        states: resolved ambient states
        cyc: refrigerant cycle constants

    Returns:
        sweep engine

    Notes:
        The fixed dry air mass flow follows from the face velocity
        assumption: m_da = rho * velocity * face_area, rounded to two
        decimals.
*/
func new_sweep_engine(cfg Config, states AmbientStates, cyc RefrigerantCycleConstants) *SweepEngine {
	t_target := states.inlet.dew_point - cfg.dew_point_tolerance

	m_da := roundToDecimalPlaces(states.inlet.density*cfg.air_velocity*cfg.face_area, 2)
	load := calc_air_side_load(m_da, states.inlet, states.outlet, t_target, cfg.ua(), cfg.l_vap)
	air := characterize_flow(m_da, states.inlet.density, cfg.mu_air, cfg.duct_geometry(), cfg.pr_air, cfg.k_air)

	return &SweepEngine{
		cfg:        cfg,
		states:     states,
		cyc:        cyc,
		geo:        cfg.tube_geometry(),
		t_target:   t_target,
		m_da_fixed: m_da,
		load_fixed: load,
		air_flow:   air,
	}
}

/*
Enumerate the candidate mass flows.

    Args:
        start: first candidate, kg/s (included)
        stop: upper bound, kg/s (included when it lies on the step
            grid; candidates never exceed it)
        step: increment, kg/s

    Returns:
        candidates in strictly ascending order

    Notes:
        Values are rounded to six decimals to keep repeated addition
        free of floating point drift.
*/
func candidate_flows(start, stop, step float64) []float64 {
	n := int(math.Floor((stop-start)/step+0.5)) + 1
	if n > 1 && start+float64(n-1)*step > stop+step*1e-9 {
		n--
	}

	flows := make([]float64, n)
	for i := 0; i < n; i++ {
		flows[i] = roundToDecimalPlaces(start+float64(i)*step, 6)
	}
	return flows
}

// run evaluates every candidate flow. The returned table has exactly
// one row per candidate, in the candidate order.
func (self *SweepEngine) run() []SweepSample {
	flows := candidate_flows(self.cfg.sweep_start, self.cfg.sweep_stop, self.cfg.sweep_step)

	samples := make([]SweepSample, len(flows))
	for i, m := range flows {
		if self.cfg.axis == SweepAxisAir {
			samples[i] = self.sample_air(m)
		} else {
			samples[i] = self.sample_refrigerant(m)
		}
	}
	return samples
}

/*
Evaluate one candidate refrigerant mass flow against the fixed air side
load.

    Args:
        m_ref: refrigerant mass flow, kg/s

    Returns:
        sweep sample

    Notes:
        The theoretical capacity m_ref * q_evap is derated by the air
        side effectiveness before it is compared to the required load.
        A non positive refrigeration effect invalidates every derived
        field of the row; the row itself is kept.
*/
func (self *SweepEngine) sample_refrigerant(m_ref float64) SweepSample {
	load := self.load_fixed

	s := SweepSample{
		MRef:          m_ref,
		MDa:           load.m_da,
		QRequired:     load.q_required,
		WComp:         m_ref * self.cyc.w_comp_specific,
		WaterKgHr:     load.water_rate * 3600.0,
		NTU:           load.ntu,
		Effectiveness: load.effectiveness,
	}

	re := reynolds_from_mass_flow(m_ref, self.cyc.mu_vapor_at_evap, self.geo)
	s.ReRef = some_value(re)
	s.Regime = classify_regime(re)

	if self.cyc.q_evap_specific <= 0.0 {
		s.QRef = no_value()
		s.QActual = no_value()
		s.MatchError = no_value()
		s.COP = no_value()
		s.WaterPerKWh = no_value()
		return s
	}

	q_ref := m_ref * self.cyc.q_evap_specific
	q_actual := load.effectiveness * q_ref
	s.QRef = some_value(q_ref)
	s.QActual = some_value(q_actual)
	s.MatchError = some_value(math.Abs(q_actual - load.q_required))

	if s.WComp > 0.0 {
		s.COP = some_value(q_actual / s.WComp)
		s.WaterPerKWh = some_value(s.WaterKgHr / (s.WComp / 1000.0))
	} else {
		s.COP = no_value()
		s.WaterPerKWh = no_value()
	}
	return s
}

/*
Evaluate one candidate dry air mass flow, sizing the refrigerant flow
to meet its load.

    Args:
        m_da: dry air mass flow, kg/s

    Returns:
        sweep sample

    Notes:
        On this axis the refrigerant flow is the dependent variable:
        m_ref = q_required / (effectiveness * q_evap), so the delivered
        cooling matches the load and the match error is zero for every
        valid row. The meaningful objective on this axis is
        water_per_energy.
*/
func (self *SweepEngine) sample_air(m_da float64) SweepSample {
	load := calc_air_side_load(m_da, self.states.inlet, self.states.outlet, self.t_target, self.cfg.ua(), self.cfg.l_vap)

	s := SweepSample{
		MDa:           m_da,
		QRequired:     load.q_required,
		WaterKgHr:     load.water_rate * 3600.0,
		NTU:           load.ntu,
		Effectiveness: load.effectiveness,
	}

	if self.cyc.q_evap_specific <= 0.0 || load.effectiveness <= 0.0 || load.q_required <= 0.0 {
		s.QRef = no_value()
		s.QActual = no_value()
		s.MatchError = no_value()
		s.COP = no_value()
		s.WaterPerKWh = no_value()
		s.ReRef = no_value()
		s.Regime = FlowRegime("")
		return s
	}

	m_ref := load.q_required / (load.effectiveness * self.cyc.q_evap_specific)
	q_ref := m_ref * self.cyc.q_evap_specific
	q_actual := load.effectiveness * q_ref

	s.MRef = m_ref
	s.QRef = some_value(q_ref)
	s.QActual = some_value(q_actual)
	s.MatchError = some_value(math.Abs(q_actual - load.q_required))
	s.WComp = m_ref * self.cyc.w_comp_specific

	re := reynolds_from_mass_flow(m_ref, self.cyc.mu_vapor_at_evap, self.geo)
	s.ReRef = some_value(re)
	s.Regime = classify_regime(re)

	if s.WComp > 0.0 {
		s.COP = some_value(q_actual / s.WComp)
		s.WaterPerKWh = some_value(s.WaterKgHr / (s.WComp / 1000.0))
	} else {
		s.COP = no_value()
		s.WaterPerKWh = no_value()
	}
	return s
}

/*
Select the optimal sample from a completed sweep table.

    Args:
        samples: sweep table in ascending flow order
        objective: selection rule

    Returns:
        the optimal sample and its index, or ErrNoValidOptimum

    Notes:
        Single linear scan, no recomputation. Ties keep the first
        (smallest flow) occurrence: the comparison is strict.
*/
func select_optimum(samples []SweepSample, objective Objective) (SweepSample, int, error) {
	best := -1

	for i := range samples {
		s := &samples[i]
		switch objective {
		case ObjectiveWaterPerEnergy:
			if !s.WaterPerKWh.is_valid() {
				continue
			}
			if best < 0 || s.WaterPerKWh.value() > samples[best].WaterPerKWh.value() {
				best = i
			}
		default:
			if !s.MatchError.is_valid() || s.WComp <= 0.0 {
				continue
			}
			if best < 0 || s.MatchError.value() < samples[best].MatchError.value() {
				best = i
			}
		}
	}

	if best < 0 {
		return SweepSample{}, -1, ErrNoValidOptimum
	}
	return samples[best], best, nil
}

func roundToDecimalPlaces(value float64, decimalPlaces int) float64 {
	shift := math.Pow10(decimalPlaces)
	return math.Round(value*shift) / shift
}
