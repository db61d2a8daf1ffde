package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func test_states() AmbientStates {
	return AmbientStates{
		inlet:      humid_inlet_state(),
		outlet:     saturated_outlet_state(),
		t_evap_air: 15.8,
		t_cond:     35.0,
	}
}

func test_cycle_constants() RefrigerantCycleConstants {
	return RefrigerantCycleConstants{
		t_evap:           15.8,
		t_cond:           35.0,
		p_evap:           500e3,
		p_cond:           900e3,
		pr:               1.8,
		eta:              0.78,
		q_evap_specific:  150e3,
		w_comp_specific:  15e3,
		mu_vapor_at_evap: 1.2e-5,
	}
}

func Test_candidate_flows_inclusive_bounds(t *testing.T) {
	flows := candidate_flows(0.1, 1.0, 0.1)
	require.Len(t, flows, 10)
	assert.InDelta(t, 0.1, flows[0], 1e-12)
	assert.InDelta(t, 1.0, flows[len(flows)-1], 1e-12)
}

func Test_candidate_flows_never_exceed_stop(t *testing.T) {
	// a stop off the step grid is an upper bound, not a target
	flows := candidate_flows(0.0, 0.25, 0.1)
	require.Len(t, flows, 3)
	assert.InDelta(t, 0.2, flows[len(flows)-1], 1e-12)

	flows = candidate_flows(0.1, 0.35, 0.1)
	for _, m := range flows {
		assert.LessOrEqual(t, m, 0.35)
	}
	assert.InDelta(t, 0.3, flows[len(flows)-1], 1e-12)
}

func Test_candidate_flows_no_drift(t *testing.T) {
	flows := candidate_flows(0.1, 20.0, 0.1)
	require.Len(t, flows, 200)
	for i := 1; i < len(flows); i++ {
		assert.Greater(t, flows[i], flows[i-1])
		assert.InDelta(t, 0.1, flows[i]-flows[i-1], 1e-9)
	}
}

func Test_sweep_engine_characterizes_air_flow(t *testing.T) {
	cfg := default_config()
	engine := new_sweep_engine(cfg, test_states(), test_cycle_constants())

	air := engine.air_flow
	expected := characterize_flow(engine.m_da_fixed, test_states().inlet.density,
		cfg.mu_air, cfg.duct_geometry(), cfg.pr_air, cfg.k_air)

	assert.InDelta(t, expected.velocity, air.velocity, 1e-12)
	assert.InDelta(t, expected.re, air.re, 1e-9)
	assert.Equal(t, expected.regime, air.regime)
	assert.Greater(t, air.h_conv, 0.0)
}

func Test_sweep_row_count_and_order(t *testing.T) {
	cfg := default_config()
	cfg.sweep_start, cfg.sweep_stop, cfg.sweep_step = 0.1, 2.0, 0.1

	engine := new_sweep_engine(cfg, test_states(), test_cycle_constants())
	samples := engine.run()

	require.Len(t, samples, 20)
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].MRef, samples[i-1].MRef)
	}
}

func Test_sweep_selects_closest_match(t *testing.T) {
	cfg := default_config()
	cfg.sweep_start, cfg.sweep_stop, cfg.sweep_step = 0.1, 5.0, 0.1

	cyc := test_cycle_constants()
	engine := new_sweep_engine(cfg, test_states(), cyc)
	samples := engine.run()

	best, idx, err := select_optimum(samples, ObjectiveMatchLoad)
	require.NoError(t, err)
	require.GreaterOrEqual(t, idx, 0)

	// the winner must be the candidate closest to
	// q_required / (effectiveness * q_evap_specific)
	load := engine.load_fixed
	m_star := load.q_required / (load.effectiveness * cyc.q_evap_specific)

	var want float64
	best_dist := math.Inf(1)
	for _, s := range samples {
		if d := math.Abs(s.MRef - m_star); d < best_dist {
			best_dist = d
			want = s.MRef
		}
	}
	assert.InDelta(t, want, best.MRef, 1e-12)
}

func Test_select_optimum_tie_keeps_smallest_flow(t *testing.T) {
	samples := []SweepSample{
		{MRef: 1.0, WComp: 10.0, MatchError: some_value(50.0)},
		{MRef: 2.0, WComp: 20.0, MatchError: some_value(50.0)},
		{MRef: 3.0, WComp: 30.0, MatchError: some_value(60.0)},
	}

	best, idx, err := select_optimum(samples, ObjectiveMatchLoad)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1.0, best.MRef, 1e-12)
}

func Test_select_optimum_skips_invalid_samples(t *testing.T) {
	samples := []SweepSample{
		{MRef: 0.1, WComp: -1.0, MatchError: some_value(1.0)},
		{MRef: 0.2, WComp: 5.0, MatchError: no_value()},
		{MRef: 0.3, WComp: 5.0, MatchError: some_value(10.0)},
	}

	best, idx, err := select_optimum(samples, ObjectiveMatchLoad)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 0.3, best.MRef, 1e-12)
}

func Test_select_optimum_no_valid_sample(t *testing.T) {
	samples := []SweepSample{
		{MRef: 0.1, WComp: 0.0, MatchError: no_value()},
		{MRef: 0.2, WComp: -2.0, MatchError: no_value()},
	}

	_, _, err := select_optimum(samples, ObjectiveMatchLoad)
	assert.ErrorIs(t, err, ErrNoValidOptimum)
}

func Test_select_optimum_water_per_energy(t *testing.T) {
	samples := []SweepSample{
		{MRef: 0.1, WComp: 1.0, WaterPerKWh: some_value(2.0)},
		{MRef: 0.2, WComp: 2.0, WaterPerKWh: some_value(5.0)},
		{MRef: 0.3, WComp: 3.0, WaterPerKWh: some_value(5.0)},
		{MRef: 0.4, WComp: 4.0, WaterPerKWh: no_value()},
	}

	best, idx, err := select_optimum(samples, ObjectiveWaterPerEnergy)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 0.2, best.MRef, 1e-12)
}

func Test_sweep_non_positive_refrigeration_effect(t *testing.T) {
	cfg := default_config()
	cfg.sweep_start, cfg.sweep_stop, cfg.sweep_step = 0.1, 1.0, 0.1

	cyc := test_cycle_constants()
	cyc.q_evap_specific = -5e3

	engine := new_sweep_engine(cfg, test_states(), cyc)
	samples := engine.run()

	// rows are retained, derived fields are undefined
	require.Len(t, samples, 10)
	for _, s := range samples {
		assert.False(t, s.QActual.is_valid())
		assert.False(t, s.MatchError.is_valid())
		assert.False(t, s.COP.is_valid())
		assert.False(t, s.WaterPerKWh.is_valid())
	}

	_, _, err := select_optimum(samples, ObjectiveMatchLoad)
	assert.ErrorIs(t, err, ErrNoValidOptimum)
}

func Test_sweep_sample_energy_balance(t *testing.T) {
	cfg := default_config()
	cfg.sweep_start, cfg.sweep_stop, cfg.sweep_step = 0.5, 0.5, 0.1

	cyc := test_cycle_constants()
	engine := new_sweep_engine(cfg, test_states(), cyc)
	samples := engine.run()
	require.Len(t, samples, 1)

	s := samples[0]
	require.True(t, s.QRef.is_valid())
	assert.InDelta(t, 0.5*cyc.q_evap_specific, s.QRef.value(), 1e-6)
	assert.InDelta(t, s.Effectiveness*s.QRef.value(), s.QActual.value(), 1e-6)
	assert.InDelta(t, 0.5*cyc.w_comp_specific, s.WComp, 1e-6)
	assert.InDelta(t, s.QActual.value()/s.WComp, s.COP.value(), 1e-9)
	assert.InDelta(t, s.WaterKgHr/(s.WComp/1000.0), s.WaterPerKWh.value(), 1e-9)
	assert.InDelta(t, math.Abs(s.QActual.value()-s.QRequired), s.MatchError.value(), 1e-9)
}

func Test_sweep_air_axis(t *testing.T) {
	cfg := default_config()
	cfg.axis = SweepAxisAir
	cfg.sweep_start, cfg.sweep_stop, cfg.sweep_step = 0.1, 1.0, 0.1

	cyc := test_cycle_constants()
	engine := new_sweep_engine(cfg, test_states(), cyc)
	samples := engine.run()

	require.Len(t, samples, 10)
	for i, s := range samples {
		if i > 0 {
			assert.Greater(t, s.MDa, samples[i-1].MDa)
		}
		// refrigerant flow is sized to meet the load exactly
		require.True(t, s.MatchError.is_valid())
		assert.InDelta(t, 0.0, s.MatchError.value(), 1e-6)
		assert.Greater(t, s.MRef, 0.0)
	}

	// more air moved -> more water, at more compressor work
	assert.Greater(t, samples[9].WaterKgHr, samples[0].WaterKgHr)
	assert.Greater(t, samples[9].WComp, samples[0].WComp)

	_, _, err := select_optimum(samples, ObjectiveWaterPerEnergy)
	assert.NoError(t, err)
}
