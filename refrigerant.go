package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// SaturationProvider supplies refrigerant state properties. Property
// kinds follow the usual one letter convention: "P" saturation
// pressure Pa, "H" specific enthalpy J/kg, "S" specific entropy
// J/kg K, "V" dynamic viscosity Pa s.
type SaturationProvider interface {
	// saturation_property evaluates a property on the saturation line
	// at temperature t (degree C) and the given quality (0 = saturated
	// liquid, 1 = saturated vapour).
	saturation_property(kind string, t float64, quality float64) (float64, error)

	// state_property evaluates a property from two independent state
	// inputs, PropsSI style. The only pair the cycle needs is
	// ("H", "P", p, "S", s): the enthalpy after isentropic
	// compression to the condenser pressure.
	state_property(kind string, in1 string, v1 float64, in2 string, v2 float64) (float64, error)

	fluid() string
}

// one row of the embedded saturation table
type saturationRow struct {
	t    float64 // saturation temperature, degree C
	p    float64 // saturation pressure, kPa
	h_f  float64 // saturated liquid enthalpy, kJ/kg
	h_g  float64 // saturated vapour enthalpy, kJ/kg
	s_f  float64 // saturated liquid entropy, kJ/kg K
	s_g  float64 // saturated vapour entropy, kJ/kg K
	mu_g float64 // saturated vapour viscosity, µPa s
}

// R134a saturation properties, IIR reference state (h = 200 kJ/kg,
// s = 1.0 kJ/kg K for saturated liquid at 0 degree C).
var r134a_rows = []saturationRow{
	{-40, 51.2, 148.1, 374.0, 0.7967, 1.7655, 9.0},
	{-30, 84.4, 160.8, 380.3, 0.8498, 1.7528, 9.5},
	{-20, 132.8, 173.6, 386.6, 0.9023, 1.7413, 10.0},
	{-10, 200.7, 186.7, 392.7, 0.9519, 1.7334, 10.5},
	{0, 292.9, 200.0, 398.6, 1.0000, 1.7271, 11.0},
	{10, 414.9, 213.6, 404.3, 1.0470, 1.7218, 11.5},
	{20, 572.0, 227.5, 409.8, 1.0960, 1.7183, 12.0},
	{30, 770.6, 241.8, 414.8, 1.1435, 1.7145, 12.5},
	{40, 1017.0, 256.4, 419.4, 1.1905, 1.7115, 13.1},
	{50, 1318.0, 271.6, 423.4, 1.2375, 1.7071, 13.7},
	{60, 1682.0, 287.5, 426.9, 1.2848, 1.7015, 14.4},
	{70, 2117.0, 304.3, 429.3, 1.3330, 1.6935, 15.2},
	{80, 2633.0, 322.4, 430.6, 1.3827, 1.6825, 16.1},
}

// specific heat of superheated R134a vapour near the saturation line,
// J/kg K, used by the ideal superheat extension
const cp_vapor_r134a = 1030.0

// RefrigerantTable evaluates saturation properties by piecewise linear
// interpolation over an embedded table. All returned values are SI
// (Pa, J/kg, J/kg K, Pa s).
type RefrigerantTable struct {
	name         string
	t_min, t_max float64
	p_min, p_max float64
	cp_vapor     float64

	p_of_t    interp.PiecewiseLinear
	t_of_p    interp.PiecewiseLinear
	h_f_of_t  interp.PiecewiseLinear
	h_g_of_t  interp.PiecewiseLinear
	s_f_of_t  interp.PiecewiseLinear
	s_g_of_t  interp.PiecewiseLinear
	mu_g_of_t interp.PiecewiseLinear
}

/*
Build the property table for the given refrigerant identifier.

    Args:
        name: refrigerant identifier

    Returns:
        property table

    Notes:
        Only R134a is tabulated. Other identifiers return an error so
        that a misconfigured refrigerant fails before any computation.
*/
func new_refrigerant_table(name string) (*RefrigerantTable, error) {
	if name != "R134a" {
		return nil, fmt.Errorf("unsupported refrigerant `%s`", name)
	}

	rows := r134a_rows
	n := len(rows)
	ts := make([]float64, n)
	ps := make([]float64, n)
	h_fs := make([]float64, n)
	h_gs := make([]float64, n)
	s_fs := make([]float64, n)
	s_gs := make([]float64, n)
	mu_gs := make([]float64, n)
	for i, r := range rows {
		ts[i] = r.t
		ps[i] = r.p * 1000.0
		h_fs[i] = r.h_f * 1000.0
		h_gs[i] = r.h_g * 1000.0
		s_fs[i] = r.s_f * 1000.0
		s_gs[i] = r.s_g * 1000.0
		mu_gs[i] = r.mu_g * 1e-6
	}

	tbl := &RefrigerantTable{
		name:     name,
		t_min:    ts[0],
		t_max:    ts[n-1],
		p_min:    ps[0],
		p_max:    ps[n-1],
		cp_vapor: cp_vapor_r134a,
	}

	// the table is static and strictly ascending in both t and p,
	// fitting cannot fail
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(tbl.p_of_t.Fit(ts, ps))
	must(tbl.t_of_p.Fit(ps, ts))
	must(tbl.h_f_of_t.Fit(ts, h_fs))
	must(tbl.h_g_of_t.Fit(ts, h_gs))
	must(tbl.s_f_of_t.Fit(ts, s_fs))
	must(tbl.s_g_of_t.Fit(ts, s_gs))
	must(tbl.mu_g_of_t.Fit(ts, mu_gs))

	return tbl, nil
}

func (self *RefrigerantTable) fluid() string {
	return self.name
}

func (self *RefrigerantTable) check_t(kind string, t float64) error {
	if t < self.t_min || t > self.t_max {
		return &PropertyEvaluationError{Fluid: self.name, Kind: kind, Input: t}
	}
	return nil
}

/*
Evaluate a property on the saturation line.

    Args:
        kind: "P", "H", "S" or "V"
        t: saturation temperature, degree C
        quality: vapour fraction, 0 or 1

    Returns:
        property value, SI units
*/
func (self *RefrigerantTable) saturation_property(kind string, t float64, quality float64) (float64, error) {
	if err := self.check_t(kind, t); err != nil {
		return 0, err
	}

	switch kind {
	case "P":
		return self.p_of_t.Predict(t), nil
	case "H":
		if quality >= 1.0 {
			return self.h_g_of_t.Predict(t), nil
		}
		return self.h_f_of_t.Predict(t), nil
	case "S":
		if quality >= 1.0 {
			return self.s_g_of_t.Predict(t), nil
		}
		return self.s_f_of_t.Predict(t), nil
	case "V":
		return self.mu_g_of_t.Predict(t), nil
	default:
		return 0, fmt.Errorf("unknown saturation property kind `%s`", kind)
	}
}

/*
Evaluate a property from two independent state inputs.

    Args:
        kind: property to evaluate, only "H"
        in1, v1: first input name and value
        in2, v2: second input name and value

    Returns:
        property value, SI units

    Notes:
        The supported pair is H(P, S). Pressure is reduced to the
        saturation temperature; an entropy above the saturated vapour
        entropy is resolved with a constant cp ideal superheat
        extension, an entropy below it by quality inside the dome.
*/
func (self *RefrigerantTable) state_property(kind string, in1 string, v1 float64, in2 string, v2 float64) (float64, error) {
	if kind != "H" || in1 != "P" || in2 != "S" {
		return 0, fmt.Errorf("unsupported state property %s(%s, %s)", kind, in1, in2)
	}
	p, s := v1, v2

	if p < self.p_min || p > self.p_max {
		return 0, &PropertyEvaluationError{Fluid: self.name, Kind: "Tsat(P)", Input: p}
	}
	t_sat := self.t_of_p.Predict(p)

	h_f := self.h_f_of_t.Predict(t_sat)
	h_g := self.h_g_of_t.Predict(t_sat)
	s_f := self.s_f_of_t.Predict(t_sat)
	s_g := self.s_g_of_t.Predict(t_sat)

	if s <= s_g {
		// inside the dome: enthalpy from quality
		q := (s - s_f) / (s_g - s_f)
		return h_f + q*(h_g-h_f), nil
	}

	// superheated vapour: T ds = cp dT along the isobar
	t_sat_k := t_sat + t_zero_k
	t_k := t_sat_k * math.Exp((s-s_g)/self.cp_vapor)
	return h_g + self.cp_vapor*(t_k-t_sat_k), nil
}
