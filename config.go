package main

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/ini.v1"
)

// independent variable of the sweep
type SweepAxis string

const (
	SweepAxisRefrigerant SweepAxis = "refrigerant"
	SweepAxisAir         SweepAxis = "air"
)

// objective of the optimum selection
type Objective string

const (
	ObjectiveMatchLoad      Objective = "match_load"
	ObjectiveWaterPerEnergy Objective = "water_per_energy"
)

// WeatherConfig selects and parameterizes the weather suppliers.
type WeatherConfig struct {
	lat        string
	lon        string
	city       string
	api_key    string
	input_file string
	timeout    time.Duration
}

// OutputConfig names the persisted outputs of a run.
type OutputConfig struct {
	csv_path    string
	sqlite_path string // empty disables the run history store
}

// Config is the immutable per run configuration. It is loaded once and
// passed down by value; no component mutates it.
type Config struct {
	refrigerant string

	// temperature offsets, K
	evap_dew_offset     float64 // t_evap_air = dew point + evap_dew_offset
	cond_amb_offset     float64 // t_cond = t_ambient + cond_amb_offset
	dew_point_tolerance float64 // t_target = dew point - dew_point_tolerance

	// heat exchanger assumptions
	u_hx    float64 // overall coefficient, W/m2 K
	a_hx    float64 // exchange area, m2
	l_vap   float64 // latent heat of vaporization of water, J/kg
	d_tube  float64 // tube inner diameter, m
	n_tubes int     // parallel evaporator tubes

	// air side assumptions
	air_velocity float64 // face velocity, m/s
	face_area    float64 // face area the air flows through, m2
	pr_air       float64 // Prandtl number of air
	k_air        float64 // thermal conductivity of air, W/m K
	mu_air       float64 // dynamic viscosity of air, Pa s

	// sweep bounds, kg/s; start is included, stop is included when it
	// lies on the step grid and candidates never exceed it
	sweep_start float64
	sweep_stop  float64
	sweep_step  float64

	axis      SweepAxis
	objective Objective

	weather WeatherConfig
	output  OutputConfig
}

// default_config returns the built in design defaults.
func default_config() Config {
	return Config{
		refrigerant:         "R134a",
		evap_dew_offset:     -10.0,
		cond_amb_offset:     3.0,
		dew_point_tolerance: 5.0,
		u_hx:                80.0,
		a_hx:                1.0,
		l_vap:               2.45e6,
		d_tube:              0.01,
		n_tubes:             1,
		air_velocity:        2.0,
		face_area:           0.1,
		pr_air:              0.71,
		k_air:               0.026,
		mu_air:              1.8e-5,
		sweep_start:         0.1,
		sweep_stop:          20.0,
		sweep_step:          0.1,
		axis:                SweepAxisRefrigerant,
		objective:           ObjectiveMatchLoad,
		weather: WeatherConfig{
			lat:     "22.5726",
			lon:     "88.3639",
			timeout: 10 * time.Second,
		},
		output: OutputConfig{
			csv_path: "awg_results.csv",
		},
	}
}

/*
Load the configuration from an ini file.

    Args:
        path: configuration file path; empty returns the defaults

    Returns:
        configuration

    Notes:
        Every key falls back to the design default, so a partial file
        is fine.
*/
func load_config(path string) (Config, error) {
	cfg := default_config()
	if path == "" {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read configuration file `%s`: %w", path, err)
	}

	cyc := file.Section("cycle")
	cfg.refrigerant = cyc.Key("refrigerant").MustString(cfg.refrigerant)
	cfg.evap_dew_offset = cyc.Key("evap_dew_offset").MustFloat64(cfg.evap_dew_offset)
	cfg.cond_amb_offset = cyc.Key("cond_amb_offset").MustFloat64(cfg.cond_amb_offset)
	cfg.dew_point_tolerance = cyc.Key("dew_point_tolerance").MustFloat64(cfg.dew_point_tolerance)

	hx := file.Section("exchanger")
	cfg.u_hx = hx.Key("u").MustFloat64(cfg.u_hx)
	cfg.a_hx = hx.Key("a").MustFloat64(cfg.a_hx)
	if hx.HasKey("ua") {
		// UA given directly: keep a = 1 so that u * a = ua
		cfg.u_hx = hx.Key("ua").MustFloat64(cfg.u_hx * cfg.a_hx)
		cfg.a_hx = 1.0
	}
	cfg.l_vap = hx.Key("latent_heat").MustFloat64(cfg.l_vap)
	cfg.d_tube = hx.Key("tube_diameter").MustFloat64(cfg.d_tube)
	cfg.n_tubes = hx.Key("n_tubes").MustInt(cfg.n_tubes)

	air := file.Section("air")
	cfg.air_velocity = air.Key("velocity").MustFloat64(cfg.air_velocity)
	cfg.face_area = air.Key("face_area").MustFloat64(cfg.face_area)
	cfg.pr_air = air.Key("prandtl").MustFloat64(cfg.pr_air)
	cfg.k_air = air.Key("conductivity").MustFloat64(cfg.k_air)
	cfg.mu_air = air.Key("viscosity").MustFloat64(cfg.mu_air)

	sw := file.Section("sweep")
	cfg.sweep_start = sw.Key("start").MustFloat64(cfg.sweep_start)
	cfg.sweep_stop = sw.Key("stop").MustFloat64(cfg.sweep_stop)
	cfg.sweep_step = sw.Key("step").MustFloat64(cfg.sweep_step)
	cfg.axis = SweepAxis(sw.Key("axis").In(string(cfg.axis), []string{
		string(SweepAxisRefrigerant), string(SweepAxisAir),
	}))
	cfg.objective = Objective(sw.Key("objective").In(string(cfg.objective), []string{
		string(ObjectiveMatchLoad), string(ObjectiveWaterPerEnergy),
	}))

	wth := file.Section("weather")
	cfg.weather.lat = wth.Key("lat").MustString(cfg.weather.lat)
	cfg.weather.lon = wth.Key("lon").MustString(cfg.weather.lon)
	cfg.weather.city = wth.Key("city").MustString(cfg.weather.city)
	cfg.weather.api_key = wth.Key("api_key").MustString(cfg.weather.api_key)
	cfg.weather.input_file = wth.Key("input_file").MustString(cfg.weather.input_file)
	cfg.weather.timeout = time.Duration(wth.Key("timeout_s").MustFloat64(cfg.weather.timeout.Seconds())) * time.Second

	out := file.Section("output")
	cfg.output.csv_path = out.Key("csv_path").MustString(cfg.output.csv_path)
	cfg.output.sqlite_path = out.Key("sqlite_path").MustString(cfg.output.sqlite_path)

	return cfg, nil
}

// ua returns the heat exchanger UA, W/K.
func (self *Config) ua() float64 {
	return self.u_hx * self.a_hx
}

// tube_geometry returns the refrigerant side flow cross section: the
// tube bore times the number of parallel tubes.
func (self *Config) tube_geometry() FlowGeometry {
	return FlowGeometry{
		d:    self.d_tube,
		area: math.Pi * self.d_tube * self.d_tube / 4.0 * float64(self.n_tubes),
	}
}

// duct_geometry returns the air side flow cross section: the face area
// with the equivalent circular diameter as the characteristic length.
func (self *Config) duct_geometry() FlowGeometry {
	return FlowGeometry{
		d:    math.Sqrt(4.0 * self.face_area / math.Pi),
		area: self.face_area,
	}
}

/*
Validate the configuration.

    Returns:
        nil, or the first violation found

    Notes:
        Geometry must be positive before any flow characterization;
        this is checked once here, never per sample.
*/
func (self *Config) validate() error {
	if self.d_tube <= 0.0 {
		return &InvalidGeometryError{Field: "tube_diameter", Value: self.d_tube}
	}
	if self.n_tubes <= 0 {
		return &InvalidGeometryError{Field: "n_tubes", Value: float64(self.n_tubes)}
	}
	if self.a_hx <= 0.0 {
		return &InvalidGeometryError{Field: "a", Value: self.a_hx}
	}
	if self.face_area <= 0.0 {
		return &InvalidGeometryError{Field: "face_area", Value: self.face_area}
	}
	if self.u_hx <= 0.0 {
		return fmt.Errorf("invalid exchanger coefficient u = %g, must be positive", self.u_hx)
	}
	if self.sweep_step <= 0.0 {
		return fmt.Errorf("invalid sweep step %g, must be positive", self.sweep_step)
	}
	if self.sweep_stop < self.sweep_start {
		return fmt.Errorf("invalid sweep bounds: stop %g is below start %g", self.sweep_stop, self.sweep_start)
	}
	if self.sweep_start <= 0.0 {
		return fmt.Errorf("invalid sweep start %g, must be positive", self.sweep_start)
	}
	return nil
}
