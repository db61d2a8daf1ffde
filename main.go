package main

import (
	"errors"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"
)

/*
Execute one performance estimation run.

    Args:
        cfg: validated run configuration

    Returns:
        the run result

    Notes:
        Sequential pipeline: resolve weather, derive psychrometric
        states, compute cycle constants, sweep, select, export. A
        missing optimum is a reported outcome, not an error; property
        and geometry failures abort the run.
*/
func run(cfg Config) (*RunResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	prop, err := new_refrigerant_table(cfg.refrigerant)
	if err != nil {
		return nil, err
	}

	ac := resolve_weather(build_suppliers(cfg.weather))

	states, err := resolve_ambient_states(ac, cfg.evap_dew_offset, cfg.cond_amb_offset)
	if err != nil {
		return nil, err
	}

	cyc, err := calc_cycle_constants(states.t_evap_air, states.t_cond, prop)
	if err != nil {
		return nil, err
	}

	engine := new_sweep_engine(cfg, states, cyc)
	samples := engine.run()

	var optimum *SweepSample
	index := -1
	best, idx, err := select_optimum(samples, cfg.objective)
	if err == nil {
		optimum = &best
		index = idx
	} else if !errors.Is(err, ErrNoValidOptimum) {
		return nil, err
	}

	res := new_run_result(ac, states, cyc, engine.air_flow, samples, optimum, index)

	if cfg.output.csv_path != "" {
		if err := write_sweep_csv(cfg.output.csv_path, samples); err != nil {
			return nil, err
		}
		log.Infof("Saved results to `%s`", cfg.output.csv_path)
	}

	log_run_summary(res)

	if cfg.output.sqlite_path != "" {
		store, err := OpenRunStore(cfg.output.sqlite_path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if err := store.save_run(res); err != nil {
			return nil, err
		}
		log.Infof("Archived run to `%s`", cfg.output.sqlite_path)
	}

	return res, nil
}

func main() {
	var config_path string
	flag.StringVar(&config_path, "config", "", "configuration ini file (defaults are used when omitted)")

	var serve_addr string
	flag.StringVar(&serve_addr, "serve", "", "serve run results over websocket on this address instead of exiting after one run")

	flag.Parse()

	cfg, err := load_config(config_path)
	if err != nil {
		log.Fatal(err)
	}

	if serve_addr != "" {
		srv := NewResultServer(serve_addr, func() (*RunResult, error) {
			return run(cfg)
		})
		log.Fatal(srv.Serve())
	}

	start := time.Now()

	if _, err := run(cfg); err != nil {
		log.Fatal(err)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
