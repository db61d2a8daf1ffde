package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

const owm_base_url = "https://api.openweathermap.org/data/2.5/weather"

// WeatherSupplier is one source of the ambient (T, P, RH) triple.
// Suppliers are tried in order; a failing supplier is logged and
// skipped, never retried.
type WeatherSupplier interface {
	name() string
	get_ambient() (AmbientCondition, error)
}

// OWMSupplier fetches the current weather from OpenWeatherMap.
type OWMSupplier struct {
	lat      string
	lon      string
	city     string
	api_key  string
	base_url string
	client   *http.Client
}

func NewOWMSupplier(wc WeatherConfig) *OWMSupplier {
	return &OWMSupplier{
		lat:      wc.lat,
		lon:      wc.lon,
		city:     wc.city,
		api_key:  wc.api_key,
		base_url: owm_base_url,
		client:   &http.Client{Timeout: wc.timeout},
	}
}

func (self *OWMSupplier) name() string {
	return "openweathermap"
}

/*
Fetch the ambient condition from the OpenWeatherMap current weather
endpoint.

    Returns:
        ambient condition

    Notes:
        The API reports pressure in hPa and humidity in percent; both
        are converted to SI here. Location is lat/lon when set,
        otherwise the city query.
*/
func (self *OWMSupplier) get_ambient() (AmbientCondition, error) {
	if self.api_key == "" {
		return AmbientCondition{}, fmt.Errorf("no OpenWeatherMap API key configured")
	}

	params := url.Values{}
	params.Set("appid", self.api_key)
	params.Set("units", "metric")
	if self.lat != "" && self.lon != "" {
		params.Set("lat", self.lat)
		params.Set("lon", self.lon)
	} else {
		params.Set("q", self.city)
	}

	resp, err := self.client.Get(self.base_url + "?" + params.Encode())
	if err != nil {
		return AmbientCondition{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AmbientCondition{}, fmt.Errorf("openweathermap returned status %d", resp.StatusCode)
	}

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Pressure float64 `json:"pressure"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AmbientCondition{}, err
	}

	return AmbientCondition{
		t_ambient: payload.Main.Temp,
		p_ambient: payload.Main.Pressure * 100.0,
		rh:        payload.Main.Humidity / 100.0,
	}, nil
}

// one row of the manual weather input file
type ManualWeatherRow struct {
	TAmbient float64 `csv:"t_ambient_c"`
	PAmbient float64 `csv:"p_ambient_pa"`
	RH       float64 `csv:"rh_fraction"`
}

// FileSupplier reads a manual ambient condition from a CSV file. Only
// the first data row is used.
type FileSupplier struct {
	path string
}

func NewFileSupplier(path string) *FileSupplier {
	return &FileSupplier{path: path}
}

func (self *FileSupplier) name() string {
	return "manual input file"
}

func (self *FileSupplier) get_ambient() (AmbientCondition, error) {
	if self.path == "" {
		return AmbientCondition{}, fmt.Errorf("no manual weather input file configured")
	}

	file, err := os.Open(self.path)
	if err != nil {
		return AmbientCondition{}, err
	}
	defer file.Close()

	var rows []*ManualWeatherRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return AmbientCondition{}, err
	}
	if len(rows) == 0 {
		return AmbientCondition{}, fmt.Errorf("manual weather file `%s` has no data rows", self.path)
	}

	r := rows[0]
	return AmbientCondition{t_ambient: r.TAmbient, p_ambient: r.PAmbient, rh: r.RH}, nil
}

// DefaultSupplier returns the built in safe defaults (typical Kolkata
// summer). It never fails and terminates every supplier chain.
type DefaultSupplier struct{}

func (self DefaultSupplier) name() string {
	return "built-in defaults"
}

func (self DefaultSupplier) get_ambient() (AmbientCondition, error) {
	return AmbientCondition{t_ambient: 32.0, p_ambient: 101325.0, rh: 0.7}, nil
}

// build_suppliers assembles the ordered supplier chain for a
// configuration: API, manual file, defaults.
func build_suppliers(wc WeatherConfig) []WeatherSupplier {
	return []WeatherSupplier{
		NewOWMSupplier(wc),
		NewFileSupplier(wc.input_file),
		DefaultSupplier{},
	}
}

/*
Resolve the ambient condition from an ordered supplier chain.

    Args:
        suppliers: suppliers in preference order

    Returns:
        the first successfully supplied ambient condition

    Notes:
        A supplied condition with a humidity outside [0, 1] or a non
        positive pressure counts as a failure of that supplier. The
        chain ends with the defaults, so resolution always succeeds.
*/
func resolve_weather(suppliers []WeatherSupplier) AmbientCondition {
	for _, s := range suppliers {
		ac, err := s.get_ambient()
		if err != nil {
			log.Warnf("weather from %s failed: %v", s.name(), err)
			continue
		}
		if ac.rh < 0.0 || ac.rh > 1.0 || ac.p_ambient <= 0.0 {
			log.Warnf("weather from %s rejected: implausible reading T=%.2f P=%.0f RH=%.3f",
				s.name(), ac.t_ambient, ac.p_ambient, ac.rh)
			continue
		}
		log.Infof("ambient conditions supplied by %s", s.name())
		return ac
	}

	ac, _ := DefaultSupplier{}.get_ambient()
	return ac
}
