package main

import (
	"math"
	"strconv"
	"strings"
)

// OptionalFloat is a validity tagged numeric value. Quantities that are
// physically undefined for a sweep sample (COP without compressor work,
// cooling from a non-positive refrigeration effect) carry the invalid
// state explicitly instead of a bare NaN.
type OptionalFloat struct {
	val   float64
	valid bool
}

func some_value(v float64) OptionalFloat {
	return OptionalFloat{val: v, valid: true}
}

func no_value() OptionalFloat {
	return OptionalFloat{}
}

func (self OptionalFloat) is_valid() bool {
	return self.valid
}

// value returns the numeric value. Callers check is_valid first; the
// value of an invalid OptionalFloat is 0.
func (self OptionalFloat) value() float64 {
	return self.val
}

// or_nan returns the value, or NaN when invalid. Used only at the
// presentation boundary.
func (self OptionalFloat) or_nan() float64 {
	if !self.valid {
		return math.NaN()
	}
	return self.val
}

// MarshalCSV renders an invalid value as "NaN" so that the sweep table
// always has one cell per column.
func (self OptionalFloat) MarshalCSV() (string, error) {
	if !self.valid {
		return "NaN", nil
	}
	return strconv.FormatFloat(self.val, 'f', 4, 64), nil
}

func (self *OptionalFloat) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		*self = no_value()
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*self = some_value(v)
	return nil
}
