package main

import (
	"errors"
	"fmt"
)

// PropertyEvaluationError is returned when a refrigerant or moist air
// property is requested outside the validity range of the underlying
// correlation or table. It is fatal for the current run.
type PropertyEvaluationError struct {
	Fluid string
	Kind  string
	Input float64
}

func (e *PropertyEvaluationError) Error() string {
	return fmt.Sprintf("property evaluation failed: %s of %s at %g is outside the correlation range", e.Kind, e.Fluid, e.Input)
}

// InvalidGeometryError is returned by configuration validation when a
// dimension that must be positive is not. No sweep is started.
type InvalidGeometryError struct {
	Field string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s = %g must be positive", e.Field, e.Value)
}

// ErrNoValidOptimum is returned by the optimum selection when no sweep
// sample has a positive compressor work.
var ErrNoValidOptimum = errors.New("no sweep sample with positive compressor work, no valid optimum exists")
