// Package model contains the values passed between the weather client, the fetch orchestrator and its callers.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Units is a provider unit system.
type Units string

// Supported unit systems.
const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// Query validation errors.
var (
	ErrEmptyCity    = errors.New("city must not be empty")
	ErrUnknownUnits = errors.New("unknown units")
)

// WeatherQuery contains weather request parameters.
type WeatherQuery struct {
	City  string
	Units Units
}

// NewQuery creates metric query for the given city.
func NewQuery(city string) WeatherQuery {
	return WeatherQuery{City: strings.TrimSpace(city), Units: UnitsMetric}
}

// Validate checks that the query can be sent to the provider.
func (q WeatherQuery) Validate() error {
	if strings.TrimSpace(q.City) == "" {
		return ErrEmptyCity
	}

	switch q.Units {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnits, q.Units)
	}
}

// WeatherResult contains current weather for a city.
type WeatherResult struct {
	Temperature          float64 `json:"temperature"`
	FeelsLike            float64 `json:"feelsLike"`
	ConditionMain        string  `json:"conditionMain"`
	ConditionDescription string  `json:"conditionDescription"`
}
