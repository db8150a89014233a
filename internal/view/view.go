// Package view renders a fetch outcome as Polish text lines.
package view

import (
	"fmt"

	"github.com/katiamach/pogoda/internal/model"
)

// ErrorPrefix starts every failure line.
const ErrorPrefix = "Błąd podczas pobierania danych: "

// Lines returns four lines for a result or a single error line for a failure.
func Lines(outcome model.FetchOutcome) []string {
	if !outcome.OK() {
		return []string{ErrorLine(outcome.Failure)}
	}

	res := outcome.Result
	return []string{
		fmt.Sprintf("Temperatura: %.1f°C", res.Temperature),
		fmt.Sprintf("Temperatura odczuwalna: %.1f°C", res.FeelsLike),
		fmt.Sprintf("Pogoda: %s", res.ConditionMain),
		fmt.Sprintf("Opis: %s", res.ConditionDescription),
	}
}

// ErrorLine renders a failure with its underlying cause.
func ErrorLine(f *model.Failure) string {
	if f == nil {
		return ErrorPrefix + "brak danych"
	}

	return ErrorPrefix + f.Message
}
