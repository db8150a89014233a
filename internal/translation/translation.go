// Package translation maps English provider vocabulary to Polish.
// Unknown strings are returned unchanged.
package translation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale is the language of translated strings.
var Locale = language.Polish

var conditions = map[string]string{
	"Clear":        "Bezchmurnie",
	"Clouds":       "Zachmurzenie",
	"Rain":         "Deszcz",
	"Snow":         "Śnieg",
	"Drizzle":      "Mżawka",
	"Thunderstorm": "Burza",
	"Mist":         "Mgła",
	"Smoke":        "Dym",
	"Haze":         "Zamglenie",
	"Dust":         "Pył",
	"Fog":          "Mgła",
	"Sand":         "Piasek",
	"Ash":          "Popiół",
	"Squall":       "Szkwał",
	"Tornado":      "Tornado",
}

var descriptions = map[string]string{
	"clear sky":            "Bezchmurnie",
	"few clouds":           "Lekkie zachmurzenie",
	"scattered clouds":     "Rozproszone chmury",
	"broken clouds":        "Częściowe zachmurzenie",
	"overcast clouds":      "Całkowite zachmurzenie",
	"light rain":           "Lekki deszcz",
	"moderate rain":        "Umiarkowany deszcz",
	"heavy intensity rain": "Intensywny deszcz",
	"very heavy rain":      "Bardzo intensywny deszcz",
	"extreme rain":         "Ekstremalny deszcz",
	"freezing rain":        "Marznący deszcz",
	"light snow":           "Lekki śnieg",
	"Snow":                 "Śnieg",
	"Heavy snow":           "Intensywny śnieg",
	"Sleet":                "Deszcz ze śniegiem",
	"Light shower sleet":   "Lekki przelotny deszcz ze śniegiem",
	"Shower sleet":         "Przelotny deszcz ze śniegiem",
	"Light rain and snow":  "Lekki deszcz i śnieg",
	"Rain and snow":        "Deszcz i śnieg",
	"Light shower snow":    "Lekki przelotny śnieg",
	"Shower snow":          "Przelotny śnieg",
	"Heavy shower snow":    "Intensywny przelotny śnieg",
}

// Provider descriptions are lowercase, while some table keys are capitalized
// ("Heavy snow", "Sleet"). These keys are also reachable in case-folded form.
var foldedDescriptions = foldKeys(descriptions)

// Condition translates the main weather condition, e.g. "Clear".
// Matching is exact.
func Condition(s string) string {
	if v, ok := conditions[s]; ok {
		return v
	}

	return s
}

// Description translates the detailed weather description, e.g. "light rain".
// Capitalized table keys also match their case-folded form.
func Description(s string) string {
	if v, ok := descriptions[s]; ok {
		return v
	}
	if v, ok := foldedDescriptions[fold(s)]; ok {
		return v
	}

	return s
}

// foldKeys indexes only keys that are not already in folded form.
func foldKeys(table map[string]string) map[string]string {
	folded := make(map[string]string)
	for k, v := range table {
		if f := fold(k); f != k {
			folded[f] = v
		}
	}

	return folded
}

// cases.Caser is stateful, so a new one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
