package translation

import (
	"testing"

	"github.com/tj/assert"
	"golang.org/x/text/language"
)

func TestCondition(t *testing.T) {
	cases := map[string]string{
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

	assert.Len(t, conditions, len(cases))
	for in, expected := range cases {
		assert.Equal(t, expected, Condition(in), in)
	}
}

func TestDescription(t *testing.T) {
	cases := map[string]string{
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

	assert.Len(t, descriptions, len(cases))
	for in, expected := range cases {
		assert.Equal(t, expected, Description(in), in)
	}
}

func TestUnmappedIsIdentity(t *testing.T) {
	inputs := []string{"", "Volcano", "light breeze", "ragged thunderstorm", "Zachmurzenie", "  Rain  ", "🌧"}

	for _, in := range inputs {
		assert.Equal(t, in, Condition(in))
		assert.Equal(t, in, Description(in))
	}
}

func TestConditionIsCaseSensitive(t *testing.T) {
	inputs := []string{"rain", "CLEAR", "clouds", "tHUNDERSTORM"}

	for _, in := range inputs {
		assert.Equal(t, in, Condition(in))
	}
}

func TestDescriptionCapitalizedKeys(t *testing.T) {
	cases := map[string]string{
		"heavy snow":         "Intensywny śnieg",
		"sleet":              "Deszcz ze śniegiem",
		"snow":               "Śnieg",
		"light shower sleet": "Lekki przelotny deszcz ze śniegiem",
		"HEAVY SHOWER SNOW":  "Intensywny przelotny śnieg",
	}

	for in, expected := range cases {
		assert.Equal(t, expected, Description(in), in)
	}
}

func TestDescriptionLowercaseKeysAreExact(t *testing.T) {
	inputs := []string{"Light Rain", "CLEAR SKY", "Few Clouds"}

	for _, in := range inputs {
		assert.Equal(t, in, Description(in))
	}
}

func TestLocale(t *testing.T) {
	assert.Equal(t, language.Polish, Locale)
	assert.Equal(t, "pl", Locale.String())
}
