package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/katiamach/pogoda/internal/logger"
	"github.com/katiamach/pogoda/internal/model"
	"github.com/katiamach/pogoda/internal/translation"
	"github.com/katiamach/pogoda/internal/view"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	FetchWeather(ctx context.Context, city, apiKey string) model.FetchOutcome
}

// WeatherServer is a server for current weather requests.
type WeatherServer struct {
	service WeatherService
	apiKey  string
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService, apiKey string) *WeatherServer {
	return &WeatherServer{service: service, apiKey: apiKey}
}

type weatherResponse struct {
	City string `json:"city"`
	model.WeatherResult
	Lines []string `json:"lines"`
}

// GetWeatherHandler handles current weather request.
func (s *WeatherServer) GetWeatherHandler(w http.ResponseWriter, r *http.Request) {
	city, err := validateQueryParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	outcome := s.service.FetchWeather(r.Context(), city, s.apiKey)
	w.Header().Set("Content-Language", translation.Locale.String())

	if !outcome.OK() {
		code := statusCode(outcome.Failure)
		if code >= http.StatusInternalServerError {
			logger.Error(fmt.Errorf("failed to get weather for %q: %s", city, outcome.Failure.Message))
		}

		respondErr(w, code, errors.New(view.ErrorLine(outcome.Failure)))
		return
	}

	respond(w, http.StatusOK, weatherResponse{
		City:          city,
		WeatherResult: *outcome.Result,
		Lines:         view.Lines(outcome),
	})
}

// HealthHandler reports that the server is up.
func (s *WeatherServer) HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func validateQueryParams(params url.Values) (string, error) {
	city := strings.TrimSpace(params.Get("city"))
	if city == "" {
		return "", errors.New("city parameter not provided in query")
	}

	return city, nil
}

func statusCode(f *model.Failure) int {
	if f == nil {
		return http.StatusInternalServerError
	}

	switch f.Kind {
	case model.KindInvalidRequest:
		return http.StatusBadRequest
	case model.KindProvider:
		if f.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case model.KindDecode:
		return http.StatusBadGateway
	case model.KindNetwork:
		return http.StatusGatewayTimeout
	case model.KindCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
