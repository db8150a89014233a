package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katiamach/pogoda/internal/client"
	"github.com/katiamach/pogoda/internal/logger"
	"github.com/katiamach/pogoda/internal/model"
	"github.com/katiamach/pogoda/internal/retry"
	"github.com/katiamach/pogoda/internal/translation"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go WeatherClient

// Request errors.
var (
	ErrEmptyCity   = errors.New("city name is empty")
	ErrEmptyAPIKey = errors.New("api key is not configured")
)

// WeatherClient provides a single weather request.
type WeatherClient interface {
	Fetch(ctx context.Context, query model.WeatherQuery, apiKey string) (*model.WeatherResult, error)
}

// WeatherService fetches translated current weather.
type WeatherService struct {
	client WeatherClient
	retry  retry.Config
}

// Option configures WeatherService.
type Option func(*WeatherService)

// WithRetryConfig overrides retry.DefaultConfig.
func WithRetryConfig(cfg retry.Config) Option {
	return func(ws *WeatherService) {
		ws.retry = cfg
	}
}

// New creates new WeatherService.
func New(client WeatherClient, opts ...Option) *WeatherService {
	ws := &WeatherService{
		client: client,
		retry:  retry.DefaultConfig,
	}
	for _, opt := range opts {
		opt(ws)
	}

	return ws
}

// FetchWeather gets metric weather for the city with retries and translates conditions to Polish.
// Errors are returned as a failed outcome.
func (ws *WeatherService) FetchWeather(ctx context.Context, city, apiKey string) model.FetchOutcome {
	query := model.NewQuery(city)
	if query.City == "" {
		return model.Fail(model.KindInvalidRequest, 0, ErrEmptyCity.Error())
	}
	if strings.TrimSpace(apiKey) == "" {
		return model.Fail(model.KindInvalidRequest, 0, ErrEmptyAPIKey.Error())
	}

	log := logger.WithFields(logger.Fields{
		"request_id": uuid.NewString(),
		"city":       query.City,
	})

	res, err := retry.Do(ctx, ws.retry, func(ctx context.Context) (*model.WeatherResult, error) {
		return ws.client.Fetch(ctx, query, apiKey)
	}, retry.WithNotify(func(attempt int, err error, wait time.Duration) {
		log.WithFields(logger.Fields{
			"attempt": attempt,
			"wait":    wait.String(),
			"error":   err.Error(),
		}).Warn("weather fetch attempt failed, retrying")
	}))
	if err != nil {
		outcome := failure(err)
		log.WithFields(logger.Fields{
			"kind":  outcome.Failure.Kind,
			"error": err.Error(),
		}).Error("weather fetch failed")

		return outcome
	}

	return model.Success(model.WeatherResult{
		Temperature:          res.Temperature,
		FeelsLike:            res.FeelsLike,
		ConditionMain:        translation.Condition(res.ConditionMain),
		ConditionDescription: translation.Description(res.ConditionDescription),
	})
}

func failure(err error) model.FetchOutcome {
	var (
		providerErr *client.ProviderError
		decodeErr   *client.DecodeError
		networkErr  *client.NetworkError
	)

	// context errors go first: an abort during a retry wait also matches the last attempt's error
	switch {
	case errors.Is(err, context.Canceled):
		return model.Fail(model.KindCanceled, 0, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return model.Fail(model.KindNetwork, 0, err.Error())
	case errors.As(err, &providerErr):
		return model.Fail(model.KindProvider, providerErr.StatusCode, providerErr.Error())
	case errors.As(err, &decodeErr):
		return model.Fail(model.KindDecode, 0, decodeErr.Error())
	case errors.As(err, &networkErr):
		return model.Fail(model.KindNetwork, 0, err.Error())
	case errors.Is(err, model.ErrEmptyCity), errors.Is(err, model.ErrUnknownUnits):
		return model.Fail(model.KindInvalidRequest, 0, err.Error())
	default:
		return model.Fail(model.KindNetwork, 0, err.Error())
	}
}
