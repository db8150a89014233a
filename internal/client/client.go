// Package client implements a single-shot OpenWeatherMap current weather client.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/context/ctxhttp"

	"github.com/katiamach/pogoda/internal/model"
)

const (
	// DefaultBaseURL is the OpenWeatherMap API root.
	DefaultBaseURL = "https://api.openweathermap.org"

	// DefaultTimeout bounds each of the connect, read and write phases.
	DefaultTimeout = 30 * time.Second

	weatherPath     = "/data/2.5/weather"
	maxResponseSize = 1 << 20
)

// Config contains client endpoint and timeouts.
type Config struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultConfig returns production endpoint with 30 seconds timeouts.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		ConnectTimeout: DefaultTimeout,
		ReadTimeout:    DefaultTimeout,
		WriteTimeout:   DefaultTimeout,
	}
}

// Client fetches current weather. It never retries and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates new Client. Zero timeouts fall back to DefaultTimeout.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultTimeout
	}

	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
		ExpectContinueTimeout: time.Second,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			// net/http has no separate write deadline for clients,
			// so the whole exchange is bounded by the sum of the phases
			Timeout: cfg.ConnectTimeout + cfg.WriteTimeout + cfg.ReadTimeout,
		},
	}
}

// Fetch issues exactly one request for the current weather of query.City.
// Request errors are *NetworkError, *DecodeError or *ProviderError; an invalid
// query is rejected before anything is sent.
func (c *Client) Fetch(ctx context.Context, query model.WeatherQuery, apiKey string) (*model.WeatherResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	resp, err := ctxhttp.Get(ctx, c.httpClient, c.requestURL(query, apiKey))
	if err != nil {
		return nil, &NetworkError{Err: stripKey(err, apiKey)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// the status is the error, the body only adds the provider message
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return nil, newProviderError(resp.StatusCode, body)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	res, err := decode(body)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	return res, nil
}

func (c *Client) requestURL(query model.WeatherQuery, apiKey string) string {
	params := url.Values{}
	params.Set("q", query.City)
	params.Set("appid", apiKey)
	params.Set("units", string(query.Units))

	return c.baseURL + weatherPath + "?" + params.Encode()
}

type response struct {
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

var (
	errNoMain       = errors.New("response has no main section")
	errNoTemp       = errors.New("response has no temperature")
	errNoFeelsLike  = errors.New("response has no feels like temperature")
	errNotFinite    = errors.New("temperature is not a finite number")
	errNoConditions = errors.New("response has no weather conditions")
	errEmptyMain    = errors.New("weather condition is empty")
	errEmptyDesc    = errors.New("weather description is empty")
)

func decode(body []byte) (*model.WeatherResult, error) {
	var res response
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch {
	case res.Main == nil:
		return nil, errNoMain
	case res.Main.Temp == nil:
		return nil, errNoTemp
	case res.Main.FeelsLike == nil:
		return nil, errNoFeelsLike
	case !finite(*res.Main.Temp) || !finite(*res.Main.FeelsLike):
		return nil, errNotFinite
	case len(res.Weather) == 0:
		return nil, errNoConditions
	case res.Weather[0].Main == "":
		return nil, errEmptyMain
	case res.Weather[0].Description == "":
		return nil, errEmptyDesc
	}

	// only the primary condition is used
	return &model.WeatherResult{
		Temperature:          *res.Main.Temp,
		FeelsLike:            *res.Main.FeelsLike,
		ConditionMain:        res.Weather[0].Main,
		ConditionDescription: res.Weather[0].Description,
	}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// url.Error embeds the request URL, which carries the API key.
func stripKey(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), "***"),
		Err: urlErr.Err,
	}
}
