package service

import (
	"context"
	"errors"
	"sync"

	"github.com/katiamach/pogoda/internal/model"
)

// ErrBusy is returned when a fetch is already in flight.
var ErrBusy = errors.New("weather fetch is already in progress")

// Task is a handle of a fetch running in background.
type Task struct {
	cancel  context.CancelFunc
	done    chan struct{}
	outcome model.FetchOutcome
}

// Done is closed when the outcome is ready.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the fetch finishes and returns its outcome.
func (t *Task) Wait() model.FetchOutcome {
	<-t.done
	return t.outcome
}

// Cancel aborts the request and any pending retry delay.
// The outcome of a cancelled task has model.KindCanceled.
func (t *Task) Cancel() {
	t.cancel()
}

// FetchWeatherAsync starts FetchWeather in a new goroutine.
func (ws *WeatherService) FetchWeatherAsync(ctx context.Context, city, apiKey string) *Task {
	ctx, cancel := context.WithCancel(ctx)

	t := &Task{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		t.outcome = ws.FetchWeather(ctx, city, apiKey)
	}()

	return t
}

// Fetcher keeps at most one fetch in flight for a single control,
// e.g. a button that must not trigger a second request while busy.
type Fetcher struct {
	service *WeatherService
	apiKey  string

	mu      sync.Mutex
	current *Task
}

// NewFetcher creates new Fetcher.
func NewFetcher(service *WeatherService, apiKey string) *Fetcher {
	return &Fetcher{service: service, apiKey: apiKey}
}

// Busy reports whether a fetch is outstanding.
func (f *Fetcher) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.busy()
}

func (f *Fetcher) busy() bool {
	if f.current == nil {
		return false
	}

	select {
	case <-f.current.Done():
		return false
	default:
		return true
	}
}

// Start begins a fetch unless one is already outstanding.
func (f *Fetcher) Start(ctx context.Context, city string) (*Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.busy() {
		return nil, ErrBusy
	}

	f.current = f.service.FetchWeatherAsync(ctx, city, f.apiKey)
	return f.current, nil
}

// Replace cancels the outstanding fetch, if any, and begins a new one.
func (f *Fetcher) Replace(ctx context.Context, city string) *Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != nil {
		f.current.Cancel()
	}

	f.current = f.service.FetchWeatherAsync(ctx, city, f.apiKey)
	return f.current
}

// Stop cancels the outstanding fetch, e.g. when the caller goes away.
func (f *Fetcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current != nil {
		f.current.Cancel()
		f.current = nil
	}
}
