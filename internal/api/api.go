package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/pogoda/internal/config"
	"github.com/katiamach/pogoda/internal/logger"
	"github.com/katiamach/pogoda/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// NewRouter creates weather api router. Access logs are written to logOut.
func NewRouter(service handler.WeatherService, cfg *config.Config, logOut io.Writer) http.Handler {
	server := handler.NewWeatherServer(service, cfg.APIKey)

	r := mux.NewRouter()

	r.HandleFunc("/weather", server.GetWeatherHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", server.HealthHandler).Methods(http.MethodGet)

	options := setupCorsOptions(cfg.Origin)
	return handlers.CombinedLoggingHandler(logOut, handlers.CORS(options...)(r))
}

// RunAPI runs weather API until ctx is done, then shuts the server down.
func RunAPI(ctx context.Context, service handler.WeatherService, cfg *config.Config) error {
	port := cfg.Port
	if port == "" {
		port = "8080"
		logger.Info(fmt.Sprintf("Defaulting to port %s", port))
	}

	w := logger.Writer()
	defer w.Close()

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           NewRouter(service, cfg, w),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          log.New(w, "", 0),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Starting weather api at port %s", port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down weather api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown: %w", err)
	}

	return nil
}
