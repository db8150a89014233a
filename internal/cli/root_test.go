package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/katiamach/pogoda/internal/config"
)

func stubProvider(t *testing.T, status int, body string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvAPIKey, "test-key")
	t.Setenv(config.EnvBaseURL, srv.URL)
	t.Setenv(config.EnvInitialDelay, "1ms")
	t.Setenv(config.EnvMaxDelay, "2ms")
}

func run(args ...string) (string, error) {
	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFetchCmd(t *testing.T) {
	stubProvider(t, http.StatusOK, `{"main":{"temp":20.0,"feels_like":19.0},"weather":[{"main":"Rain","description":"light rain"}]}`)

	out, err := run("fetch", "Warsaw")
	assert.Nil(t, err)
	assert.Equal(t, "Temperatura: 20.0°C\nTemperatura odczuwalna: 19.0°C\nPogoda: Deszcz\nOpis: Lekki deszcz\n", out)
}

func TestFetchCmdFailure(t *testing.T) {
	stubProvider(t, http.StatusNotFound, `{"cod":"404","message":"city not found"}`)

	out, err := run("fetch", "Nowhere")
	assert.NotNil(t, err)
	assert.Equal(t, "Błąd podczas pobierania danych: provider error 404: city not found\n", out)
}

func TestFetchCmdWithoutAPIKey(t *testing.T) {
	stubProvider(t, http.StatusOK, `{}`)
	t.Setenv(config.EnvAPIKey, "")

	_, err := run("fetch", "Warsaw")
	assert.True(t, errors.Is(err, config.ErrNoAPIKey))
}

func TestFetchCmdArgs(t *testing.T) {
	_, err := run("fetch")
	assert.NotNil(t, err)
}

func TestFetchCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	cfg := config.Default()
	cfg.APIKey = "test-key"
	cfg.Provider.BaseURL = srv.URL

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := fetch(ctx, &out, newService(cfg), cfg.APIKey, "Warsaw")
	assert.NotNil(t, err)
	assert.Contains(t, out.String(), "Błąd podczas pobierania danych")
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc")
	defer SetVersionInfo("dev", "none")

	out, err := run("version")
	assert.Nil(t, err)
	assert.Equal(t, "pogoda 1.2.3 (commit: abc)\n", out)
}
