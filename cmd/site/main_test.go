package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfman30/smilebright-dental/internal/app/bootstrap"
	appconfig "github.com/wolfman30/smilebright-dental/internal/config"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		Port:               "0",
		Env:                "test",
		PublicBaseURL:      "https://smilebrightdental.in",
		BookingEndpointURL: "https://forms.example.com/f/test",
		BookingTimeout:     15 * time.Second,
		BookingAutoClose:   3 * time.Second,
		BookingRateLimit:   10,
		SessionTTL:         time.Hour,
		VisitorIdleTTL:     time.Minute,
		SessionStore:       "memory",
	}
}

func quietLogger() *logging.Logger {
	return logging.NewWithWriter("error", io.Discard)
}

func TestNewAppServesHome(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(), quietLogger(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.Equal(t, ":0", a.server.Addr)
	assert.Equal(t, 20*time.Second, a.server.WriteTimeout)

	rr := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewAppWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.SessionStore = "redis"
	cfg.RedisAddr = mr.Addr()

	a, err := newApp(context.Background(), cfg, quietLogger(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	rr := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNewAppRequiresSecretInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Env = "production"

	_, err := newApp(context.Background(), cfg, quietLogger(), prometheus.NewRegistry())
	assert.ErrorIs(t, err, bootstrap.ErrSessionSecretRequired)
}

func TestNewAppRejectsBadEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.BookingEndpointURL = ""

	_, err := newApp(context.Background(), cfg, quietLogger(), prometheus.NewRegistry())
	assert.Error(t, err)
}
