package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wolfman30/smilebright-dental/internal/booking"
	httpmiddleware "github.com/wolfman30/smilebright-dental/internal/http/middleware"
	"github.com/wolfman30/smilebright-dental/internal/observability/metrics"
	"github.com/wolfman30/smilebright-dental/internal/site"
	"github.com/wolfman30/smilebright-dental/internal/visitor"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

type routerFixture struct {
	handler http.Handler
	signer  *visitor.Signer
	hits    atomic.Int32
}

func newTestRouter(t *testing.T, mutate func(*Config)) *routerFixture {
	t.Helper()
	f := &routerFixture{}

	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(endpoint.Close)

	logger := logging.NewWithWriter("error", &strings.Builder{})
	reg := prometheus.NewRegistry()
	siteMetrics := metrics.NewSiteMetrics(reg)

	submitter, err := booking.NewFormSubmitter(endpoint.URL, time.Second, logger)
	require.NoError(t, err)
	registry := booking.NewRegistry(booking.Deps{
		Submitter: submitter,
		Observer:  siteMetrics,
		Logger:    logger,
		AutoClose: time.Hour,
	}, time.Hour)
	t.Cleanup(registry.Close)

	siteHandler, err := site.NewHandler(site.Options{
		Registry: registry,
		Catalog:  siteMetrics,
		Logger:   logger,
		BaseURL:  "https://smilebrightdental.in",
	})
	require.NoError(t, err)

	f.signer, err = visitor.NewSigner("router-secret", time.Hour)
	require.NoError(t, err)

	cfg := &Config{
		Logger:           logger,
		Site:             siteHandler,
		Signer:           f.signer,
		MetricsHandler:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		BookingRateLimit: 10,
	}
	if mutate != nil {
		mutate(cfg)
	}
	f.handler = New(cfg)
	return f
}

func (f *routerFixture) visitorCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := f.signer.Sign(visitor.NewID())
	require.NoError(t, err)
	return &http.Cookie{Name: httpmiddleware.VisitorCookie, Value: token}
}

func TestRouterHealthEndpoint(t *testing.T) {
	f := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Empty(t, rr.Result().Cookies(), "health checks do not mint visitors")
}

func TestRouterHealthReportsStoreOutage(t *testing.T) {
	f := newTestRouter(t, func(cfg *Config) {
		cfg.Health = func(context.Context) error { return errors.New("redis down") }
	})

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouterPagesMintVisitorCookie(t *testing.T) {
	f := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, httpmiddleware.VisitorCookie, cookies[0].Name)
}

func TestRouterBookingFlow(t *testing.T) {
	f := newTestRouter(t, nil)
	cookie := f.visitorCookie(t)

	post := func(path string, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, req)
		return rr
	}

	rr := post("/booking/open", url.Values{"source": {"fab"}, "return": {"/services"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/services", rr.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.AddCookie(cookie)
	page := httptest.NewRecorder()
	f.handler.ServeHTTP(page, req)
	assert.Contains(t, page.Body.String(), `id="booking-modal"`)

	rr = post("/booking/submit", url.Values{"name": {"Asha"}, "phone": {"123"}, "service": {"Orthodontics"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, int32(1), f.hits.Load())

	req = httptest.NewRequest(http.MethodGet, "/booking/state", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(cookie)
	state := httptest.NewRecorder()
	f.handler.ServeHTTP(state, req)
	assert.Contains(t, state.Body.String(), `"state":"success"`)
}

func TestRouterRateLimitsSubmissions(t *testing.T) {
	f := newTestRouter(t, func(cfg *Config) { cfg.BookingRateLimit = 1 })
	cookie := f.visitorCookie(t)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/booking/submit", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.RemoteAddr = "198.51.100.4:1234"
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		f.handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestRouterMetricsEndpoint(t *testing.T) {
	f := newTestRouter(t, nil)

	page := httptest.NewRecorder()
	f.handler.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/services?category=Emergency", nil))

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `smilebright_catalog_queries_total{category="Emergency",empty="false"} 1`)
}

func TestRouterSitemapAndRobots(t *testing.T) {
	f := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<urlset")

	rr = httptest.NewRecorder()
	f.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	assert.Contains(t, rr.Body.String(), "Sitemap:")
}
