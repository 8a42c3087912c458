package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/wolfman30/smilebright-dental/internal/http/middleware"
	"github.com/wolfman30/smilebright-dental/internal/site"
	"github.com/wolfman30/smilebright-dental/internal/visitor"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Site               *site.Handler
	Signer             *visitor.Signer
	Health             site.Pinger
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	SecureCookies      bool

	// BookingRateLimit is the per-IP submissions allowed per minute; 0 disables it.
	BookingRateLimit int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints (health checks, crawlers)
	r.Group(func(public chi.Router) {
		public.Get("/health", site.Health(cfg.Health))
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		public.Get("/sitemap.xml", cfg.Site.Sitemap)
		public.Get("/robots.txt", cfg.Site.Robots)
	})

	// Pages and booking interactions, keyed by the visitor cookie
	r.Group(func(pages chi.Router) {
		pages.Use(httpmiddleware.Visitor(cfg.Signer, cfg.SecureCookies, cfg.Logger))

		pages.Get("/", cfg.Site.Home)
		pages.Get("/services", cfg.Site.Services)
		pages.Post("/theme", cfg.Site.ToggleTheme)

		pages.Route("/booking", func(b chi.Router) {
			b.Get("/state", cfg.Site.BookingState)
			b.Post("/open", cfg.Site.OpenBooking)
			b.Post("/close", cfg.Site.CloseBooking)
			b.With(httpmiddleware.RateLimit(cfg.BookingRateLimit, time.Minute)).
				Post("/submit", cfg.Site.SubmitBooking)
		})
	})

	return r
}
