// Package site serves the clinic pages and the booking interaction endpoints.
package site

import (
	"bytes"
	"errors"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wolfman30/smilebright-dental/internal/booking"
	"github.com/wolfman30/smilebright-dental/internal/catalog"
	"github.com/wolfman30/smilebright-dental/internal/media"
	"github.com/wolfman30/smilebright-dental/internal/theme"
	"github.com/wolfman30/smilebright-dental/internal/visitor"
	"github.com/wolfman30/smilebright-dental/pkg/logging"
)

const (
	siteName      = "SmileBright Dental"
	defaultTitle  = "SmileBright Dental - Your Journey to a Perfect Smile"
	titleTemplate = "%s | SmileBright Dental"

	homeDescription     = "SmileBright Dental Clinic offers world-class dental care in Ludhiana. Gentle, modern & trusted by 1000+ patients. Book your appointment today."
	servicesDescription = "Explore the full range of dental services at SmileBright Dental Clinic, from teeth whitening and veneers to implants and emergency care in Ludhiana."
)

var errMissingVisitor = errors.New("site: missing visitor")

// CatalogObserver records services page queries.
type CatalogObserver interface {
	ObserveCatalogQuery(category string, empty bool)
}

// Options configures a Handler.
type Options struct {
	Registry        *booking.Registry
	Avatars         *media.Avatars
	Catalog         CatalogObserver
	Logger          *logging.Logger
	BaseURL         string
	GAMeasurementID string
	ClinicPhone     string
	AutoClose       time.Duration
	SecureCookies   bool
}

// Handler renders pages and drives each visitor's booking modal.
type Handler struct {
	registry  *booking.Registry
	templates pageTemplates
	catalog   CatalogObserver
	logger    *logging.Logger
	clinic    Clinic
	baseURL   string
	gaID      string
	autoClose time.Duration
	secure    bool
	now       func() time.Time
}

// NewHandler parses the embedded templates and binds the visitor registry.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Registry == nil {
		return nil, errors.New("site: registry required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Avatars == nil {
		opts.Avatars = media.NewAvatars("")
	}
	if opts.AutoClose <= 0 {
		opts.AutoClose = booking.DefaultAutoClose
	}
	templates, err := parseTemplates(opts.Avatars)
	if err != nil {
		return nil, err
	}
	clinic := defaultClinic
	if opts.ClinicPhone != "" {
		clinic.Phone = opts.ClinicPhone
	}
	return &Handler{
		registry:  opts.Registry,
		templates: templates,
		catalog:   opts.Catalog,
		logger:    opts.Logger,
		clinic:    clinic,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		gaID:      strings.TrimSpace(opts.GAMeasurementID),
		autoClose: opts.AutoClose,
		secure:    opts.SecureCookies,
		now:       time.Now,
	}, nil
}

type bookingData struct {
	Open           bool
	View           booking.View
	Services       []string
	Invalid        map[string]bool
	RefreshSeconds int
}

type pageData struct {
	Title           string
	Description     string
	Canonical       string
	SiteURL         string
	Path            string
	Return          string
	Dark            bool
	Clinic          Clinic
	GAMeasurementID string
	BottomNav       []navItem
	MenuNav         []navItem
	Booking         bookingData
	Content         any
}

type homeContent struct {
	Stats        []stat
	TrustChips   []string
	Pillars      []pillar
	Highlights   []catalog.Highlight
	Doctors      []Doctor
	Testimonials []Testimonial
}

type categoryPill struct {
	Label  string
	Href   string
	Active bool
}

type servicesContent struct {
	Result catalog.Result
	Pills  []categoryPill
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, r.URL.RequestURI(), nil)
}

// Services handles GET /services?category=&q=.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.renderServices(w, r, http.StatusOK, r.URL.Query(), r.URL.RequestURI(), nil)
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, ret string, invalid []string) {
	data := h.basePage(r, "/", ret, "", homeDescription, invalid)
	data.Content = homeContent{
		Stats:        stats,
		TrustChips:   trustChips,
		Pillars:      pillars,
		Highlights:   catalog.Highlights(),
		Doctors:      doctors,
		Testimonials: testimonials,
	}
	h.render(w, status, "home", data)
}

func (h *Handler) renderServices(w http.ResponseWriter, r *http.Request, status int, query url.Values, ret string, invalid []string) {
	state := catalog.StateFromQuery(query)
	result := state.Apply()
	if h.catalog != nil {
		h.catalog.ObserveCatalogQuery(string(state.Category), result.Empty)
	}

	pills := make([]categoryPill, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		q := catalog.State{Category: c, Search: state.Search}.Query()
		href := "/services"
		if enc := q.Encode(); enc != "" {
			href += "?" + enc
		}
		pills = append(pills, categoryPill{Label: string(c), Href: href, Active: c == state.Category})
	}

	data := h.basePage(r, "/services", ret, "Dental Services", servicesDescription, invalid)
	data.Content = servicesContent{Result: result, Pills: pills}
	h.render(w, status, "services", data)
}

// renderReturn re-renders the page a booking form was posted from.
func (h *Handler) renderReturn(w http.ResponseWriter, r *http.Request, status int, ret string, invalid []string) {
	u, err := url.Parse(ret)
	if err == nil && u.Path == "/services" {
		h.renderServices(w, r, status, u.Query(), ret, invalid)
		return
	}
	h.renderHome(w, r, status, ret, invalid)
}

func (h *Handler) basePage(r *http.Request, path, ret, title, description string, invalid []string) pageData {
	canonical := h.baseURL + path
	if path == "/" {
		canonical = h.baseURL
	}
	return pageData{
		Title:           title,
		Description:     description,
		Canonical:       canonical,
		SiteURL:         h.baseURL,
		Path:            path,
		Return:          ret,
		Dark:            theme.FromRequest(r) == theme.Dark,
		Clinic:          h.clinic,
		GAMeasurementID: h.gaID,
		BottomNav:       bottomNav,
		MenuNav:         menuNav,
		Booking:         h.bookingData(r, invalid),
	}
}

func (h *Handler) bookingData(r *http.Request, invalid []string) bookingData {
	data := bookingData{Services: booking.ServiceOptions}
	v, err := h.visitor(r)
	if err != nil {
		return data
	}
	open, err := v.Session.IsOpen(r.Context())
	if err != nil {
		h.logger.Warn("booking session unavailable", "visitor_id", v.ID, "error", err)
	}
	data.Open = open
	data.View = v.Modal.View()
	if data.View.State == booking.StateSuccess {
		data.RefreshSeconds = int(math.Ceil(h.autoClose.Seconds()))
	}
	if len(invalid) > 0 {
		data.Invalid = make(map[string]bool, len(invalid))
		for _, f := range invalid {
			data.Invalid[f] = true
		}
	}
	return data
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data pageData) {
	t, ok := h.templates[name]
	if !ok {
		h.logger.Error("unknown page template", "page", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	theme.AdvertiseHint(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// ToggleTheme handles POST /theme.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := theme.Toggle(theme.FromRequest(r))
	theme.Write(w, next, h.secure)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(next)})
		return
	}
	http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
}

func (h *Handler) visitor(r *http.Request) (*booking.Visitor, error) {
	id, ok := visitor.IDFromContext(r.Context())
	if !ok || id == "" {
		return nil, errMissingVisitor
	}
	return h.registry.Get(id), nil
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// safeReturn keeps redirects on this site: only absolute paths are accepted.
func safeReturn(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, `/\`) {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
