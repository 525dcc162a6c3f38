package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meaeduarda/cronossolutions/internal/http/handlers"
	"github.com/meaeduarda/cronossolutions/internal/middleware"
)

// Options carries the request-pipeline settings taken from infra.Config.
type Options struct {
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.With(middleware.LastVisit(app.Visits, app.Logger, app.Now)).Get("/", app.PricingPage)
	r.Get("/v1/visit", app.Visit)

	r.Route("/v1/plans", func(r chi.Router) {
		r.Get("/", app.ListPlans)
		r.Get("/{key}", app.GetPlan)
		r.Get("/{key}/message", app.PlanMessage)
		r.Get("/{key}/whatsapp", app.PlanWhatsApp)
	})

	limit := opts.RateLimitPerMin
	if limit <= 0 {
		limit = 30
	}
	r.With(middleware.RateLimit(limit, time.Minute)).Post("/v1/contact", app.Contact)

	return r
}
