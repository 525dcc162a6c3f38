package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/message"
	"github.com/meaeduarda/cronossolutions/internal/middleware"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
)

type planResponse struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon,omitempty"`
	CustomQuote     bool     `json:"custom_quote"`
	OneTime         bool     `json:"one_time"`
	DiscountPercent int      `json:"discount_percent"`
	Months          int      `json:"months,omitempty"`
	Features        []string `json:"features"`
	pricing.Formatted
}

func (a *App) planView(d domain.DerivedPricing) planResponse {
	p := d.Plan
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return planResponse{
		Key:             p.Key,
		Name:            p.Name,
		Icon:            p.Icon,
		CustomQuote:     d.IsCustomQuote,
		OneTime:         p.IsOneTime,
		DiscountPercent: p.DiscountPercent,
		Months:          p.BillingPeriodMonths,
		Features:        features,
		Formatted:       a.Format.Format(d),
	}
}

func (a *App) ListPlans(w http.ResponseWriter, r *http.Request) {
	items := make([]planResponse, 0, len(a.Catalog.Keys()))
	for _, p := range a.Catalog.Plans() {
		items = append(items, a.planView(pricing.Derive(p)))
	}
	a.json(w, http.StatusOK, map[string]any{
		"version":  a.Catalog.Version(),
		"currency": a.Format.CurrencyCode(),
		"symbol":   a.Format.Symbol(),
		"items":    items,
	})
}

func (a *App) GetPlan(w http.ResponseWriter, r *http.Request) {
	d, err := a.Calculator.Derive(chi.URLParam(r, "key"))
	if err != nil {
		a.planError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, a.planView(d))
}

func (a *App) PlanMessage(w http.ResponseWriter, r *http.Request) {
	text, err := a.compose(r)
	if err != nil {
		a.planError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"text": text, "url": a.Dispatcher.URL(text)})
}

// PlanWhatsApp redirects the visitor straight to the prefilled conversation.
func (a *App) PlanWhatsApp(w http.ResponseWriter, r *http.Request) {
	text, err := a.compose(r)
	if err != nil {
		a.planError(w, r, err)
		return
	}
	http.Redirect(w, r, a.Dispatcher.URL(text), http.StatusFound)
}

func (a *App) compose(r *http.Request) (string, error) {
	labels := message.LabelsFor(middleware.LocaleFromContext(r.Context()))
	return a.Composer.WithLabels(labels).Compose(chi.URLParam(r, "key"))
}

func (a *App) planError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "plan not found")
		return
	}
	a.Logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("plan request failed")
	a.error(w, http.StatusInternalServerError, "internal", "failed to load plan")
}
