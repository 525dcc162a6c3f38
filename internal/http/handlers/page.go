package handlers

import (
	"net/http"
	"time"

	"github.com/meaeduarda/cronossolutions/internal/middleware"
	"github.com/meaeduarda/cronossolutions/internal/render"
	"github.com/meaeduarda/cronossolutions/internal/site"
)

// PricingPage serves the host page with every plan card rendered. Cards
// that fail to render keep their static markup. Returning visitors get
// data-last-visit on the body, plus data-visited-today so the page can
// skip its preloader.
func (a *App) PricingPage(w http.ResponseWriter, r *http.Request) {
	var attrs []render.Attr
	if info, ok := middleware.VisitFromContext(r.Context()); ok && info.Previous != nil {
		prev := info.Previous
		attrs = append(attrs, render.Attr{Key: "data-last-visit", Val: prev.LastVisit.UTC().Format(time.RFC3339)})
		if prev.SameDay(a.now()) {
			attrs = append(attrs, render.Attr{Key: "data-visited-today", Val: "true"})
		}
	}

	html, results, err := a.Renderer.RenderDocument(site.PricingPage(), attrs...)
	if err != nil {
		a.Logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("pricing page render failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to render page")
		return
	}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		a.Logger.Warn().Int("failed", failed).Int("cards", len(results)).Msg("pricing page rendered with failures")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
