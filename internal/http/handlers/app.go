package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/meaeduarda/cronossolutions/internal/catalog"
	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/infra"
	"github.com/meaeduarda/cronossolutions/internal/message"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
	"github.com/meaeduarda/cronossolutions/internal/render"
	"github.com/meaeduarda/cronossolutions/internal/whatsapp"
)

type App struct {
	Catalog    *catalog.Catalog
	Calculator *pricing.Calculator
	Format     *pricing.Formatter
	Renderer   *render.Renderer
	Composer   *message.Composer
	Dispatcher *whatsapp.Dispatcher
	Visits     domain.VisitRepository
	Logger     zerolog.Logger
	Now        func() time.Time
}

func NewApp(cat *catalog.Catalog, format *pricing.Formatter, dispatcher *whatsapp.Dispatcher, visits domain.VisitRepository, logger zerolog.Logger) *App {
	return &App{
		Catalog:    cat,
		Calculator: pricing.NewCalculator(cat),
		Format:     format,
		Renderer:   render.NewRenderer(cat, format, render.DefaultLabels, infra.Component(logger, "render")),
		Composer:   message.NewComposer(cat, format),
		Dispatcher: dispatcher,
		Visits:     visits,
		Logger:     logger,
		Now:        time.Now,
	}
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": msg},
	})
}
