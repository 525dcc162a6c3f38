package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/middleware"
)

type visitResponse struct {
	VisitorID    *string `json:"visitor_id"`
	LastVisit    *string `json:"last_visit"`
	VisitedToday bool    `json:"visited_today"`
}

// Visit reports the last recorded page view for the visitor cookie. It
// reads only; page views are recorded by the LastVisit middleware on "/".
func (a *App) Visit(w http.ResponseWriter, r *http.Request) {
	var resp visitResponse
	id := middleware.VisitorID(r)
	if id == "" {
		a.json(w, http.StatusOK, resp)
		return
	}
	resp.VisitorID = &id

	v, err := a.Visits.Get(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		a.Logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("visit lookup failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load visit")
		return
	default:
		last := v.LastVisit.UTC().Format(time.RFC3339)
		resp.LastVisit = &last
		resp.VisitedToday = v.SameDay(a.now())
	}
	a.json(w, http.StatusOK, resp)
}
