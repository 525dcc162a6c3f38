package handlers

import (
	"net/http"
)

// Health reports liveness and the catalog revision being served.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if a.Catalog != nil {
		resp["catalog_version"] = a.Catalog.Version()
	}
	a.json(w, http.StatusOK, resp)
}
