package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/message"
	"github.com/meaeduarda/cronossolutions/internal/middleware"
)

// Contact validates the contact form and returns the WhatsApp link that
// carries it. Nothing is sent server-side.
func (a *App) Contact(w http.ResponseWriter, r *http.Request) {
	var form message.ContactForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&form); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	form.Normalize()
	check, err := form.Validate()
	if err != nil {
		var verr *message.ValidationError
		if errors.As(err, &verr) && errors.Is(err, domain.ErrInvalidContact) {
			a.error(w, http.StatusBadRequest, "invalid_contact", verr.Message)
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to validate contact")
		return
	}

	labels := message.LabelsFor(middleware.LocaleFromContext(r.Context()))
	text := message.ComposeContact(form, labels)
	resp := map[string]string{"url": a.Dispatcher.ContactURL(text)}
	if check.Warning {
		resp["warning"] = check.Message
	}
	a.json(w, http.StatusOK, resp)
}
