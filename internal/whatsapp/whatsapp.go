// Package whatsapp builds the deep links that hand composed text to WhatsApp.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultEndpoint   = "https://wa.me"
	DefaultContactURL = "https://api.whatsapp.com/send"
)

// Encode percent-encodes text for a URL query value. Spaces become %20 so
// the result matches what browsers produce for encodeURIComponent.
func Encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Dispatcher targets one WhatsApp destination.
type Dispatcher struct {
	endpoint   string
	contactURL string
	phone      string
}

// NewDispatcher validates the endpoint and destination phone number.
// The phone must be in international format, digits only.
func NewDispatcher(endpoint, phone string) (*Dispatcher, error) {
	phone = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(phone), "+"))
	if phone == "" {
		return nil, errors.New("whatsapp: destination phone is required")
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("whatsapp: phone %q must contain digits only", phone)
		}
	}
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("whatsapp: invalid endpoint %q", endpoint)
	}
	return &Dispatcher{endpoint: endpoint, contactURL: DefaultContactURL, phone: phone}, nil
}

func (d *Dispatcher) Phone() string { return d.phone }

// URL returns the plan inquiry link: <endpoint>/<phone>?text=<encoded>.
func (d *Dispatcher) URL(text string) string {
	return d.endpoint + "/" + d.phone + "?text=" + Encode(text)
}

// ContactURL returns the contact form link in the api.whatsapp.com shape.
func (d *Dispatcher) ContactURL(text string) string {
	return d.contactURL + "?phone=" + d.phone + "&text=" + Encode(text)
}
