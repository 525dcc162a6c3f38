package whatsapp

import (
	"net/url"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a b", want: "a%20b"},
		{in: "x&y=z", want: "x%26y%3Dz"},
		{in: "#1\n2", want: "%231%0A2"},
		{in: "R$ 1.919,04", want: "R%24%201.919%2C04"},
		{in: "a+b", want: "a%2Bb"},
		{in: "ção", want: "%C3%A7%C3%A3o"},
	}
	for _, tc := range tests {
		if got := Encode(tc.in); got != tc.want {
			t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDispatcherURL(t *testing.T) {
	d, err := NewDispatcher("", "+5581994527528")
	if err != nil {
		t.Fatalf("NewDispatcher() error: %v", err)
	}
	text := "Olá!\n\n*Cronos Plus*\n• Desconto: 20% OFF & mais #1"
	got := d.URL(text)

	prefix := "https://wa.me/5581994527528?text="
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("URL() = %q, want prefix %q", got, prefix)
	}
	param := strings.TrimPrefix(got, prefix)
	for _, raw := range []string{" ", "&", "#", "\n"} {
		if strings.Contains(param, raw) {
			t.Fatalf("text parameter contains raw %q: %s", raw, param)
		}
	}

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse URL: %v", err)
	}
	if u.Query().Get("text") != text {
		t.Fatalf("round trip text = %q, want %q", u.Query().Get("text"), text)
	}
}

func TestDispatcherContactURL(t *testing.T) {
	d, err := NewDispatcher("https://wa.me/", "5581994527528")
	if err != nil {
		t.Fatalf("NewDispatcher() error: %v", err)
	}
	got := d.ContactURL("Nome: Ana & Co")
	want := "https://api.whatsapp.com/send?phone=5581994527528&text=Nome%3A%20Ana%20%26%20Co"
	if got != want {
		t.Fatalf("ContactURL() = %q, want %q", got, want)
	}
}

func TestNewDispatcherValidation(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		phone    string
	}{
		{name: "empty phone", phone: ""},
		{name: "letters in phone", phone: "55-81-9999"},
		{name: "relative endpoint", endpoint: "wa.me", phone: "5581994527528"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewDispatcher(tc.endpoint, tc.phone); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
