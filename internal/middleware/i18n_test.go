package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type assertError string

func (e assertError) Error() string { return string(e) }

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		fallback string
		country  string
		want     string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "EN")
			},
			country: "BR",
			want:    "en",
		},
		{
			name: "accept-language english",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en-US,en;q=0.9")
			},
			want: "en",
		},
		{
			name: "accept-language portuguese preference",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "pt-BR,en;q=0.8")
			},
			want: "pt",
		},
		{
			name: "accept-language european portuguese",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "pt-PT")
			},
			want: "pt",
		},
		{
			name: "unsupported language defaults to portuguese",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "de-DE")
			},
			want: "pt",
		},
		{
			name:    "brazil country",
			country: "BR",
			want:    "pt",
		},
		{
			name:    "other country falls back to en",
			country: "US",
			want:    "en",
		},
		{
			name:     "configured fallback",
			fallback: "en-GB",
			want:     "en",
		},
		{
			name: "default to portuguese",
			want: "pt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			got := detectLocale(req, tc.fallback, tc.country)
			if got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		resolver CountryLookup
		want     string
	}{
		{
			name: "header precedence",
			setup: func(r *http.Request) {
				r.Header.Set("X-Country-Code", "br")
				r.Header.Set("CF-IPCountry", "us")
			},
			want: "BR",
		},
		{
			name: "locale region fallback",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "en-AU")
			},
			want: "AU",
		},
		{
			name: "accept-language region",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
			},
			want: "BR",
		},
		{
			name: "language without region is ignored",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "pt;q=0.8")
			},
			want: "",
		},
		{
			name: "resolver fallback",
			resolver: func(ip string) (string, error) {
				if ip != "203.0.113.4" {
					t.Fatalf("unexpected ip: %s", ip)
				}
				return "pt", nil
			},
			want: "PT",
		},
		{
			name: "resolver error returns empty",
			resolver: func(ip string) (string, error) {
				return "", assertError("boom")
			},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.4:80"
			if tc.setup != nil {
				tc.setup(req)
			}
			got := ResolveCountry(req, tc.resolver)
			if got != tc.want {
				t.Fatalf("ResolveCountry() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestI18NStoresLocale(t *testing.T) {
	var gotLocale, gotCountry string
	h := I18N("pt", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = LocaleFromContext(r.Context())
		gotCountry = CountryFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if gotLocale != "en" || gotCountry != "GB" {
		t.Fatalf("context locale/country = %q/%q, want en/GB", gotLocale, gotCountry)
	}
	if rr.Header().Get("Content-Language") != "en" {
		t.Fatalf("Content-Language = %q", rr.Header().Get("Content-Language"))
	}
}

func TestLocaleFromContext(t *testing.T) {
	ctx := context.Background()
	if got := LocaleFromContext(ctx); got != "pt" {
		t.Fatalf("LocaleFromContext() default = %q, want %q", got, "pt")
	}
	ctx = context.WithValue(ctx, LocaleKey, "en")
	if got := LocaleFromContext(ctx); got != "en" {
		t.Fatalf("LocaleFromContext() with value = %q, want %q", got, "en")
	}
}
