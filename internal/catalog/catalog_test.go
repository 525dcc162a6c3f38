package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewRejectsInvalidPlans(t *testing.T) {
	tests := []struct {
		name  string
		plans []domain.PlanDefinition
	}{
		{
			name: "duplicate key",
			plans: []domain.PlanDefinition{
				{Key: "plus", BasePrice: dec("10"), BillingPeriodMonths: 12},
				{Key: "plus", BasePrice: dec("20"), BillingPeriodMonths: 12},
			},
		},
		{
			name:  "empty key",
			plans: []domain.PlanDefinition{{Key: "  ", BasePrice: dec("10"), BillingPeriodMonths: 1}},
		},
		{
			name:  "priced plan without billing period",
			plans: []domain.PlanDefinition{{Key: "pro", BasePrice: dec("3588"), BillingPeriodMonths: 0}},
		},
		{
			name:  "discount above 100",
			plans: []domain.PlanDefinition{{Key: "pro", BasePrice: dec("3588"), BillingPeriodMonths: 12, DiscountPercent: 101}},
		},
		{
			name:  "negative discount",
			plans: []domain.PlanDefinition{{Key: "pro", BasePrice: dec("3588"), BillingPeriodMonths: 12, DiscountPercent: -5}},
		},
		{
			name:  "negative price",
			plans: []domain.PlanDefinition{{Key: "pro", BasePrice: dec("-1"), BillingPeriodMonths: 12}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New("test", tc.plans)
			if err == nil {
				t.Fatalf("New() = %v, want error", c)
			}
			if !errors.Is(err, domain.ErrConfiguration) {
				t.Fatalf("New() error = %v, want ErrConfiguration", err)
			}
		})
	}
}

func TestNewAllowsCustomQuoteWithoutBillingPeriod(t *testing.T) {
	c, err := New("test", []domain.PlanDefinition{{Key: "premium", Name: "Premium"}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	p, err := c.Get("premium")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !p.IsCustomQuote() {
		t.Fatalf("expected premium to be a custom quote plan")
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Default().Get("enterprise")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	c := Default()
	p, err := c.Get("plus")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	p.Features[0] = "mutated"
	*p.BasePrice = decimal.Zero

	again, _ := c.Get("plus")
	if again.Features[0] == "mutated" {
		t.Fatalf("feature slice leaked out of the catalog")
	}
	if again.BasePrice.IsZero() {
		t.Fatalf("base price leaked out of the catalog")
	}

	plans := c.Plans()
	plans[0].Name = "changed"
	if first, _ := c.Get(plans[0].Key); first.Name == "changed" {
		t.Fatalf("Plans() returned shared storage")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	want := []string{"start", "plus", "pro", "premium"}
	got := c.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if c.Version() != DefaultVersion {
		t.Fatalf("Version() = %q, want %q", c.Version(), DefaultVersion)
	}

	start, _ := c.Get("start")
	if !start.IsOneTime {
		t.Fatalf("start should be a one-time plan")
	}
	premium, _ := c.Get("premium")
	if !premium.IsCustomQuote() {
		t.Fatalf("premium should be custom quote only")
	}
}
