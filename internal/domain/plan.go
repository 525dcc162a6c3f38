package domain

import "github.com/shopspring/decimal"

// PlanDefinition describes a pricing tier as configured in the catalog.
// A nil BasePrice marks the plan as custom quote only.
type PlanDefinition struct {
	Key                 string
	Name                string
	BasePrice           *decimal.Decimal
	DiscountPercent     int
	BillingPeriodMonths int
	IsOneTime           bool
	Icon                string
	Features            []string
}

// IsCustomQuote reports whether the plan has no fixed price.
func (p PlanDefinition) IsCustomQuote() bool {
	return p.BasePrice == nil
}

// DerivedPricing holds the display numbers computed from a plan. All numeric
// fields are nil for custom quote plans.
type DerivedPricing struct {
	Plan            PlanDefinition
	IsCustomQuote   bool
	BasePrice       *decimal.Decimal
	DiscountAmount  *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	MonthlyPrice    *decimal.Decimal
	Savings         *decimal.Decimal
}

// HasDiscount reports whether a discount tag and savings badge should be shown.
func (d DerivedPricing) HasDiscount() bool {
	return !d.IsCustomQuote && d.Plan.DiscountPercent > 0
}
