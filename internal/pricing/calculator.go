package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Derive computes the display numbers for plan. Values keep full precision;
// rounding is left to the Formatter.
func Derive(plan domain.PlanDefinition) domain.DerivedPricing {
	out := domain.DerivedPricing{Plan: plan}
	if plan.BasePrice == nil {
		out.IsCustomQuote = true
		return out
	}

	base := *plan.BasePrice
	discount := base.Mul(decimal.NewFromInt(int64(plan.DiscountPercent))).Div(hundred)
	discounted := base.Sub(discount)
	savings := base.Sub(discounted)

	out.BasePrice = &base
	out.DiscountAmount = &discount
	out.DiscountedPrice = &discounted
	out.Savings = &savings
	if plan.BillingPeriodMonths > 0 {
		monthly := discounted.Div(decimal.NewFromInt(int64(plan.BillingPeriodMonths)))
		out.MonthlyPrice = &monthly
	}
	return out
}

// PlanSource is the read-only catalog view the calculator needs.
type PlanSource interface {
	Get(key string) (domain.PlanDefinition, error)
}

// Calculator derives pricing for catalog entries by key.
type Calculator struct {
	plans PlanSource
}

func NewCalculator(plans PlanSource) *Calculator {
	return &Calculator{plans: plans}
}

// Derive looks up key and derives its pricing. Unknown keys yield domain.ErrNotFound.
func (c *Calculator) Derive(key string) (domain.DerivedPricing, error) {
	plan, err := c.plans.Get(key)
	if err != nil {
		return domain.DerivedPricing{}, err
	}
	return Derive(plan), nil
}
