// Package message composes the plain-text payloads handed to the WhatsApp
// dispatch boundary. Nothing here encodes or sends.
package message

import (
	"fmt"
	"strings"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
)

// Plans is the catalog view the composer needs.
type Plans interface {
	Get(key string) (domain.PlanDefinition, error)
}

// Composer formats plan inquiries.
type Composer struct {
	plans  Plans
	format *pricing.Formatter
	labels Labels
}

func NewComposer(plans Plans, format *pricing.Formatter) *Composer {
	return &Composer{plans: plans, format: format, labels: portuguese}
}

// WithLabels returns a composer writing with l.
func (c *Composer) WithLabels(l Labels) *Composer {
	cp := *c
	cp.labels = l
	return &cp
}

// Compose builds the inquiry text for planKey. Unknown keys yield domain.ErrNotFound.
func (c *Composer) Compose(planKey string) (string, error) {
	plan, err := c.plans.Get(planKey)
	if err != nil {
		return "", err
	}
	return c.ComposeDerived(pricing.Derive(plan)), nil
}

// ComposeDerived formats an already derived plan.
func (c *Composer) ComposeDerived(d domain.DerivedPricing) string {
	l := c.labels
	var b strings.Builder

	b.WriteString(l.Greeting)
	b.WriteString("\n\n*")
	b.WriteString(d.Plan.Name)
	b.WriteString("*\n\n")

	if d.IsCustomQuote {
		b.WriteString(l.QuoteInquiry)
		b.WriteString("\n\n")
	} else {
		f := c.format.Format(d)
		suffix := l.RecurringSuffix
		if d.Plan.IsOneTime {
			suffix = l.OneTimeSuffix
		}
		b.WriteString(l.DetailsHeading)
		b.WriteString("\n")
		line(&b, l.OriginalPrice, f.OriginalPrice)
		if d.HasDiscount() {
			line(&b, l.Discount, fmt.Sprintf("%d%% OFF", d.Plan.DiscountPercent))
		}
		line(&b, l.DiscountedPrice, f.DiscountedPrice)
		if f.MonthlyPrice != "" {
			line(&b, l.MonthlyPrice, f.MonthlyPrice+l.PerMonth+" "+suffix)
		}
		if d.HasDiscount() {
			line(&b, l.Savings, f.Savings)
		}
		b.WriteString("\n")
	}

	if len(d.Plan.Features) > 0 {
		b.WriteString(l.IncludesHeading)
		b.WriteString("\n")
		for _, feature := range d.Plan.Features {
			b.WriteString("✓ ")
			b.WriteString(feature)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if !d.IsCustomQuote {
		payment := l.RecurringLabel
		if d.Plan.IsOneTime {
			payment = l.OneTimeLabel
		}
		b.WriteString(l.PaymentType)
		b.WriteString(" ")
		b.WriteString(payment)
		b.WriteString("\n\n")
		b.WriteString(l.NotesHeading)
		b.WriteString("\n")
		b.WriteString(l.Notes)
		b.WriteString("\n\n")
	}

	b.WriteString(l.SentFrom)
	b.WriteString("\n\n")
	b.WriteString(l.Closing)
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString("• ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
