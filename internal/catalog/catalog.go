package catalog

import (
	"fmt"
	"strings"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

// Catalog is a read-only, ordered set of plan definitions.
type Catalog struct {
	version string
	plans   []domain.PlanDefinition
	index   map[string]int
}

// New validates plans and builds a catalog. Any violation is reported as
// domain.ErrConfiguration so the host can refuse to start.
func New(version string, plans []domain.PlanDefinition) (*Catalog, error) {
	c := &Catalog{
		version: version,
		plans:   make([]domain.PlanDefinition, 0, len(plans)),
		index:   make(map[string]int, len(plans)),
	}
	for i, p := range plans {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			return nil, fmt.Errorf("%w: plan #%d has an empty key", domain.ErrConfiguration, i)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate plan key %q", domain.ErrConfiguration, key)
		}
		if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
			return nil, fmt.Errorf("%w: plan %q discount must be between 0 and 100, got %d", domain.ErrConfiguration, key, p.DiscountPercent)
		}
		if p.BasePrice != nil {
			if p.BasePrice.IsNegative() {
				return nil, fmt.Errorf("%w: plan %q has a negative price", domain.ErrConfiguration, key)
			}
			if p.BillingPeriodMonths <= 0 {
				return nil, fmt.Errorf("%w: plan %q needs a positive billing period", domain.ErrConfiguration, key)
			}
		}
		p.Key = key
		p.Features = append([]string(nil), p.Features...)
		c.index[key] = len(c.plans)
		c.plans = append(c.plans, p)
	}
	return c, nil
}

// Version returns the catalog schema revision.
func (c *Catalog) Version() string {
	return c.version
}

// Get returns the plan registered under key or domain.ErrNotFound.
func (c *Catalog) Get(key string) (domain.PlanDefinition, error) {
	i, ok := c.index[key]
	if !ok {
		return domain.PlanDefinition{}, fmt.Errorf("plan %q: %w", key, domain.ErrNotFound)
	}
	return clonePlan(c.plans[i]), nil
}

// Plans returns a copy of every plan in definition order.
func (c *Catalog) Plans() []domain.PlanDefinition {
	out := make([]domain.PlanDefinition, len(c.plans))
	for i, p := range c.plans {
		out[i] = clonePlan(p)
	}
	return out
}

// Keys returns plan keys in definition order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.plans))
	for i, p := range c.plans {
		keys[i] = p.Key
	}
	return keys
}

func clonePlan(p domain.PlanDefinition) domain.PlanDefinition {
	p.Features = append([]string(nil), p.Features...)
	if p.BasePrice != nil {
		price := *p.BasePrice
		p.BasePrice = &price
	}
	return p
}
