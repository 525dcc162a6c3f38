package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

// File mirrors the YAML layout of a catalog file.
type File struct {
	Version string     `yaml:"version"`
	Plans   []FilePlan `yaml:"plans"`
}

// FilePlan is one plan entry. An absent or null price marks a custom quote plan.
type FilePlan struct {
	Key             string    `yaml:"key"`
	Name            string    `yaml:"name"`
	Price           yaml.Node `yaml:"price"`
	DiscountPercent int       `yaml:"discount_percent"`
	Months          int       `yaml:"months"`
	OneTime         bool      `yaml:"one_time"`
	Icon            string    `yaml:"icon"`
	Features        []string  `yaml:"features"`
}

// LoadFile reads and validates a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog document.
func Parse(raw []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog document", domain.ErrConfiguration)
		}
		return nil, fmt.Errorf("%w: decode catalog: %v", domain.ErrConfiguration, err)
	}
	if strings.TrimSpace(f.Version) == "" {
		return nil, fmt.Errorf("%w: catalog version is required", domain.ErrConfiguration)
	}

	plans := make([]domain.PlanDefinition, 0, len(f.Plans))
	for _, fp := range f.Plans {
		p, err := fp.definition()
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return New(f.Version, plans)
}

func (fp FilePlan) definition() (domain.PlanDefinition, error) {
	p := domain.PlanDefinition{
		Key:                 fp.Key,
		Name:                fp.Name,
		DiscountPercent:     fp.DiscountPercent,
		BillingPeriodMonths: fp.Months,
		IsOneTime:           fp.OneTime,
		Icon:                fp.Icon,
		Features:            fp.Features,
	}
	if p.Name == "" {
		p.Name = p.Key
	}
	if fp.Price.Kind == 0 || fp.Price.ShortTag() == "!!null" {
		return p, nil
	}
	if fp.Price.Kind != yaml.ScalarNode {
		return p, fmt.Errorf("%w: plan %q price must be a number", domain.ErrConfiguration, fp.Key)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(fp.Price.Value))
	if err != nil {
		return p, fmt.Errorf("%w: plan %q price %q: %v", domain.ErrConfiguration, fp.Key, fp.Price.Value, err)
	}
	p.BasePrice = &d
	return p, nil
}
