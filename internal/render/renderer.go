// Package render reconciles derived pricing onto the host page's plan cards.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
)

// Names of the sub-regions a plan card exposes.
const (
	selCard          = ".pricing-card"
	selBody          = ".price-card-body"
	selOldPrice      = ".old-price"
	selDiscountTag   = ".discount-tag"
	selMainPrice     = ".main-price"
	selAmount        = ".main-price .amount"
	selCurrency      = ".main-price .currency"
	selTotalPeriod   = ".total-period"
	selSavingsBadge  = ".savings-badge"
	selActionControl = ".pricing-btn"

	classStartingBadge = "starting-badge"
	classQuoteStatus   = "quote-status"
	selInserted        = "." + classStartingBadge + ", ." + classQuoteStatus
)

// Mode tells which layout a card was rendered with.
type Mode string

const (
	ModePriced      Mode = "priced"
	ModeCustomQuote Mode = "custom_quote"
)

// Labels holds the visible copy written into cards.
type Labels struct {
	StartingBadge string
	DiscountTag   string // printf pattern receiving the discount percent
	OneTime       string
	Recurring     string
	Savings       string // printf pattern receiving the formatted savings
	QuoteStatus   string
	ContactAction string
}

// DefaultLabels is the Portuguese copy used on the site.
var DefaultLabels = Labels{
	StartingBadge: "A PARTIR DE",
	DiscountTag:   "%d%% OFF",
	OneTime:       "valor único",
	Recurring:     "valor anual",
	Savings:       "Economize %s",
	QuoteStatus:   "Preço sob consulta",
	ContactAction: "Fale conosco",
}

// Result reports the outcome of rendering one plan card.
type Result struct {
	PlanKey string
	Mode    Mode
	Err     error
}

// Plans is the catalog view the renderer needs.
type Plans interface {
	Get(key string) (domain.PlanDefinition, error)
	Keys() []string
}

// Renderer writes derived pricing into plan cards.
type Renderer struct {
	plans  Plans
	format *pricing.Formatter
	labels Labels
	logger zerolog.Logger
}

func NewRenderer(plans Plans, format *pricing.Formatter, labels Labels, logger zerolog.Logger) *Renderer {
	return &Renderer{plans: plans, format: format, labels: labels, logger: logger}
}

// Render updates the card for planKey inside container. It returns
// domain.ErrNotFound for keys outside the catalog and
// domain.ErrRenderTargetMissing when the container has no matching card.
// Rendering the same key repeatedly leaves the card in the same state.
func (r *Renderer) Render(planKey string, container *goquery.Selection) (res Result, err error) {
	res = Result{PlanKey: planKey}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render %q: %v", planKey, rec)
			res.Err = err
		}
	}()

	plan, err := r.plans.Get(planKey)
	if err != nil {
		res.Err = err
		return res, err
	}
	card := findCard(container, planKey)
	if card.Length() == 0 {
		err = fmt.Errorf("plan %q: %w", planKey, domain.ErrRenderTargetMissing)
		res.Err = err
		return res, err
	}

	derived := pricing.Derive(plan)
	card.Find(selInserted).Remove()
	if derived.IsCustomQuote {
		r.renderCustomQuote(card)
		res.Mode = ModeCustomQuote
		return res, nil
	}
	r.renderPriced(card, derived)
	res.Mode = ModePriced
	return res, nil
}

// RenderAll renders every catalog plan independently. A failing card is
// logged and reported in its Result without stopping the others.
func (r *Renderer) RenderAll(container *goquery.Selection) []Result {
	keys := r.plans.Keys()
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		res, err := r.Render(key, container)
		if err != nil {
			ev := r.logger.Warn()
			if !errors.Is(err, domain.ErrRenderTargetMissing) && !errors.Is(err, domain.ErrNotFound) {
				ev = r.logger.Error()
			}
			ev.Err(err).Str("plan", key).Msg("plan card not rendered")
		}
		results = append(results, res)
	}
	return results
}

// Attr is an attribute RenderDocument sets on the page body.
type Attr struct {
	Key, Val string
}

// RenderDocument parses a host page, renders every card, applies attrs to
// the body and returns the resulting markup.
func (r *Renderer) RenderDocument(src io.Reader, attrs ...Attr) (string, []Result, error) {
	doc, err := goquery.NewDocumentFromReader(src)
	if err != nil {
		return "", nil, fmt.Errorf("render: parse document: %w", err)
	}
	results := r.RenderAll(doc.Selection)
	body := doc.Find("body")
	for _, a := range attrs {
		body.SetAttr(a.Key, a.Val)
	}
	html, err := doc.Html()
	if err != nil {
		return "", results, fmt.Errorf("render: serialize document: %w", err)
	}
	return html, results, nil
}

func findCard(container *goquery.Selection, planKey string) *goquery.Selection {
	if container == nil {
		return &goquery.Selection{}
	}
	cards := container.Find(selCard).AddSelection(container.Filter(selCard))
	return cards.FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("data-plan")
		return ok && v == planKey
	}).First()
}

func (r *Renderer) renderPriced(card *goquery.Selection, d domain.DerivedPricing) {
	f := r.format.Format(d)

	badge := fmt.Sprintf(`<div class="%s"></div>`, classStartingBadge)
	body := card.Find(selBody).First()
	if body.Length() > 0 {
		body.PrependHtml(badge)
		body.Find("." + classStartingBadge).SetText(r.labels.StartingBadge)
	}

	card.Find(selMainPrice).RemoveAttr("hidden")
	show(card.Find(selAmount), f.MonthlyAmount)
	show(card.Find(selCurrency), r.format.Symbol())

	period := r.labels.Recurring
	if d.Plan.IsOneTime {
		period = r.labels.OneTime
	}
	show(card.Find(selTotalPeriod), fmt.Sprintf("%s (%s)", f.DiscountedPrice, period))

	if d.HasDiscount() {
		show(card.Find(selOldPrice), f.OriginalPrice)
		show(card.Find(selDiscountTag), r.labels.DiscountLabel(d.Plan.DiscountPercent))
		show(card.Find(selSavingsBadge), fmt.Sprintf(r.labels.Savings, f.Savings))
	} else {
		hide(card.Find(selOldPrice))
		hide(card.Find(selDiscountTag))
		hide(card.Find(selSavingsBadge))
	}

	btn := card.Find(selActionControl)
	if label, ok := btn.Attr("data-default-label"); ok {
		btn.SetText(label)
		btn.RemoveAttr("data-default-label")
	}
	btn.SetAttr("data-plan-mode", string(ModePriced))
}

func (r *Renderer) renderCustomQuote(card *goquery.Selection) {
	for _, sel := range []string{selOldPrice, selDiscountTag, selAmount, selCurrency, selTotalPeriod, selSavingsBadge} {
		hide(card.Find(sel))
	}
	// the container also holds host copy such as the "/mês" suffix
	card.Find(selMainPrice).SetAttr("hidden", "")

	status := fmt.Sprintf(`<div class="%s"></div>`, classQuoteStatus)
	body := card.Find(selBody).First()
	if body.Length() > 0 {
		body.PrependHtml(status)
	} else {
		card.PrependHtml(status)
	}
	card.Find("." + classQuoteStatus).SetText(r.labels.QuoteStatus)

	btn := card.Find(selActionControl)
	if btn.Length() > 0 {
		if _, ok := btn.Attr("data-default-label"); !ok {
			btn.SetAttr("data-default-label", btn.First().Text())
		}
		btn.SetText(r.labels.ContactAction)
		btn.SetAttr("data-plan-mode", string(ModeCustomQuote))
	}
}

func show(s *goquery.Selection, text string) {
	s.SetText(text)
	s.RemoveAttr("hidden")
}

func hide(s *goquery.Selection) {
	s.SetText("")
	s.SetAttr("hidden", "")
}

// DiscountLabel formats the tag text for pct, e.g. "20% OFF".
func (l Labels) DiscountLabel(pct int) string {
	return fmt.Sprintf(l.DiscountTag, pct)
}
