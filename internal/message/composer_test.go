package message

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/meaeduarda/cronossolutions/internal/catalog"
	"github.com/meaeduarda/cronossolutions/internal/domain"
	"github.com/meaeduarda/cronossolutions/internal/pricing"
	"github.com/meaeduarda/cronossolutions/internal/whatsapp"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := catalog.New("test", []domain.PlanDefinition{
		{Key: "start", Name: "Cronos Start", BasePrice: dec("1348.50"), DiscountPercent: 20, BillingPeriodMonths: 12, IsOneTime: true, Features: []string{"Publicação do site"}},
		{Key: "plus", Name: "Cronos Plus", BasePrice: dec("2398.80"), DiscountPercent: 20, BillingPeriodMonths: 12, Features: []string{"Agendamento online", "Suporte padrão"}},
		{Key: "basic", Name: "Cronos Basic", BasePrice: dec("990"), BillingPeriodMonths: 12},
		{Key: "premium", Name: "Cronos Premium", Features: []string{"Sistema customizado por segmento"}},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewComposer(c, pricing.DefaultFormatter())
}

func TestComposeRecurringPlan(t *testing.T) {
	text, err := newComposer(t).Compose("plus")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	for _, want := range []string{
		"*Cronos Plus*",
		"• Valor Original: R$ 2.398,80",
		"• Desconto: 20% OFF",
		"• Valor com Desconto: R$ 1.919,04",
		"• Valor Mensal: R$ 159,92/mês (plano anual)",
		"• Economia: R$ 479,76",
		"✓ Agendamento online\n✓ Suporte padrão",
		"*Tipo de Pagamento:* Assinatura Anual",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q\n%s", want, text)
		}
	}
	if strings.Contains(text, "pagamento único") {
		t.Fatalf("recurring plan labelled as single payment")
	}
}

func TestComposeOneTimePlan(t *testing.T) {
	text, err := newComposer(t).Compose("start")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !strings.Contains(text, "• Valor com Desconto: R$ 1.078,80") {
		t.Fatalf("discounted price missing:\n%s", text)
	}
	if !strings.Contains(text, "*Tipo de Pagamento:* Vitalício (pagamento único)") {
		t.Fatalf("one-time plan not labelled as single payment:\n%s", text)
	}
	if strings.Contains(text, "Assinatura Anual") {
		t.Fatalf("one-time plan labelled as recurring:\n%s", text)
	}
}

func TestComposeZeroDiscountKeepsPriceLines(t *testing.T) {
	text, err := newComposer(t).Compose("basic")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if strings.Contains(text, "OFF") || strings.Contains(text, "Economia") {
		t.Fatalf("zero discount message mentions a discount:\n%s", text)
	}
	if !strings.Contains(text, "• Valor Original: R$ 990,00") {
		t.Fatalf("original price missing:\n%s", text)
	}
	if !strings.Contains(text, "• Valor com Desconto: R$ 990,00") {
		t.Fatalf("discounted price line missing:\n%s", text)
	}
	if strings.Contains(text, "• Desconto:") {
		t.Fatalf("zero discount message carries a discount percent line:\n%s", text)
	}
}

func TestComposeCustomQuote(t *testing.T) {
	text, err := newComposer(t).Compose("premium")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !strings.Contains(text, "proposta personalizada") {
		t.Fatalf("custom quote inquiry missing:\n%s", text)
	}
	if strings.Contains(text, "R$") || strings.Contains(text, "Tipo de Pagamento") {
		t.Fatalf("custom quote message carries pricing:\n%s", text)
	}
	if !strings.Contains(text, "✓ Sistema customizado por segmento") {
		t.Fatalf("features missing:\n%s", text)
	}
}

func TestComposeUnknownKey(t *testing.T) {
	if _, err := newComposer(t).Compose("gold"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Compose() error = %v, want ErrNotFound", err)
	}
}

func TestComposeEnglishLabels(t *testing.T) {
	text, err := newComposer(t).WithLabels(LabelsFor("en-US")).Compose("start")
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !strings.Contains(text, "*Payment type:* Lifetime (single payment)") {
		t.Fatalf("english labels not applied:\n%s", text)
	}
	if !strings.Contains(text, "R$ 1.078,80") {
		t.Fatalf("currency display should stay fixed:\n%s", text)
	}
}

func TestComposedMessageSurvivesEncoding(t *testing.T) {
	c := newComposer(t)
	d, err := whatsapp.NewDispatcher("", "5581994527528")
	if err != nil {
		t.Fatalf("NewDispatcher() error: %v", err)
	}
	for _, key := range []string{"start", "plus", "basic", "premium"} {
		text, err := c.Compose(key)
		if err != nil {
			t.Fatalf("Compose(%s) error: %v", key, err)
		}
		param := strings.SplitN(d.URL(text), "?text=", 2)[1]
		if strings.ContainsAny(param, " &#\n") {
			t.Fatalf("%s: encoded text contains raw reserved characters", key)
		}
	}
}

func TestLabelsFor(t *testing.T) {
	if LabelsFor("").Greeting != portuguese.Greeting {
		t.Fatalf("empty locale should default to Portuguese")
	}
	if LabelsFor("pt-BR").Greeting != portuguese.Greeting {
		t.Fatalf("pt-BR should map to Portuguese")
	}
	if LabelsFor("EN").Greeting != english.Greeting {
		t.Fatalf("EN should map to English")
	}
}
