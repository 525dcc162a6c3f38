package message

import "strings"

// Labels holds the copy used in outbound messages.
type Labels struct {
	Greeting        string
	DetailsHeading  string
	OriginalPrice   string
	Discount        string
	DiscountedPrice string
	MonthlyPrice    string
	PerMonth        string
	OneTimeSuffix   string
	RecurringSuffix string
	Savings         string
	IncludesHeading string
	PaymentType     string
	OneTimeLabel    string
	RecurringLabel  string
	NotesHeading    string
	Notes           string
	QuoteInquiry    string
	SentFrom        string
	Closing         string

	ContactHeading string
	ContactName    string
	ContactEmail   string
	ContactSubject string
	ContactMessage string
	NoSubject      string
	ContactFooter  string
}

var portuguese = Labels{
	Greeting:        "Olá Cronos Solutions! Gostaria de solicitar um orçamento para o plano:",
	DetailsHeading:  "📊 *Detalhes do Plano:*",
	OriginalPrice:   "Valor Original",
	Discount:        "Desconto",
	DiscountedPrice: "Valor com Desconto",
	MonthlyPrice:    "Valor Mensal",
	PerMonth:        "/mês",
	OneTimeSuffix:   "(valor único)",
	RecurringSuffix: "(plano anual)",
	Savings:         "Economia",
	IncludesHeading: "📋 *Inclui:*",
	PaymentType:     "🏷️ *Tipo de Pagamento:*",
	OneTimeLabel:    "Vitalício (pagamento único)",
	RecurringLabel:  "Assinatura Anual",
	NotesHeading:    "💬 *Observações:*",
	Notes:           "Tenho interesse neste plano e gostaria de mais informações sobre personalizações e condições de pagamento.",
	QuoteInquiry:    "Gostaria de receber uma proposta personalizada para este plano. Podemos conversar sobre valores e escopo?",
	SentFrom:        "*Mensagem enviada através do site cronossolutions.com.br*",
	Closing:         "Aguardo seu retorno!",

	ContactHeading: "*NOVA MENSAGEM - CRONOS SOLUTIONS*",
	ContactName:    "*Nome:*",
	ContactEmail:   "*Email:*",
	ContactSubject: "*Assunto:*",
	ContactMessage: "*Mensagem:*",
	NoSubject:      "Não informado",
	ContactFooter:  "_Enviado através do formulário de contato do site._",
}

var english = Labels{
	Greeting:        "Hello Cronos Solutions! I would like a quote for the plan:",
	DetailsHeading:  "📊 *Plan details:*",
	OriginalPrice:   "Original price",
	Discount:        "Discount",
	DiscountedPrice: "Discounted price",
	MonthlyPrice:    "Monthly price",
	PerMonth:        "/month",
	OneTimeSuffix:   "(single payment)",
	RecurringSuffix: "(annual plan)",
	Savings:         "You save",
	IncludesHeading: "📋 *Includes:*",
	PaymentType:     "🏷️ *Payment type:*",
	OneTimeLabel:    "Lifetime (single payment)",
	RecurringLabel:  "Annual subscription",
	NotesHeading:    "💬 *Notes:*",
	Notes:           "I am interested in this plan and would like more information about customization and payment terms.",
	QuoteInquiry:    "I would like a custom proposal for this plan. Can we talk about pricing and scope?",
	SentFrom:        "*Message sent from cronossolutions.com.br*",
	Closing:         "Looking forward to your reply!",

	ContactHeading: "*NEW MESSAGE - CRONOS SOLUTIONS*",
	ContactName:    "*Name:*",
	ContactEmail:   "*Email:*",
	ContactSubject: "*Subject:*",
	ContactMessage: "*Message:*",
	NoSubject:      "Not provided",
	ContactFooter:  "_Sent from the website contact form._",
}

// LabelsFor returns the label set for a locale, defaulting to Portuguese.
func LabelsFor(locale string) Labels {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return english
	}
	return portuguese
}
