package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/meaeduarda/cronossolutions/internal/domain"
)

// DefaultVersion identifies the built-in plan table.
const DefaultVersion = "2025-01"

// Default returns the canonical Cronos plan catalog.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultPlans())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultPlans() []domain.PlanDefinition {
	return []domain.PlanDefinition{
		{
			Key:                 "start",
			Name:                "Cronos Start",
			BasePrice:           price("1348.50"),
			DiscountPercent:     20,
			BillingPeriodMonths: 12,
			IsOneTime:           true,
			Icon:                "fa-rocket",
			Features: []string{
				"Autônomos e pequenas empresas",
				"Site institucional responsivo",
				"Até 5 páginas personalizadas",
				"Botão WhatsApp integrado",
				"Formulário de contato",
				"Publicação do site",
			},
		},
		{
			Key:                 "plus",
			Name:                "Cronos Plus",
			BasePrice:           price("2398.80"),
			DiscountPercent:     20,
			BillingPeriodMonths: 12,
			Icon:                "fa-star",
			Features: []string{
				"Clínicas, Lojas, consultórios",
				"Site institucional responsivo",
				"Agendamento online",
				"Cadastro de clientes",
				"Painel administrativo",
				"Histórico simples",
				"Suporte padrão",
			},
		},
		{
			Key:                 "pro",
			Name:                "Cronos Pro",
			BasePrice:           price("3588.00"),
			DiscountPercent:     10,
			BillingPeriodMonths: 12,
			Icon:                "fa-crown",
			Features: []string{
				"Clínicas, oficinas, lojas",
				"Painel do cliente/Usuário",
				"Histórico de Serviços",
				"Relatórios",
				"E-commerce (se aplicável)",
				"Catálogo / Galerias",
				"Controle de acesso por perfil",
				"Domínio premium",
				"Suporte prioritário",
			},
		},
		{
			// sold by quotation only
			Key:  "premium",
			Name: "Cronos Premium",
			Icon: "fa-gem",
			Features: []string{
				"Sistema customizado por segmento",
				"Painel digital Recepção (TV)",
				"E-commerce (se aplicável)",
				"Painel administrativo avançado",
				"Integrações (WhatsApp e pagamento)",
				"Sistema de Gestão Completo",
				"Suporte 24/7 prioritário",
			},
		},
	}
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
