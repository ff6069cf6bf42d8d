// internal/comissao/dto.go
package comissao

import "github.com/KromaEnergia/api-comissoes/internal/cliente"

// ComissaoClienteDTO é a linha de comissão devolvida pela API, uma por
// cliente e mês de referência.
type ComissaoClienteDTO struct {
	SellerID            string  `json:"sellerId"`
	SellerName          string  `json:"sellerName"`
	CustomerID          string  `json:"customerId"`
	CustomerName        string  `json:"customerName"`
	SignupDate          string  `json:"signupDate"`
	CancellationDate    *string `json:"cancellationDate"`
	Mrr                 float64 `json:"mrr"`
	SetupValue          float64 `json:"setupValue"`
	Status              string  `json:"status"`
	MonthsActive        int     `json:"monthsActive"`
	OverdueInstallments int     `json:"overdueInstallments"`
	CommissionMonths    int     `json:"commissionMonths"`
	CyclePosition       int     `json:"cyclePosition"`
	Percentage          float64 `json:"percentage"`
	Amount              float64 `json:"amount"`
	Source              string  `json:"source"`
}

// TierDTO é a resposta da consulta de tier do vendedor.
type TierDTO struct {
	Tier         string  `json:"tier"`
	MrrPercent   float64 `json:"mrrPercent"`
	SetupPercent float64 `json:"setupPercent"`
	SalesCount   int     `json:"salesCount"`
}

func montarDTO(c *cliente.Cliente, sellerID string, mesReferencia string, linha ComissaoCalculada) ComissaoClienteDTO {
	dto := ComissaoClienteDTO{
		SellerID:            sellerID,
		SellerName:          c.Vendedor,
		CustomerID:          c.ClientID,
		CustomerName:        c.Nome,
		Mrr:                 c.Valor,
		SetupValue:          c.TaxaSetup,
		Status:              StatusNoMes(c, mesReferencia),
		MonthsActive:        c.MesesAtivo,
		OverdueInstallments: c.ParcelasAtrasadas,
		CommissionMonths:    linha.MesesComissao,
		CyclePosition:       linha.Posicao,
		Percentage:          linha.Percentual,
		Amount:              linha.Valor,
		Source:              string(linha.Fonte),
	}
	if dto.SellerName == "" {
		dto.SellerName = "Venda Antiga"
	}
	if dto.CustomerName == "" {
		dto.CustomerName = "Cliente sem nome"
	}
	if c.DataAdesao != nil {
		dto.SignupDate = c.DataAdesao.Format("2006-01-02")
	}
	if c.DataCancelamento != nil {
		cancelamento := c.DataCancelamento.Format("2006-01-02")
		dto.CancellationDate = &cancelamento
	}
	return dto
}
