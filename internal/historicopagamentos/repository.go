// internal/historicopagamentos/repository.go
package historicopagamentos

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso ao histórico de pagamentos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarPagasPorCNPJ busca as parcelas quitadas de um cliente, da mais
// antiga para a mais recente.
func (r *Repository) ListarPagasPorCNPJ(cnpj string) ([]HistoricoPagamento, error) {
	var parcelas []HistoricoPagamento
	err := r.DB.
		Where("cnpj = ?", cnpj).
		Where("data_pagamento IS NOT NULL").
		Order("vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// ParcelaParaMesComissao busca a (no máximo uma) parcela paga cujo
// vencimento gera comissão no mês informado, ou seja, vencida no mês
// anterior ao mês de comissão. Retorna nil quando não há parcela.
func (r *Repository) ParcelaParaMesComissao(cnpj, mesComissao string) (*HistoricoPagamento, error) {
	parcelas, err := r.ListarPagasPorCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	for i := range parcelas {
		if parcelas[i].MesComissao() == mesComissao {
			return &parcelas[i], nil
		}
	}
	return nil, nil
}

// Registrar insere uma parcela importada do gateway.
func (r *Repository) Registrar(p *HistoricoPagamento) error {
	return r.DB.Create(p).Error
}
