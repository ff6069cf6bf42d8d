// internal/historicopagamentos/model.go
package historicopagamentos

import (
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"gorm.io/gorm"
)

// HistoricoPagamento representa uma parcela da assinatura do cliente,
// importada do gateway de cobrança. Registros pagos são a base autoritativa
// do cálculo de comissão.
type HistoricoPagamento struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CNPJ            string     `gorm:"size:20;not null;index" json:"cnpj"`
	Loja            string     `gorm:"size:255" json:"loja"`
	Parcela         int        `gorm:"not null;default:0" json:"parcela"`
	Valor           float64    `gorm:"not null;default:0" json:"valor"`
	Vencimento      time.Time  `gorm:"not null;index" json:"vencimento"`
	DataPagamento   *time.Time `json:"dataPagamento"`
	DescricaoStatus string     `gorm:"size:100" json:"descricaoStatus"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&HistoricoPagamento{})
}

// Paga informa se a parcela foi quitada.
func (p *HistoricoPagamento) Paga() bool {
	return p.DataPagamento != nil
}

// MesVencimento retorna o mês do vencimento no formato YYYY-MM.
func (p *HistoricoPagamento) MesVencimento() string {
	return ciclo.MesDeData(p.Vencimento)
}

// MesComissao retorna o mês em que a parcela gera comissão: o mês seguinte
// ao vencimento.
func (p *HistoricoPagamento) MesComissao() string {
	return ciclo.SomarMeses(p.MesVencimento(), 1)
}
